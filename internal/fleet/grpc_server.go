package fleet

import (
	"context"
	"errors"
	"strings"

	fleetpb "github.com/FleetRentDrive/FleetRentDrive/internal/api/proto/fleet"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCServer 车辆目录服务。
// 写操作的权限（staff 及以上）由网关/拦截器层的 RBAC 配置把关。
type GRPCServer struct {
	fleetpb.UnimplementedFleetServiceServer

	repo *CachedRepo
}

func NewGRPCServer(repo *CachedRepo) *GRPCServer {
	return &GRPCServer{repo: repo}
}

func (s *GRPCServer) UpsertVehicle(ctx context.Context, req *fleetpb.UpsertVehicleRequest) (*fleetpb.UpsertVehicleResponse, error) {
	if req == nil || req.GetVehicle() == nil {
		return nil, status.Error(codes.InvalidArgument, "vehicle required")
	}
	in := req.GetVehicle()

	plate := strings.TrimSpace(in.GetPlateNumber())
	if plate == "" {
		return nil, status.Error(codes.InvalidArgument, "plate_number required")
	}
	if in.GetDailyPriceCents() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "daily_price_cents must be positive")
	}

	id := strings.TrimSpace(in.GetId())
	isNew := id == ""
	if isNew {
		id = uuid.NewString()
	}

	v := &Vehicle{
		ID:              id,
		Brand:           strings.TrimSpace(in.GetBrand()),
		Model:           strings.TrimSpace(in.GetModel()),
		PlateNumber:     plate,
		Year:            int(in.GetYear()),
		CategoryID:      strings.TrimSpace(in.GetCategoryId()),
		DailyPriceCents: in.GetDailyPriceCents(),
		// 新车默认可租；存量车的 available 归租约引擎管，这里保留传入值
		Available: isNew || in.GetAvailable(),
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	latest, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		// 如果查询失败，仍返回写入的内容（时间戳可能为空）
		latest = v
	}
	return &fleetpb.UpsertVehicleResponse{Vehicle: toPB(latest)}, nil
}

func (s *GRPCServer) GetVehicle(ctx context.Context, req *fleetpb.GetVehicleRequest) (*fleetpb.GetVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	v, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrVehicleNotFound) {
		return nil, status.Error(codes.NotFound, "vehicle not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.GetVehicleResponse{Vehicle: toPB(v)}, nil
}

func (s *GRPCServer) ListVehicles(ctx context.Context, req *fleetpb.ListVehiclesRequest) (*fleetpb.ListVehiclesResponse, error) {
	category := ""
	onlyAvailable := false
	page := 1
	size := 20
	if req != nil {
		category = strings.TrimSpace(req.GetCategoryId())
		onlyAvailable = req.GetOnlyAvailable()
		if req.GetPage() > 0 {
			page = int(req.GetPage())
		}
		if req.GetPageSize() > 0 && req.GetPageSize() <= 200 {
			size = int(req.GetPageSize())
		}
	}
	offset := (page - 1) * size
	vs, total, err := s.repo.List(ctx, category, onlyAvailable, offset, size)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.ListVehiclesResponse{Vehicles: toPBs(vs), Total: total}, nil
}

// ListAvailableVehicles 商品列表页入口，走 Redis 缓存。
func (s *GRPCServer) ListAvailableVehicles(ctx context.Context, _ *fleetpb.ListAvailableVehiclesRequest) (*fleetpb.ListAvailableVehiclesResponse, error) {
	vs, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.ListAvailableVehiclesResponse{Vehicles: toPBs(vs)}, nil
}

func (s *GRPCServer) SearchVehicles(ctx context.Context, req *fleetpb.SearchVehiclesRequest) (*fleetpb.SearchVehiclesResponse, error) {
	if req == nil || strings.TrimSpace(req.GetTerm()) == "" {
		return nil, status.Error(codes.InvalidArgument, "term required")
	}
	vs, err := s.repo.Search(ctx, strings.TrimSpace(req.GetTerm()), int(req.GetLimit()))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.SearchVehiclesResponse{Vehicles: toPBs(vs)}, nil
}

func (s *GRPCServer) UpsertCategory(ctx context.Context, req *fleetpb.UpsertCategoryRequest) (*fleetpb.UpsertCategoryResponse, error) {
	if req == nil || req.GetCategory() == nil {
		return nil, status.Error(codes.InvalidArgument, "category required")
	}
	in := req.GetCategory()
	name := strings.TrimSpace(in.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name required")
	}
	id := strings.TrimSpace(in.GetId())
	if id == "" {
		id = uuid.NewString()
	}
	c := &Category{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(in.GetDescription()),
	}
	if err := s.repo.UpsertCategory(ctx, c); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &fleetpb.UpsertCategoryResponse{Category: &fleetpb.Category{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}}, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, _ *fleetpb.ListCategoriesRequest) (*fleetpb.ListCategoriesResponse, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*fleetpb.Category, 0, len(cats))
	for i := range cats {
		c := cats[i]
		out = append(out, &fleetpb.Category{
			Id:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return &fleetpb.ListCategoriesResponse{Categories: out}, nil
}

func toPBs(vs []Vehicle) []*fleetpb.Vehicle {
	out := make([]*fleetpb.Vehicle, 0, len(vs))
	for i := range vs {
		v := vs[i]
		out = append(out, toPB(&v))
	}
	return out
}

func toPB(v *Vehicle) *fleetpb.Vehicle {
	if v == nil {
		return nil
	}
	return &fleetpb.Vehicle{
		Id:              v.ID,
		Brand:           v.Brand,
		Model:           v.Model,
		PlateNumber:     v.PlateNumber,
		Year:            int32(v.Year),
		CategoryId:      v.CategoryID,
		DailyPriceCents: v.DailyPriceCents,
		Available:       v.Available,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}
