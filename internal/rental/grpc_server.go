package rental

import (
	"context"
	"errors"
	"strings"
	"time"

	rentalpb "github.com/FleetRentDrive/FleetRentDrive/internal/api/proto/rental"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GRPCServer struct {
	rentalpb.UnimplementedRentalServiceServer

	svc *Service
}

func NewGRPCServer(svc *Service) *GRPCServer {
	return &GRPCServer{svc: svc}
}

// toStatusErr 领域错误 -> gRPC code。
func toStatusErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrBookingConflict), errors.Is(err, ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ErrDateRangeInvalid), errors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrStorageUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), time.UTC)
}

func (s *GRPCServer) CreateRental(ctx context.Context, req *rentalpb.CreateRentalRequest) (*rentalpb.CreateRentalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	start, err := parseDate(req.GetStartDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "start_date must be YYYY-MM-DD")
	}
	end, err := parseDate(req.GetEndDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "end_date must be YYYY-MM-DD")
	}

	r, err := s.svc.CreateRental(ctx, CreateRentalInput{
		VehicleID:     strings.TrimSpace(req.GetVehicleId()),
		UserID:        strings.TrimSpace(req.GetUserId()),
		CustomerName:  strings.TrimSpace(req.GetCustomerName()),
		CustomerEmail: strings.TrimSpace(req.GetCustomerEmail()),
		StartDate:     start,
		EndDate:       end,
		Currency:      strings.TrimSpace(req.GetCurrency()),
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.CreateRentalResponse{Rental: toPBRental(r)}, nil
}

func (s *GRPCServer) StartRental(ctx context.Context, req *rentalpb.StartRentalRequest) (*rentalpb.StartRentalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.StartRental(ctx, req.GetId(), time.Now())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.StartRentalResponse{Rental: toPBRental(r)}, nil
}

func (s *GRPCServer) CompleteRental(ctx context.Context, req *rentalpb.CompleteRentalRequest) (*rentalpb.CompleteRentalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.CompleteRental(ctx, req.GetId(), time.Now())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.CompleteRentalResponse{Rental: toPBRental(r)}, nil
}

func (s *GRPCServer) CancelRental(ctx context.Context, req *rentalpb.CancelRentalRequest) (*rentalpb.CancelRentalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.CancelRental(ctx, req.GetId(), time.Now())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.CancelRentalResponse{Rental: toPBRental(r)}, nil
}

func (s *GRPCServer) GetRental(ctx context.Context, req *rentalpb.GetRentalRequest) (*rentalpb.GetRentalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	r, err := s.svc.GetRental(ctx, req.GetId())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.GetRentalResponse{Rental: toPBRental(r)}, nil
}

func (s *GRPCServer) ListRentals(ctx context.Context, req *rentalpb.ListRentalsRequest) (*rentalpb.ListRentalsResponse, error) {
	f := ListFilter{}
	if req != nil {
		f.UserID = strings.TrimSpace(req.GetUserId())
		f.VehicleID = strings.TrimSpace(req.GetVehicleId())
		if st := strings.TrimSpace(req.GetStatus()); st != "" {
			f.Status = Status(st)
		}
		page := int(req.GetPage())
		size := int(req.GetPageSize())
		if page <= 0 {
			page = 1
		}
		if size <= 0 || size > 200 {
			size = 20
		}
		f.Offset = (page - 1) * size
		f.Limit = size
	}

	rentals, total, err := s.svc.ListRentals(ctx, f)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.ListRentalsResponse{Rentals: toPBRentals(rentals), Total: total}, nil
}

func (s *GRPCServer) ListOverdueRentals(ctx context.Context, _ *rentalpb.ListOverdueRentalsRequest) (*rentalpb.ListOverdueRentalsResponse, error) {
	rentals, err := s.svc.ListOverdueRentals(ctx, time.Now())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.ListOverdueRentalsResponse{Rentals: toPBRentals(rentals)}, nil
}

func (s *GRPCServer) ListCurrentRentals(ctx context.Context, _ *rentalpb.ListCurrentRentalsRequest) (*rentalpb.ListCurrentRentalsResponse, error) {
	rentals, err := s.svc.ListCurrentRentals(ctx, time.Now())
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &rentalpb.ListCurrentRentalsResponse{Rentals: toPBRentals(rentals)}, nil
}

func (s *GRPCServer) GetRentalStats(ctx context.Context, _ *rentalpb.GetRentalStatsRequest) (*rentalpb.GetRentalStatsResponse, error) {
	stats, err := s.svc.RentalStats(ctx)
	if err != nil {
		return nil, toStatusErr(err)
	}
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for st, n := range stats.ByStatus {
		byStatus[string(st)] = n
	}
	return &rentalpb.GetRentalStatsResponse{
		Total:         stats.Total,
		ByStatus:      byStatus,
		RevenueCents:  stats.RevenueCents,
		AvgPriceCents: stats.AvgPriceCents,
	}, nil
}

func toPBRentals(rentals []Rental) []*rentalpb.Rental {
	out := make([]*rentalpb.Rental, 0, len(rentals))
	for i := range rentals {
		r := rentals[i]
		out = append(out, toPBRental(&r))
	}
	return out
}

func toPBRental(r *Rental) *rentalpb.Rental {
	if r == nil {
		return nil
	}
	var startedAt, completedAt, cancelledAt int64
	if r.StartedAt != nil {
		startedAt = r.StartedAt.Unix()
	}
	if r.CompletedAt != nil {
		completedAt = r.CompletedAt.Unix()
	}
	if r.CancelledAt != nil {
		cancelledAt = r.CancelledAt.Unix()
	}
	return &rentalpb.Rental{
		Id:              r.ID,
		VehicleId:       r.VehicleID,
		UserId:          r.UserID,
		Status:          string(r.Status),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		StartDate:       DateOnly(r.StartDate).Format(time.DateOnly),
		EndDate:         DateOnly(r.EndDate).Format(time.DateOnly),
		TotalPriceCents: r.TotalPriceCents,
		Currency:        r.Currency,
		CreatedAt:       r.CreatedAt.Unix(),
		UpdatedAt:       r.UpdatedAt.Unix(),
		StartedAt:       startedAt,
		CompletedAt:     completedAt,
		CancelledAt:     cancelledAt,
	}
}
