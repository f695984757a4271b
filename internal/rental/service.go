package rental

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FleetRentDrive/FleetRentDrive/internal/fleet"
	"github.com/google/uuid"
)

// Store 是租约引擎依赖的存储协作方。
// 约定：一个生命周期操作内的全部读写都走 Transact 给出的事务内 Store，
// 由实现保证多写原子提交（GORM 实现见 repo.go，测试用内存假实现）。
type Store interface {
	Transact(ctx context.Context, fn func(tx Store) error) error

	GetVehicleForUpdate(ctx context.Context, vehicleID string) (*fleet.Vehicle, error)
	SetVehicleAvailability(ctx context.Context, vehicleID string, available bool) error

	ListHoldsByVehicle(ctx context.Context, vehicleID string) ([]Rental, error)
	CountHoldsByVehicle(ctx context.Context, vehicleID, excludeID string) (int64, error)
	Insert(ctx context.Context, r *Rental) error
	GetByID(ctx context.Context, id string) (*Rental, error)
	GetByIDForUpdate(ctx context.Context, id string) (*Rental, error)
	Update(ctx context.Context, r *Rental) error

	List(ctx context.Context, f ListFilter) ([]Rental, int64, error)
	ListOverdue(ctx context.Context, today time.Time) ([]Rental, error)
	ListCurrent(ctx context.Context, today time.Time) ([]Rental, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Service 封装租约领域的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
// 车辆 available 标志只在这里改：它是 PENDING/ACTIVE 占用集合的缓存值，
// 每次状态变更都按占用重新算，不允许别处直接写。
type Service struct {
	store Store
	pub   EventPublisher // 可为 nil（事件是尽力而为，不参与事务）
}

func NewService(store Store, pub EventPublisher) *Service {
	return &Service{store: store, pub: pub}
}

// CreateRentalInput 创建租约的入参。
type CreateRentalInput struct {
	VehicleID     string
	UserID        string
	CustomerName  string
	CustomerEmail string
	StartDate     time.Time
	EndDate       time.Time
	Currency      string
}

// CreateRental 下单：校验日期 -> 占用冲突检测 -> 定价 -> 落租约 + 占车。
// 冲突检测和插入在同一个事务里，且先对车辆行加锁：
// 两个并发请求抢同一辆车时，后拿到锁的一定能看到先提交的占用，返回 ErrBookingConflict。
func (s *Service) CreateRental(ctx context.Context, in CreateRentalInput) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	vehicleID := strings.TrimSpace(in.VehicleID)
	userID := strings.TrimSpace(in.UserID)
	if vehicleID == "" {
		return nil, fmt.Errorf("%w: vehicle_id required", ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id required", ErrInvalidInput)
	}

	start := DateOnly(in.StartDate)
	end := DateOnly(in.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrDateRangeInvalid,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	var created *Rental
	err := s.store.Transact(ctx, func(tx Store) error {
		v, err := tx.GetVehicleForUpdate(ctx, vehicleID)
		if err != nil {
			return err
		}
		// 不支持对已占用车辆的未来预订：只要车上还有未终结的租约，
		// 无论日期是否相邻都拒绝（原型语义：先看 available，再查日期）。
		if !v.Available {
			return fmt.Errorf("%w: vehicle %s currently held", ErrBookingConflict, vehicleID)
		}

		holds, err := tx.ListHoldsByVehicle(ctx, vehicleID)
		if err != nil {
			return err
		}
		for i := range holds {
			h := &holds[i]
			if Overlaps(start, end, h.StartDate, h.EndDate) {
				return fmt.Errorf("%w: vehicle %s held by rental %s (%s..%s)",
					ErrBookingConflict, vehicleID, h.ID,
					DateOnly(h.StartDate).Format(time.DateOnly),
					DateOnly(h.EndDate).Format(time.DateOnly))
			}
		}

		total, err := Price(v.DailyPriceCents, start, end)
		if err != nil {
			return err
		}

		r := &Rental{
			ID:              uuid.NewString(),
			VehicleID:       vehicleID,
			UserID:          userID,
			Status:          StatusPending,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
			StartDate:       start,
			EndDate:         end,
			TotalPriceCents: total,
			Currency:        defaultCurrency(in.Currency),
		}
		if err := tx.Insert(ctx, r); err != nil {
			return err
		}
		if err := tx.SetVehicleAvailability(ctx, vehicleID, false); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventRentalCreated, created)
	return created, nil
}

// StartRental 取车：PENDING -> ACTIVE。车辆占用不变，标志不动。
func (s *Service) StartRental(ctx context.Context, rentalID string, now time.Time) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	rentalID = strings.TrimSpace(rentalID)
	if rentalID == "" {
		return nil, fmt.Errorf("%w: rental_id required", ErrInvalidInput)
	}

	var out *Rental
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if err := ApplyTransition(r, StatusActive, now); err != nil {
			return err
		}
		if err := tx.Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, EventRentalStarted, out)
	return out, nil
}

// CompleteRental 归还结单：ACTIVE（或未取车的 PENDING）-> COMPLETED，并释放车辆。
func (s *Service) CompleteRental(ctx context.Context, rentalID string, now time.Time) (*Rental, error) {
	r, err := s.terminate(ctx, rentalID, StatusCompleted, now)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventRentalCompleted, r)
	return r, nil
}

// CancelRental 取消：PENDING/ACTIVE -> CANCELLED，并释放车辆。
func (s *Service) CancelRental(ctx context.Context, rentalID string, now time.Time) (*Rental, error) {
	r, err := s.terminate(ctx, rentalID, StatusCancelled, now)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, EventRentalCancelled, r)
	return r, nil
}

// terminate 终态流转 + 按剩余占用重算 available。
// 流转失败（终态重复操作、未知 id）时整个事务回滚，车辆标志保持原样。
func (s *Service) terminate(ctx context.Context, rentalID string, to Status, now time.Time) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	rentalID = strings.TrimSpace(rentalID)
	if rentalID == "" {
		return nil, fmt.Errorf("%w: rental_id required", ErrInvalidInput)
	}

	var out *Rental
	err := s.store.Transact(ctx, func(tx Store) error {
		// 先不加锁读出 vehicle_id，再按“车辆行 -> 租约行”的顺序加锁，
		// 和 CreateRental 保持同一加锁顺序，避免交叉死锁。
		peek, err := tx.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if _, err := tx.GetVehicleForUpdate(ctx, peek.VehicleID); err != nil {
			return err
		}

		r, err := tx.GetByIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if err := ApplyTransition(r, to, now); err != nil {
			return err
		}
		if err := tx.Update(ctx, r); err != nil {
			return err
		}

		remaining, err := tx.CountHoldsByVehicle(ctx, r.VehicleID, r.ID)
		if err != nil {
			return err
		}
		if err := tx.SetVehicleAvailability(ctx, r.VehicleID, remaining == 0); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetRental(ctx context.Context, id string) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	return s.store.GetByID(ctx, id)
}

func (s *Service) ListRentals(ctx context.Context, f ListFilter) ([]Rental, int64, error) {
	if s == nil || s.store == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	f.UserID = strings.TrimSpace(f.UserID)
	f.VehicleID = strings.TrimSpace(f.VehicleID)
	return s.store.List(ctx, f)
}

func (s *Service) ListOverdueRentals(ctx context.Context, today time.Time) ([]Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListOverdue(ctx, today)
}

func (s *Service) ListCurrentRentals(ctx context.Context, today time.Time) ([]Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListCurrent(ctx, today)
}

func (s *Service) RentalStats(ctx context.Context) (*Stats, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.Stats(ctx)
}

func (s *Service) publish(ctx context.Context, eventType string, r *Rental) {
	if s.pub == nil || r == nil {
		return
	}
	s.pub.PublishRentalEvent(ctx, eventType, r)
}

func defaultCurrency(c string) string {
	c = strings.TrimSpace(c)
	if c == "" {
		return "USD"
	}
	return strings.ToUpper(c)
}
