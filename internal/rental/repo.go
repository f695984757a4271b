package rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FleetRentDrive/FleetRentDrive/internal/fleet"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo 是 Store 的 GORM/MySQL 实现。
// 所有存储层错误统一翻译成领域错误：找不到 -> ErrNotFound，
// 其余（连接、约束等）-> ErrStorageUnavailable，调用方用 errors.Is 判断。
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDomainErr(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func isDomainErr(err error) bool {
	for _, d := range []error{
		ErrDateRangeInvalid, ErrBookingConflict, ErrNotFound,
		ErrInvalidTransition, ErrInvalidInput, ErrStorageUnavailable,
	} {
		if errors.Is(err, d) {
			return true
		}
	}
	return false
}

// Transact 在一个数据库事务里执行 fn；fn 里拿到的是绑定事务的 Store。
// fn 返回错误则整体回滚：租约行和车辆标志要么一起提交，要么都不落。
func (r *Repo) Transact(ctx context.Context, fn func(tx Store) error) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{db: tx})
	})
	return wrapStorage(err)
}

// GetVehicleForUpdate 对车辆行加 FOR UPDATE 锁。
// 同一辆车的并发下单/结单在这一行上串行化（见 Service.CreateRental）。
func (r *Repo) GetVehicleForUpdate(ctx context.Context, vehicleID string) (*fleet.Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	var v fleet.Vehicle
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", vehicleID).First(&v).Error
	if err != nil {
		return nil, wrapStorage(err)
	}
	return &v, nil
}

func (r *Repo) SetVehicleAvailability(ctx context.Context, vehicleID string, available bool) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	res := db.Model(&fleet.Vehicle{}).Where("id = ?", vehicleID).Update("available", available)
	if res.Error != nil {
		return wrapStorage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListHoldsByVehicle 返回占用该车的租约（PENDING/ACTIVE）。
func (r *Repo) ListHoldsByVehicle(ctx context.Context, vehicleID string) ([]Rental, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	var holds []Rental
	err := db.Where("vehicle_id = ? AND status IN ?", vehicleID,
		[]Status{StatusPending, StatusActive}).Find(&holds).Error
	if err != nil {
		return nil, wrapStorage(err)
	}
	return holds, nil
}

// CountHoldsByVehicle 统计该车上除 excludeID 之外的占用数，用于归还/取消后重算 available。
func (r *Repo) CountHoldsByVehicle(ctx context.Context, vehicleID, excludeID string) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	var n int64
	q := db.Model(&Rental{}).Where("vehicle_id = ? AND status IN ?", vehicleID,
		[]Status{StatusPending, StatusActive})
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, wrapStorage(err)
	}
	return n, nil
}

func (r *Repo) Insert(ctx context.Context, rental *Rental) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	return wrapStorage(db.Create(rental).Error)
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Rental, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate 带行锁读取租约，状态流转前必须走这里。
func (r *Repo) GetByIDForUpdate(ctx context.Context, id string) (*Rental, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repo) getByID(ctx context.Context, id string, lock bool) (*Rental, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var rental Rental
	if err := db.Where("id = ?", id).First(&rental).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return &rental, nil
}

func (r *Repo) Update(ctx context.Context, rental *Rental) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	return wrapStorage(db.Save(rental).Error)
}

// ListFilter 查询条件。
type ListFilter struct {
	UserID    string
	VehicleID string
	Status    Status
	Offset    int
	Limit     int
}

// List 支持按 user_id / vehicle_id / status 过滤 + 分页。
func (r *Repo) List(ctx context.Context, f ListFilter) ([]Rental, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := db.Model(&Rental{})
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrapStorage(err)
	}
	var rentals []Rental
	if err := q.Order("created_at DESC").Offset(f.Offset).Limit(f.Limit).Find(&rentals).Error; err != nil {
		return nil, 0, wrapStorage(err)
	}
	return rentals, total, nil
}

// ListOverdue 逾期未还：ACTIVE 且 end_date 已过。
func (r *Repo) ListOverdue(ctx context.Context, today time.Time) ([]Rental, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	var rentals []Rental
	err := db.Where("status = ? AND end_date < ?", StatusActive, DateOnly(today)).
		Order("end_date").Find(&rentals).Error
	if err != nil {
		return nil, wrapStorage(err)
	}
	return rentals, nil
}

// ListCurrent 正在租期内的 ACTIVE 租约。
func (r *Repo) ListCurrent(ctx context.Context, today time.Time) ([]Rental, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}
	d := DateOnly(today)
	var rentals []Rental
	err := db.Where("status = ? AND start_date <= ? AND end_date >= ?", StatusActive, d, d).
		Order("end_date").Find(&rentals).Error
	if err != nil {
		return nil, wrapStorage(err)
	}
	return rentals, nil
}

// Stats 运营统计（原型里的 rental statistics 报表）。
type Stats struct {
	Total         int64
	ByStatus      map[Status]int64
	RevenueCents  int64
	AvgPriceCents int64
}

func (r *Repo) Stats(ctx context.Context) (*Stats, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("%w: repo db is nil", ErrStorageUnavailable)
	}

	var sums struct {
		Total   int64
		Revenue int64
	}
	err := db.Model(&Rental{}).
		Select("COUNT(*) AS total, COALESCE(SUM(total_price_cents), 0) AS revenue").
		Scan(&sums).Error
	if err != nil {
		return nil, wrapStorage(err)
	}

	var perStatus []struct {
		Status Status
		N      int64
	}
	err = db.Model(&Rental{}).Select("status, COUNT(*) AS n").Group("status").Scan(&perStatus).Error
	if err != nil {
		return nil, wrapStorage(err)
	}

	out := &Stats{
		Total:        sums.Total,
		ByStatus:     make(map[Status]int64, len(perStatus)),
		RevenueCents: sums.Revenue,
	}
	for _, row := range perStatus {
		out.ByStatus[row.Status] = row.N
	}
	if out.Total > 0 {
		out.AvgPriceCents = out.RevenueCents / out.Total
	}
	return out, nil
}
