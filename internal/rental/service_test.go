package rental

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/FleetRentDrive/FleetRentDrive/internal/fleet"
)

// ---- 内存版 Store（测试用）----
// Transact 持全局锁模拟串行化事务，出错时整体回滚快照。
// 真实实现（repo.go）靠 MySQL 事务 + 车辆行锁达到同样效果。

type fakeData struct {
	vehicles map[string]*fleet.Vehicle
	rentals  map[string]*Rental
}

func (d *fakeData) clone() *fakeData {
	out := &fakeData{
		vehicles: make(map[string]*fleet.Vehicle, len(d.vehicles)),
		rentals:  make(map[string]*Rental, len(d.rentals)),
	}
	for id, v := range d.vehicles {
		cp := *v
		out.vehicles[id] = &cp
	}
	for id, r := range d.rentals {
		cp := *r
		out.rentals[id] = &cp
	}
	return out
}

type fakeTx struct{ d *fakeData }

func (t *fakeTx) Transact(ctx context.Context, fn func(tx Store) error) error {
	return fn(t)
}

func (t *fakeTx) GetVehicleForUpdate(_ context.Context, vehicleID string) (*fleet.Vehicle, error) {
	v, ok := t.d.vehicles[vehicleID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (t *fakeTx) SetVehicleAvailability(_ context.Context, vehicleID string, available bool) error {
	v, ok := t.d.vehicles[vehicleID]
	if !ok {
		return ErrNotFound
	}
	v.Available = available
	return nil
}

func (t *fakeTx) ListHoldsByVehicle(_ context.Context, vehicleID string) ([]Rental, error) {
	var out []Rental
	for _, r := range t.d.rentals {
		if r.VehicleID == vehicleID && !r.Status.IsTerminal() {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (t *fakeTx) CountHoldsByVehicle(_ context.Context, vehicleID, excludeID string) (int64, error) {
	var n int64
	for _, r := range t.d.rentals {
		if r.ID == excludeID {
			continue
		}
		if r.VehicleID == vehicleID && !r.Status.IsTerminal() {
			n++
		}
	}
	return n, nil
}

func (t *fakeTx) Insert(_ context.Context, r *Rental) error {
	cp := *r
	cp.CreatedAt = time.Now()
	t.d.rentals[r.ID] = &cp
	return nil
}

func (t *fakeTx) GetByID(_ context.Context, id string) (*Rental, error) {
	r, ok := t.d.rentals[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (t *fakeTx) GetByIDForUpdate(ctx context.Context, id string) (*Rental, error) {
	return t.GetByID(ctx, id)
}

func (t *fakeTx) Update(_ context.Context, r *Rental) error {
	if _, ok := t.d.rentals[r.ID]; !ok {
		return ErrNotFound
	}
	cp := *r
	t.d.rentals[r.ID] = &cp
	return nil
}

func (t *fakeTx) List(_ context.Context, f ListFilter) ([]Rental, int64, error) {
	var out []Rental
	for _, r := range t.d.rentals {
		if f.UserID != "" && r.UserID != f.UserID {
			continue
		}
		if f.VehicleID != "" && r.VehicleID != f.VehicleID {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (t *fakeTx) ListOverdue(_ context.Context, today time.Time) ([]Rental, error) {
	var out []Rental
	for _, r := range t.d.rentals {
		if r.Status == StatusActive && DateOnly(r.EndDate).Before(DateOnly(today)) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (t *fakeTx) ListCurrent(_ context.Context, today time.Time) ([]Rental, error) {
	day := DateOnly(today)
	var out []Rental
	for _, r := range t.d.rentals {
		if r.Status == StatusActive && !DateOnly(r.StartDate).After(day) && !DateOnly(r.EndDate).Before(day) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (t *fakeTx) Stats(_ context.Context) (*Stats, error) {
	out := &Stats{ByStatus: make(map[Status]int64)}
	for _, r := range t.d.rentals {
		out.Total++
		out.ByStatus[r.Status]++
		out.RevenueCents += r.TotalPriceCents
	}
	if out.Total > 0 {
		out.AvgPriceCents = out.RevenueCents / out.Total
	}
	return out, nil
}

type fakeStore struct {
	mu sync.Mutex
	d  *fakeData
}

func newFakeStore() *fakeStore {
	return &fakeStore{d: &fakeData{
		vehicles: make(map[string]*fleet.Vehicle),
		rentals:  make(map[string]*Rental),
	}}
}

func (s *fakeStore) addVehicle(id string, dailyPriceCents int64) {
	s.d.vehicles[id] = &fleet.Vehicle{
		ID:              id,
		Brand:           "Toyota",
		Model:           "Corolla",
		PlateNumber:     "TEST-" + id,
		Year:            2022,
		DailyPriceCents: dailyPriceCents,
		Available:       true,
	}
}

func (s *fakeStore) Transact(ctx context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.d.clone()
	if err := fn(&fakeTx{d: s.d}); err != nil {
		s.d = snap
		return err
	}
	return nil
}

func (s *fakeStore) withLock() *fakeTx {
	return &fakeTx{d: s.d}
}

func (s *fakeStore) GetVehicleForUpdate(ctx context.Context, id string) (*fleet.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().GetVehicleForUpdate(ctx, id)
}

func (s *fakeStore) SetVehicleAvailability(ctx context.Context, id string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().SetVehicleAvailability(ctx, id, available)
}

func (s *fakeStore) ListHoldsByVehicle(ctx context.Context, vehicleID string) ([]Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().ListHoldsByVehicle(ctx, vehicleID)
}

func (s *fakeStore) CountHoldsByVehicle(ctx context.Context, vehicleID, excludeID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().CountHoldsByVehicle(ctx, vehicleID, excludeID)
}

func (s *fakeStore) Insert(ctx context.Context, r *Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().Insert(ctx, r)
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (*Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().GetByID(ctx, id)
}

func (s *fakeStore) GetByIDForUpdate(ctx context.Context, id string) (*Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().GetByIDForUpdate(ctx, id)
}

func (s *fakeStore) Update(ctx context.Context, r *Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().Update(ctx, r)
}

func (s *fakeStore) List(ctx context.Context, f ListFilter) ([]Rental, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().List(ctx, f)
}

func (s *fakeStore) ListOverdue(ctx context.Context, today time.Time) ([]Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().ListOverdue(ctx, today)
}

func (s *fakeStore) ListCurrent(ctx context.Context, today time.Time) ([]Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().ListCurrent(ctx, today)
}

func (s *fakeStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withLock().Stats(ctx)
}

func (s *fakeStore) vehicleAvailable(t *testing.T, id string) bool {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.d.vehicles[id]
	if !ok {
		t.Fatalf("vehicle %s missing", id)
	}
	return v.Available
}

// ---- 事件记录器 ----

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishRentalEvent(_ context.Context, eventType string, _ *Rental) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

// ---- 用例 ----

func TestCreateRentalHoldsVehicleAndPrices(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	svc := NewService(store, nil)
	ctx := context.Background()

	r, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID:     "v-1",
		UserID:        "u-1",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		StartDate:     d("2024-03-01"),
		EndDate:       d("2024-03-03"),
	})
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}
	if r.Status != StatusPending {
		t.Fatalf("expected PENDING, got %s", r.Status)
	}
	if r.TotalPriceCents != 12000 {
		t.Fatalf("expected 12000 cents for 3 days at 4000, got %d", r.TotalPriceCents)
	}
	if r.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", r.Currency)
	}
	if store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must be unavailable after booking")
	}
}

func TestCreateRentalValidation(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-1",
		StartDate: d("2024-03-05"), EndDate: d("2024-03-01"),
	})
	if !errors.Is(err, ErrDateRangeInvalid) {
		t.Fatalf("expected ErrDateRangeInvalid, got %v", err)
	}

	_, err = svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "no-such", UserID: "u-1",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-02"),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown vehicle, got %v", err)
	}

	_, err = svc.CreateRental(ctx, CreateRentalInput{
		UserID:    "u-1",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-02"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty vehicle_id, got %v", err)
	}

	// 失败路径不得留下任何租约行或占用
	if n, _ := store.CountHoldsByVehicle(ctx, "v-1", ""); n != 0 {
		t.Fatalf("expected no holds after failed creates, got %d", n)
	}
	if !store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must stay available after failed creates")
	}
}

// 端到端预订场景：同一辆车（日租 $40）连续三个请求 + 结单后重试。
func TestBookingScenarioEndToEnd(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	pub := &recordingPublisher{}
	svc := NewService(store, pub)
	ctx := context.Background()

	// A：03-01..03-03 成功，$120
	a, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-a",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-03"),
	})
	if err != nil {
		t.Fatalf("request A: %v", err)
	}
	if a.TotalPriceCents != 12000 {
		t.Fatalf("request A price: expected 12000, got %d", a.TotalPriceCents)
	}
	if store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must be held after A")
	}

	// B：03-03..03-05 与 A 首尾相接，冲突
	_, err = svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-b",
		StartDate: d("2024-03-03"), EndDate: d("2024-03-05"),
	})
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("request B: expected ErrBookingConflict, got %v", err)
	}

	// C：03-04..03-05 日期不重叠，但 A 还占着车（不支持未来预订），同样冲突
	_, err = svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-c",
		StartDate: d("2024-03-04"), EndDate: d("2024-03-05"),
	})
	if !errors.Is(err, ErrBookingConflict) {
		t.Fatalf("request C while A pending: expected ErrBookingConflict, got %v", err)
	}

	// A 结单后车辆释放，C 重试成功
	if _, err := svc.CompleteRental(ctx, a.ID, time.Now()); err != nil {
		t.Fatalf("complete A: %v", err)
	}
	if !store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must be released after A completed")
	}
	c, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-c",
		StartDate: d("2024-03-04"), EndDate: d("2024-03-05"),
	})
	if err != nil {
		t.Fatalf("request C retry: %v", err)
	}
	if c.TotalPriceCents != 8000 {
		t.Fatalf("request C price: expected 8000, got %d", c.TotalPriceCents)
	}

	wantEvents := []string{EventRentalCreated, EventRentalCompleted, EventRentalCreated}
	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.events) != len(wantEvents) {
		t.Fatalf("expected %d events, got %v", len(wantEvents), pub.events)
	}
	for i, e := range wantEvents {
		if pub.events[i] != e {
			t.Fatalf("event %d: expected %s, got %s", i, e, pub.events[i])
		}
	}
}

// 并发抢同一辆车：最多一个成功，其余 ErrBookingConflict，且事后不变式成立。
func TestConcurrentCreateSingleWinner(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	svc := NewService(store, nil)
	ctx := context.Background()

	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateRental(ctx, CreateRentalInput{
				VehicleID: "v-1", UserID: "u-1",
				StartDate: d("2024-06-01"), EndDate: d("2024-06-05"),
			})
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrBookingConflict):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("expected exactly one winner, got %d", ok)
	}
	if conflict != workers-1 {
		t.Fatalf("expected %d conflicts, got %d", workers-1, conflict)
	}

	// 车上最多一个未终结租约，且 available 标志与占用一致
	n, err := store.CountHoldsByVehicle(ctx, "v-1", "")
	if err != nil {
		t.Fatalf("CountHoldsByVehicle: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one hold, got %d", n)
	}
	if store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must be unavailable while held")
	}
}

func TestStartCompleteLifecycle(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	svc := NewService(store, nil)
	ctx := context.Background()
	now := time.Now()

	r, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-1",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-03"),
	})
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}

	started, err := svc.StartRental(ctx, r.ID, now)
	if err != nil {
		t.Fatalf("StartRental: %v", err)
	}
	if started.Status != StatusActive || started.StartedAt == nil {
		t.Fatalf("expected ACTIVE with started_at, got %s", started.Status)
	}
	if store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must stay held while rental active")
	}

	done, err := svc.CompleteRental(ctx, r.ID, now)
	if err != nil {
		t.Fatalf("CompleteRental: %v", err)
	}
	if done.Status != StatusCompleted || done.CompletedAt == nil {
		t.Fatalf("expected COMPLETED with completed_at, got %s", done.Status)
	}
	if !store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must be released after completion")
	}
}

func TestCompleteTwiceIsInvalidTransition(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	svc := NewService(store, nil)
	ctx := context.Background()
	now := time.Now()

	r, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-1",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-03"),
	})
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}
	if _, err := svc.CompleteRental(ctx, r.ID, now); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	_, err = svc.CompleteRental(ctx, r.ID, now)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second complete: expected ErrInvalidTransition, got %v", err)
	}

	got, err := svc.GetRental(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetRental: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("status must remain COMPLETED, got %s", got.Status)
	}
	// 失败的流转不得动车辆标志
	if !store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle flag must be untouched by failed transition")
	}
}

func TestCancelReleasesVehicle(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	svc := NewService(store, nil)
	ctx := context.Background()

	r, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-1",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-03"),
	})
	if err != nil {
		t.Fatalf("CreateRental: %v", err)
	}

	cancelled, err := svc.CancelRental(ctx, r.ID, time.Now())
	if err != nil {
		t.Fatalf("CancelRental: %v", err)
	}
	if cancelled.Status != StatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("expected CANCELLED with cancelled_at, got %s", cancelled.Status)
	}
	if !store.vehicleAvailable(t, "v-1") {
		t.Fatalf("vehicle must be released after cancellation")
	}
}

func TestLifecycleOnUnknownRental(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	ctx := context.Background()
	now := time.Now()

	if _, err := svc.CompleteRental(ctx, "no-such", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("complete: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.CancelRental(ctx, "no-such", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cancel: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.StartRental(ctx, "no-such", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("start: expected ErrNotFound, got %v", err)
	}
}

func TestOverdueAndCurrentQueries(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	store.addVehicle("v-2", 5000)
	svc := NewService(store, nil)
	ctx := context.Background()
	now := time.Now()

	a, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-1",
		StartDate: d("2024-01-01"), EndDate: d("2024-01-05"),
	})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := svc.StartRental(ctx, a.ID, now); err != nil {
		t.Fatalf("start a: %v", err)
	}

	b, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-2", UserID: "u-2",
		StartDate: d("2024-02-01"), EndDate: d("2024-02-10"),
	})
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	if _, err := svc.StartRental(ctx, b.ID, now); err != nil {
		t.Fatalf("start b: %v", err)
	}

	// 以 2024-02-05 为“今天”：a 逾期，b 在租期内
	today := d("2024-02-05")
	overdue, err := svc.ListOverdueRentals(ctx, today)
	if err != nil {
		t.Fatalf("ListOverdueRentals: %v", err)
	}
	if len(overdue) != 1 || overdue[0].ID != a.ID {
		t.Fatalf("expected only rental a overdue, got %d", len(overdue))
	}

	current, err := svc.ListCurrentRentals(ctx, today)
	if err != nil {
		t.Fatalf("ListCurrentRentals: %v", err)
	}
	if len(current) != 1 || current[0].ID != b.ID {
		t.Fatalf("expected only rental b current, got %d", len(current))
	}
}

func TestRentalStats(t *testing.T) {
	store := newFakeStore()
	store.addVehicle("v-1", 4000)
	store.addVehicle("v-2", 10000)
	svc := NewService(store, nil)
	ctx := context.Background()
	now := time.Now()

	a, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-1", UserID: "u-1",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-03"), // 12000
	})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := svc.CompleteRental(ctx, a.ID, now); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	if _, err := svc.CreateRental(ctx, CreateRentalInput{
		VehicleID: "v-2", UserID: "u-2",
		StartDate: d("2024-03-01"), EndDate: d("2024-03-02"), // 20000
	}); err != nil {
		t.Fatalf("create b: %v", err)
	}

	stats, err := svc.RentalStats(ctx)
	if err != nil {
		t.Fatalf("RentalStats: %v", err)
	}
	if stats.Total != 2 {
		t.Fatalf("expected 2 rentals, got %d", stats.Total)
	}
	if stats.ByStatus[StatusCompleted] != 1 || stats.ByStatus[StatusPending] != 1 {
		t.Fatalf("unexpected by-status counts: %#v", stats.ByStatus)
	}
	if stats.RevenueCents != 32000 {
		t.Fatalf("expected revenue 32000, got %d", stats.RevenueCents)
	}
	if stats.AvgPriceCents != 16000 {
		t.Fatalf("expected avg 16000, got %d", stats.AvgPriceCents)
	}
}
