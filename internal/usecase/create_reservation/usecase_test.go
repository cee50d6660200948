package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	businesshoursrepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/businesshours"
	reservationrepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	rtyperepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservationtype"
	storerepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/store"
)

type fakeStoreRepo struct {
	stores map[int64]*domain.Store
}

func (f *fakeStoreRepo) GetByID(_ context.Context, id int64) (*domain.Store, error) {
	if s, ok := f.stores[id]; ok {
		return s, nil
	}
	return nil, storerepo.ErrStoreNotFound
}

type fakeTypeRepo struct {
	types map[int64]*domain.ReservationType
}

func (f *fakeTypeRepo) GetByID(_ context.Context, id int64) (*domain.ReservationType, error) {
	if t, ok := f.types[id]; ok {
		return t, nil
	}
	return nil, rtyperepo.ErrTypeNotFound
}

type fakeStaffRepo struct {
	staffs []*domain.Staff
}

func (f *fakeStaffRepo) ListQualified(_ context.Context, _, _ int64) ([]*domain.Staff, error) {
	return f.staffs, nil
}

type fakeHoursRepo struct {
	hours map[int]*domain.StoreBusinessHour
}

func (f *fakeHoursRepo) GetByStoreAndWeekday(_ context.Context, _ int64, dayOfWeek int) (*domain.StoreBusinessHour, error) {
	if h, ok := f.hours[dayOfWeek]; ok {
		return h, nil
	}
	return nil, businesshoursrepo.ErrHoursNotFound
}

// fakeReservationRepo mimics the storage layer's no-overlap exclusion
// guarantee with a mutex, so concurrent Create calls behave like two
// transactions racing on the constraint.
type fakeReservationRepo struct {
	mu           sync.Mutex
	nextID       int64
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) ListByStoreAndDate(_ context.Context, storeID int64, date time.Time) ([]*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.StoreID == storeID && r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) CountActiveByStaffIDs(_ context.Context, staffIDs []int64) (map[int64]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[int64]int, len(staffIDs))
	for _, id := range staffIDs {
		for _, r := range f.reservations {
			if r.StaffID == id && r.IsActive() {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reservations {
		if r.StaffID == res.StaffID && r.IsActive() &&
			domain.Overlaps(r.StartTime, r.EndTime, res.StartTime, res.EndTime) {
			return nil, reservationrepo.ErrDuplicateReservation
		}
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Monday 2026-09-07, 12:10.
var testNow = time.Date(2026, 9, 7, 12, 10, 0, 0, time.UTC)

func weekdaysOpen() map[int]*domain.StoreBusinessHour {
	hours := make(map[int]*domain.StoreBusinessHour)
	for wd := 1; wd <= 5; wd++ {
		hours[wd] = &domain.StoreBusinessHour{StoreID: 1, DayOfWeek: wd, StartTime: "10:00", EndTime: "18:00"}
	}
	hours[6] = &domain.StoreBusinessHour{StoreID: 1, DayOfWeek: 6, IsClosed: true}
	return hours
}

func newTestUseCase(staffs []*domain.Staff, repo *fakeReservationRepo) *UseCase {
	return NewUseCase(
		&fakeStoreRepo{stores: map[int64]*domain.Store{1: {ID: 1, StoreName: "Downtown"}}},
		&fakeTypeRepo{types: map[int64]*domain.ReservationType{1: {ID: 1, Name: "Consultation", DefaultMinutes: 30}}},
		&fakeStaffRepo{staffs: staffs},
		&fakeHoursRepo{hours: weekdaysOpen()},
		repo,
		&fixedTime{now: testNow},
		nil,
		nopLogger{},
	)
}

func validRequest() *Request {
	return &Request{
		StoreID:           1,
		ReservationTypeID: 1,
		UserEmail:         "user@example.com",
		Date:              time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), // tomorrow
		StartTime:         "10:00",
	}
}

func TestExecute_BooksSlot(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StaffID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "10:00", resp.StartTime.Format(domain.TimeFormat))
	assert.Equal(t, "10:30", resp.EndTime.Format(domain.TimeFormat))
	require.Len(t, repo.reservations, 1)
}

func TestExecute_PicksLeastLoadedStaff(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}, {ID: 2, StoreID: 1}}, repo)

	// Staff 1 already has a booking elsewhere in the week.
	otherDay := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), &domain.Reservation{
		StoreID: 1, StaffID: 1, Status: domain.StatusConfirmed,
		Date:      otherDay,
		StartTime: otherDay.Add(14 * time.Hour),
		EndTime:   otherDay.Add(14*time.Hour + 30*time.Minute),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.StaffID)
}

func TestExecute_TieBreaksOnLowestStaffID(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}, {ID: 2, StoreID: 1}}, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.StaffID)
}

func TestExecute_BusyStaffIsSkipped(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}, {ID: 2, StoreID: 1}}, repo)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.StaffID)

	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.StaffID)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoQualifiedStaff)
}

func TestExecute_PastDateRejected(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)

	req := validRequest()
	req.Date = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	// Today with a start time already in the past is rejected too.
	req = validRequest()
	req.Date = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	req.StartTime = "10:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, repo.reservations, "nothing may be persisted on rejection")
}

func TestExecute_StoreClosed(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)

	// Saturday carries a closed flag, Sunday has no hours row.
	req := validRequest()
	req.Date = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStoreClosed)

	req.Date = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestExecute_OffGridSlotRejected(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)

	req := validRequest()
	req.StartTime = "10:15"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	// On the grid step but the duration runs past close.
	req.StartTime = "17:45"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_UnknownReferences(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)

	req := validRequest()
	req.StoreID = 99
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStoreNotFound)

	req = validRequest()
	req.ReservationTypeID = 99
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationTypeNotFound)
}

func TestExecute_NonUTCClockAnchorsInUTC(t *testing.T) {
	// The reservation instants must come out UTC-anchored regardless of
	// the process zone, and the candidate filter must keep matching rows
	// stored that way.
	jst := time.FixedZone("JST", 9*3600)
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)
	uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 7, 12, 10, 0, 0, jst)}

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, time.UTC, first.StartTime.Location())
	assert.Equal(t, time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC), first.StartTime)

	// Re-booking the same slot must see the persisted row and refuse.
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoQualifiedStaff)
	assert.Len(t, repo.reservations, 1)
}

func TestExecute_ConcurrentDoubleBooking(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase([]*domain.Staff{{ID: 1, StoreID: 1}}, repo)

	const attempts = 8
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		// Losers either lose the insert race or see the winner's row
		// when filtering candidates.
		lost := errors.Is(err, ErrDuplicateReservation) || errors.Is(err, ErrNoQualifiedStaff)
		assert.True(t, lost, "unexpected error: %v", err)
	}
	assert.Equal(t, 1, winners, "exactly one attempt may win the slot")
	assert.Len(t, repo.reservations, 1)
}
