package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// StoreRepository is the store lookup surface this use case needs.
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
}

// ReservationTypeRepository is the reservation type lookup surface.
type ReservationTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ReservationType, error)
}

// StaffRepository lists staff qualified for a reservation type at a store.
type StaffRepository interface {
	ListQualified(ctx context.Context, storeID, reservationTypeID int64) ([]*domain.Staff, error)
}

// BusinessHoursRepository resolves the (store, weekday) hours row.
type BusinessHoursRepository interface {
	GetByStoreAndWeekday(ctx context.Context, storeID int64, dayOfWeek int) (*domain.StoreBusinessHour, error)
}

// ReservationRepository reads existing bookings and commits the new one.
// Create must be backed by the storage exclusion guarantee: it either
// persists a non-overlapping row or fails with the repository's duplicate
// sentinel.
type ReservationRepository interface {
	ListByStoreAndDate(ctx context.Context, storeID int64, date time.Time) ([]*domain.Reservation, error)
	CountActiveByStaffIDs(ctx context.Context, staffIDs []int64) (map[int64]int, error)
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// BusinessMetrics counts booking outcomes. May be nil when metrics are
// disabled.
type BusinessMetrics interface {
	IncReservationCreated()
	IncReservationConflict()
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
