package domain

import "time"

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPending   ReservationStatus = "pending"
	StatusCanceled  ReservationStatus = "canceled"
)

// Reservation is a committed appointment. EndTime is always StartTime plus the
// reservation type's duration. The no-overlap-per-staff invariant is enforced
// by the storage exclusion constraint, not by this struct.
type Reservation struct {
	ID                int64
	StoreID           int64
	ReservationTypeID int64
	StaffID           int64
	UserEmail         string
	Date              time.Time // calendar day, midnight store-local
	StartTime         time.Time
	EndTime           time.Time
	Status            ReservationStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive reports whether the reservation still occupies its staff member's
// time. Canceled rows neither block slots nor trip the exclusion constraint.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCanceled
}

// Overlaps is the half-open interval test: [aStart,aEnd) intersects
// [bStart,bEnd) iff aStart < bEnd && aEnd > bStart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
