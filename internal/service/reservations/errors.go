package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
