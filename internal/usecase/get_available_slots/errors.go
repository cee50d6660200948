package get_available_slots

import "errors"

var (
	// ErrStoreNotFound is returned when the store does not exist.
	ErrStoreNotFound = errors.New("get_available_slots: store not found")

	// ErrReservationTypeNotFound is returned when the reservation type does not exist.
	ErrReservationTypeNotFound = errors.New("get_available_slots: reservation type not found")

	// ErrNoQualifiedStaff is returned when no staff at the store can serve the
	// reservation type; availability cannot be computed without capacity.
	ErrNoQualifiedStaff = errors.New("get_available_slots: no staff available for this reservation type")

	// ErrInvalidInput is returned for malformed request parameters.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for storage or other infrastructure failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
