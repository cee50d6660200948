package create_reservation

import "errors"

var (
	ErrStoreNotFound           = errors.New("create_reservation: store not found")
	ErrReservationTypeNotFound = errors.New("create_reservation: reservation type not found")
	ErrStoreClosed             = errors.New("create_reservation: store is closed on requested date")
	ErrInvalidSlot             = errors.New("create_reservation: requested time is not a valid slot")
	ErrNoQualifiedStaff        = errors.New("create_reservation: no qualified staff available")
	ErrDuplicateReservation    = errors.New("create_reservation: slot already taken")
	ErrValidation              = errors.New("create_reservation: validation failed")
	ErrInvalidInput            = errors.New("create_reservation: invalid input data")
	ErrInternal                = errors.New("create_reservation: internal error")
)
