package stores

import "errors"

var (
	// ErrStoreNotFound is returned when the store does not exist
	ErrStoreNotFound = errors.New("store not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
