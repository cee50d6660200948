package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches the query.
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDuplicateReservation is returned when the staff no-overlap exclusion
	// constraint rejects an insert. This is the authoritative double-booking
	// guard; the usecase-level candidate filter only narrows the odds of
	// reaching it.
	ErrDuplicateReservation = errors.New("reservation.repository: overlapping reservation for staff")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
