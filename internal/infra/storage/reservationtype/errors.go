package reservationtype

import "errors"

var (
	// ErrTypeNotFound is returned when no reservation type matches the query.
	ErrTypeNotFound = errors.New("reservationtype.repository: reservation type not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("reservationtype.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("reservationtype.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("reservationtype.repository: failed to scan row")
)
