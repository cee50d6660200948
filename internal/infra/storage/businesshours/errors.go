package businesshours

import "errors"

var (
	// ErrHoursNotFound is returned when no row exists for (store, weekday).
	// Callers treat this the same as a closed day.
	ErrHoursNotFound = errors.New("businesshours.repository: business hours not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("businesshours.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("businesshours.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("businesshours.repository: failed to scan row")
)
