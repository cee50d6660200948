package store

import "errors"

var (
	// ErrStoreNotFound is returned when no store matches the query.
	ErrStoreNotFound = errors.New("store.repository: store not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("store.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("store.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("store.repository: failed to scan row")
)
