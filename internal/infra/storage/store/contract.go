package store

import "github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"

// DBExecutor is the database surface the repository needs.
type DBExecutor = dbmetrics.DBExecutor
