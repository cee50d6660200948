package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request carries the booking parameters.
type Request struct {
	StoreID           int64
	ReservationTypeID int64
	UserEmail         string
	Date              time.Time
	StartTime         types.TimeString
}

// Response describes the committed reservation.
type Response struct {
	ID                int64
	StoreID           int64
	ReservationTypeID int64
	StaffID           int64
	UserEmail         string
	Date              time.Time
	StartTime         time.Time
	EndTime           time.Time
	Status            string
	CreatedAt         time.Time
}
