package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request identifies the store and reservation type to compute availability for.
type Request struct {
	StoreID           int64
	ReservationTypeID int64
}

// Response is the availability for a fixed horizon of consecutive days
// starting today. Every day in the horizon is present, closed or fully booked
// days with an empty slot list.
type Response struct {
	Days []DaySlots
}

// DaySlots is the bookable start times of one calendar day, ascending.
type DaySlots struct {
	Date  time.Time
	Slots []types.TimeString
}
