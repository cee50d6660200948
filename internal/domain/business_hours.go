package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// StoreBusinessHour is the open/close interval for one (store, weekday) pair.
// Exactly one row exists per pair; 0 = Sunday .. 6 = Saturday.
type StoreBusinessHour struct {
	ID        int64
	StoreID   int64
	DayOfWeek int
	IsClosed  bool
	StartTime types.TimeString // empty when closed
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the record describes an actual open interval. A
// closed flag or a missing bound both mean no slots that day.
func (h *StoreBusinessHour) IsOpen() bool {
	if h == nil || h.IsClosed {
		return false
	}
	return !h.StartTime.IsZero() && !h.EndTime.IsZero()
}
