package domain

// Slot grid constants. The step is system-wide: every service type aligns to
// the same 30-minute grid regardless of its duration.
const (
	SlotStepMinutes = 30

	// AvailabilityHorizonDays is the number of consecutive days, starting
	// today, covered by an availability query.
	AvailabilityHorizonDays = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
