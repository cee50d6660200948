package domain

import "github.com/m04kA/SMC-ReservationService/pkg/types"

// GenerateSlots produces the candidate start times between open and close for
// a service of durationMinutes. Slots advance on the fixed SlotStepMinutes
// grid starting at open; a slot is emitted iff the full duration fits before
// close (exact fit included). Longer services yield fewer slots, never
// differently aligned ones.
func GenerateSlots(open, close types.TimeString, durationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if durationMinutes <= 0 || !open.IsBefore(close) {
		return slots
	}

	current := open
	for {
		end, err := current.AddMinutes(durationMinutes)
		if err != nil || end.IsAfter(close) {
			break
		}
		slots = append(slots, current)

		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// SlotOnGrid reports whether start is one of the valid slots for the given
// hours and duration.
func SlotOnGrid(open, close types.TimeString, durationMinutes int, start types.TimeString) bool {
	for _, s := range GenerateSlots(open, close, durationMinutes) {
		if s == start {
			return true
		}
	}
	return false
}
