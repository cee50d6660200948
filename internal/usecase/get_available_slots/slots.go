package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// trimPastSlots drops slots whose start is not strictly after now's clock
// time. Only meaningful for today's date.
func trimPastSlots(slots []types.TimeString, now time.Time) []types.TimeString {
	current := types.NewTimeString(now)
	kept := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if s.IsAfter(current) {
			kept = append(kept, s)
		}
	}
	return kept
}

// busyIntervals groups the active reservations of one day into per-staff
// [start, end) intervals.
func busyIntervals(reservations []*domain.Reservation) map[int64][]interval {
	busy := make(map[int64][]interval)
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		busy[res.StaffID] = append(busy[res.StaffID], interval{start: res.StartTime, end: res.EndTime})
	}
	return busy
}

type interval struct {
	start time.Time
	end   time.Time
}

// filterByCapacity keeps a slot iff at least one of the qualified staff has no
// overlapping busy interval. The half-open overlap test means back-to-back
// reservations do not conflict. The per-slot counts are internal; callers only
// see membership.
func filterByCapacity(
	slots []types.TimeString,
	durationMinutes int,
	date time.Time,
	staffs []*domain.Staff,
	reservations []*domain.Reservation,
) []types.TimeString {
	busy := busyIntervals(reservations)

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		slotStart, err := slot.AtDate(date)
		if err != nil {
			continue
		}
		slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

		if countFreeStaff(slotStart, slotEnd, staffs, busy) > 0 {
			available = append(available, slot)
		}
	}
	return available
}

func countFreeStaff(slotStart, slotEnd time.Time, staffs []*domain.Staff, busy map[int64][]interval) int {
	free := 0
	for _, s := range staffs {
		if !staffBusy(slotStart, slotEnd, busy[s.ID]) {
			free++
		}
	}
	return free
}

func staffBusy(slotStart, slotEnd time.Time, intervals []interval) bool {
	for _, iv := range intervals {
		if domain.Overlaps(slotStart, slotEnd, iv.start, iv.end) {
			return true
		}
	}
	return false
}
