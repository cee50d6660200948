package domain

import "time"

// Day returns the calendar day of t as midnight anchored in UTC. Dates,
// reservation instants, and availability day anchors all use store-local
// wall clock carried in UTC; anchoring in the process zone would shift
// the overlap math against rows already persisted.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
