package domain

import "time"

// ReservationType is a service offering with a fixed appointment length.
type ReservationType struct {
	ID             int64
	Name           string
	Description    string
	DefaultMinutes int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
