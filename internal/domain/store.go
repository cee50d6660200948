package domain

import "time"

// Store is a bookable location. It owns its weekly business hours and staff.
type Store struct {
	ID          int64
	StoreName   string
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
