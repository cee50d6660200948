package domain

import "time"

// Staff belongs to exactly one store and may only be assigned reservations
// whose type is in their qualification set.
type Staff struct {
	ID          int64
	StoreID     int64
	Name        string
	PhoneNumber string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
