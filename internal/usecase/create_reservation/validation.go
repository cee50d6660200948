package create_reservation

import (
	"fmt"
	"time"
)

// validateRequest checks structural validity and rejects past dates.
func validateRequest(req *Request, now time.Time) error {
	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}
	if req.ReservationTypeID <= 0 {
		return fmt.Errorf("%w: reservationTypeID must be positive", ErrInvalidInput)
	}
	if req.UserEmail == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	reqDay := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	if reqDay.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrValidation)
	}
	if reqDay.Equal(today) {
		start, err := req.StartTime.AtDate(reqDay)
		if err != nil {
			return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		if !start.After(now) {
			return fmt.Errorf("%w: startTime is in the past", ErrValidation)
		}
	}

	return nil
}
