package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" form, store-local.
// The zero value is the empty string.
type TimeString string

var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// NewTimeString builds a TimeString from the clock part of t, truncated to minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates s.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the HH:MM shape. "24:00" is accepted as the end-of-day bound.
func (t TimeString) Validate() error {
	_, err := t.totalMinutes()
	return err
}

// totalMinutes returns minutes since midnight.
func (t TimeString) totalMinutes() (int, error) {
	var h, m int
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return h*60 + m, nil
}

// AddMinutes returns the time m minutes later. Errors if the result would pass
// the end of the day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.totalMinutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("types: %q + %d minutes is outside the day", string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports t < other. Zero-padded HH:MM compares correctly as a string.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports t > other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

func (t TimeString) String() string {
	return string(t)
}

// AtDate combines t with the calendar day of date, in date's location.
func (t TimeString) AtDate(date time.Time) (time.Time, error) {
	total, err := t.totalMinutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), total/60, total%60, 0, 0, date.Location()), nil
}

// Scan implements sql.Scanner so "HH:MM" columns load directly.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
	return t.Validate()
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
