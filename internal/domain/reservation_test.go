package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{name: "identical", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 0), bEnd: at(10, 30), want: true},
		{name: "partial overlap", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(10, 30), bEnd: at(11, 30), want: true},
		{name: "contained", aStart: at(10, 0), aEnd: at(12, 0), bStart: at(10, 30), bEnd: at(11, 0), want: true},
		{name: "back to back", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 30), bEnd: at(11, 0), want: false},
		{name: "disjoint", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(14, 0), bEnd: at(14, 30), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Symmetric in both interval arguments.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestReservation_IsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCanceled}).IsActive())
}
