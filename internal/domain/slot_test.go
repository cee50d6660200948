package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func TestGenerateSlots_FullDay(t *testing.T) {
	slots := GenerateSlots("10:00", "18:00", 30)

	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[15])

	// Every slot starts on the half-hour grid and fits before close.
	for _, slot := range slots {
		end, err := slot.AddMinutes(30)
		require.NoError(t, err)
		assert.False(t, end.IsAfter("18:00"), "slot %s runs past close", slot)
	}
}

func TestGenerateSlots_LongerDurationTrimsTail(t *testing.T) {
	// A 60-minute service keeps the same grid but drops the last start.
	slots := GenerateSlots("10:00", "18:00", 60)

	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[14])
}

func TestGenerateSlots_ExactFitBoundary(t *testing.T) {
	// The open interval holds exactly one service of that length.
	slots := GenerateSlots("10:00", "10:30", 30)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("10:00"), slots[0])

	// One minute longer and nothing fits.
	assert.Empty(t, GenerateSlots("10:00", "10:30", 31))
}

func TestGenerateSlots_DegenerateInputs(t *testing.T) {
	assert.Empty(t, GenerateSlots("18:00", "10:00", 30))
	assert.Empty(t, GenerateSlots("10:00", "10:00", 30))
	assert.Empty(t, GenerateSlots("10:00", "18:00", 0))
	assert.Empty(t, GenerateSlots("10:00", "18:00", -15))
}

func TestSlotOnGrid(t *testing.T) {
	assert.True(t, SlotOnGrid("10:00", "18:00", 30, "10:30"))
	assert.True(t, SlotOnGrid("10:00", "18:00", 30, "17:30"))

	// Off-grid starts are rejected even when the interval is free.
	assert.False(t, SlotOnGrid("10:00", "18:00", 30, "10:15"))
	// On-grid but the duration does not fit before close.
	assert.False(t, SlotOnGrid("10:00", "18:00", 60, "17:30"))
	assert.False(t, SlotOnGrid("10:00", "18:00", 30, "09:30"))
}
