package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSlotRegularClass(t *testing.T) {
	slots := ExpandSlot("MONDAY", "9:00-10:00", "DM", "CSE-A", false)
	require.Len(t, slots, 1)
	assert.Equal(t, "MONDAY", slots[0].Day)
	assert.Equal(t, "9:00-10:00", slots[0].Time)
	assert.Equal(t, "CSE-A", slots[0].Class)
	assert.False(t, slots[0].IsLab)
	assert.Zero(t, slots[0].LabHour)
}

func TestExpandSlotFullThreeHourLab(t *testing.T) {
	slots := ExpandSlot("TUESDAY", "9:00-10:00", "OOPJ LAB", "CSE-A", true)
	require.Len(t, slots, 3)
	for i, slot := range slots {
		assert.True(t, slot.IsLab)
		assert.Equal(t, i+1, slot.LabHour)
		assert.Equal(t, 3, slot.TotalLabHours)
		assert.Equal(t, TimeGrid[i], slot.Time)
	}
}

func TestExpandSlotLabBoundedByGridEnd(t *testing.T) {
	// Starting at the fifth of six slots leaves room for only two hours.
	slots := ExpandSlot("WEDNESDAY", "2:00-3:00", "MP1 LAB", "CSE-A", true)
	require.Len(t, slots, 2)
	assert.Equal(t, 2, slots[0].TotalLabHours)
	assert.Equal(t, "2:00-3:00", slots[0].Time)
	assert.Equal(t, "3:00-4:00", slots[1].Time)
}

func TestExpandSlotLabAtLastSlotDegeneratesToOneHour(t *testing.T) {
	slots := ExpandSlot("FRIDAY", "3:00-4:00", "MP1 LAB", "CSE-A", true)
	require.Len(t, slots, 1)
	assert.Equal(t, 1, slots[0].LabHour)
	assert.Equal(t, 1, slots[0].TotalLabHours)
}

func TestExpandSlotLabHourInvariant(t *testing.T) {
	for start, label := range TimeGrid {
		slots := ExpandSlot("MONDAY", label, "X LAB", "CSE-A", true)
		expected := len(TimeGrid) - start
		if expected > maxLabHours {
			expected = maxLabHours
		}
		require.Len(t, slots, expected)
		for _, slot := range slots {
			assert.GreaterOrEqual(t, slot.LabHour, 1)
			assert.LessOrEqual(t, slot.LabHour, slot.TotalLabHours)
			assert.LessOrEqual(t, slot.TotalLabHours, maxLabHours)
			assert.Equal(t, expected, slot.TotalLabHours)
		}
	}
}

func TestExpandSlotLabOffGridProducesNothing(t *testing.T) {
	assert.Empty(t, ExpandSlot("MONDAY", "4:00-5:00", "X LAB", "CSE-A", true))
}

func TestGridIndexExactMatchOnly(t *testing.T) {
	assert.Equal(t, 2, GridIndex("11:10-12:10"))
	assert.Equal(t, -1, GridIndex("11:10 - 12:10"))
}
