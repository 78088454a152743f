package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

func TestSlotSearcherStartsOneStepAfterEnd(t *testing.T) {
	entries := []models.Entry{
		newEntry("Math", "T1", "Y1", "101", "Monday", "09:00", "10:00"),
	}
	cfg := DefaultConfig()

	slot, ok := NewSlotSearcher(cfg, nil).Find(entries, "T1", "Monday", 540, 600, nil)

	require.True(t, ok)
	assert.Equal(t, "Monday", slot.Day)
	assert.Equal(t, "10:30", slot.StartLabel)
	assert.Equal(t, "11:30", slot.EndLabel)
	assert.Equal(t, "101", slot.Room)
}

func TestSlotSearcherSkipsBusyTeacherWindows(t *testing.T) {
	entries := []models.Entry{
		newEntry("Math", "T1", "Y1", "101", "Monday", "09:00", "10:00"),
		newEntry("Bio", "T1", "Y3", "103", "Monday", "10:30", "12:00"),
	}

	slot, ok := NewSlotSearcher(DefaultConfig(), nil).Find(entries, "T1", "Monday", 540, 600, nil)

	require.True(t, ok)
	assert.Equal(t, 720, slot.StartMin)
	assert.Equal(t, 780, slot.EndMin)
}

func TestSlotSearcherWrapsAroundWeek(t *testing.T) {
	slot, ok := NewSlotSearcher(DefaultConfig(), nil).Find(nil, "T1", "Friday", 1020, 1080, nil)

	require.True(t, ok)
	assert.Equal(t, "Monday", slot.Day)
	assert.Equal(t, "08:00", slot.StartLabel)
	assert.Equal(t, "09:00", slot.EndLabel)
	assert.Equal(t, "101", slot.Room)
}

func TestSlotSearcherUnknownDayStartsAtFirstDay(t *testing.T) {
	slot, ok := NewSlotSearcher(DefaultConfig(), nil).Find(nil, "T1", "Saturday", 540, 600, nil)

	require.True(t, ok)
	assert.Equal(t, "Monday", slot.Day)
	assert.Equal(t, "10:30", slot.StartLabel)
}

func TestSlotSearcherRejectsNonPositiveDuration(t *testing.T) {
	_, ok := NewSlotSearcher(DefaultConfig(), nil).Find(nil, "T1", "Monday", 600, 600, nil)
	assert.False(t, ok)
}

func TestSlotSearcherNoSlotWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Days = []string{"Monday"}
	cfg.DayOpen = 480
	cfg.DayClose = 600

	_, ok := NewSlotSearcher(cfg, nil).Find(nil, "T1", "Monday", 480, 540, nil)

	assert.False(t, ok)
}

func TestSlotSearcherHonoursReservedRooms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackRooms = []string{"101"}

	_, ok := NewSlotSearcher(cfg, nil).Find(nil, "T1", "Monday", 540, 600, StringSet{"101": {}})

	assert.False(t, ok)
}
