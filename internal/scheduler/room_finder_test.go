package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

func TestRoomFinderSkipsExcludedAndOccupied(t *testing.T) {
	entries := []models.Entry{
		newEntry("Math", "T1", "Y1", "101", "Monday", "09:00", "10:00"),
		newEntry("Physics", "T2", "Y2", "102", "Monday", "09:00", "10:00"),
	}

	room, ok := NewRoomFinder(DefaultConfig()).Find(entries, "Monday", 540, 600, "102", nil)

	assert.True(t, ok)
	assert.Equal(t, "103", room)
}

func TestRoomFinderSkipsReservedRooms(t *testing.T) {
	entries := []models.Entry{
		newEntry("Math", "T1", "Y1", "101", "Monday", "09:00", "10:00"),
		newEntry("Physics", "T2", "Y2", "102", "Monday", "09:00", "10:00"),
	}
	reserved := StringSet{"103": {}}

	room, ok := NewRoomFinder(DefaultConfig()).Find(entries, "Monday", 540, 600, "102", reserved)

	assert.True(t, ok)
	assert.Equal(t, "104", room)
}

func TestRoomFinderPrefersTimetableRooms(t *testing.T) {
	entries := []models.Entry{
		newEntry("Chem", "T3", "Y3", "Hall", "Tuesday", "09:00", "10:00"),
	}

	room, ok := NewRoomFinder(DefaultConfig()).Find(entries, "Monday", 540, 600, "", nil)

	assert.True(t, ok)
	assert.Equal(t, "Hall", room)
}

func TestRoomFinderOccupancyIsPerDay(t *testing.T) {
	entries := []models.Entry{
		newEntry("Chem", "T3", "Y3", "Hall", "Monday", "09:00", "10:00"),
	}

	room, ok := NewRoomFinder(DefaultConfig()).Find(entries, "Monday", 600, 660, "", nil)

	assert.True(t, ok)
	assert.Equal(t, "Hall", room)
}

func TestRoomFinderNoCandidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FallbackRooms = []string{}
	entries := []models.Entry{
		newEntry("Math", "T1", "Y1", "101", "Monday", "09:00", "10:00"),
		newEntry("Physics", "T2", "Y2", "102", "Monday", "09:00", "10:00"),
	}

	_, ok := NewRoomFinder(cfg).Find(entries, "Monday", 540, 600, "102", nil)

	assert.False(t, ok)
}
