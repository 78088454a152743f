package scheduler

import "github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"

// RoomFinder locates a room free for a given day and window.
type RoomFinder struct {
	fallback []string
}

// NewRoomFinder builds a finder using the configured fallback pool.
func NewRoomFinder(cfg Config) *RoomFinder {
	cfg = cfg.normalized()
	return &RoomFinder{fallback: cfg.FallbackRooms}
}

// Find returns the first candidate room that is not excluded, not reserved and
// not occupied on day within [start, end). Candidates are the rooms seen in
// entries (first-seen order) followed by the fallback pool.
func (f *RoomFinder) Find(entries []models.Entry, day string, start, end int, exclude string, reserved StringSet) (string, bool) {
	for _, room := range f.candidates(entries) {
		if room == exclude || reserved.Has(room) {
			continue
		}
		if roomOccupied(entries, room, day, start, end) {
			continue
		}
		return room, true
	}
	return "", false
}

func (f *RoomFinder) candidates(entries []models.Entry) []string {
	seen := make(StringSet, len(f.fallback))
	rooms := make([]string, 0, len(f.fallback))
	add := func(room string) {
		if room == "" || seen.Has(room) {
			return
		}
		seen.Add(room)
		rooms = append(rooms, room)
	}
	for _, entry := range entries {
		add(entry.Room)
	}
	for _, room := range f.fallback {
		add(room)
	}
	return rooms
}

func roomOccupied(entries []models.Entry, room, day string, start, end int) bool {
	for _, entry := range entries {
		if entry.Room == room && entry.Day == day && Overlaps(entry.StartMin, entry.EndMin, start, end) {
			return true
		}
	}
	return false
}
