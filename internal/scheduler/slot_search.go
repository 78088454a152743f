package scheduler

import "github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"

// Slot is a proposed placement found by the teacher-slot search.
type Slot struct {
	Day        string
	StartMin   int
	EndMin     int
	StartLabel string
	EndLabel   string
	Room       string
}

// SlotSearcher scans the configured week for the earliest slot where a teacher
// and some room are both free.
type SlotSearcher struct {
	days     []string
	dayOpen  int
	dayClose int
	step     int
	rooms    *RoomFinder
	match    fieldMatcher
}

// NewSlotSearcher builds a searcher bounded by cfg.
func NewSlotSearcher(cfg Config, rooms *RoomFinder) *SlotSearcher {
	cfg = cfg.normalized()
	if rooms == nil {
		rooms = NewRoomFinder(cfg)
	}
	return &SlotSearcher{
		days:     cfg.Days,
		dayOpen:  cfg.DayOpen,
		dayClose: cfg.DayClose,
		step:     cfg.StepMinutes,
		rooms:    rooms,
		match:    newFieldMatcher(cfg.StrictFieldMatching),
	}
}

// Find searches forward from day (the first configured day when unknown),
// wrapping once around the week. On the
// starting day candidates begin one step after end; other days start at the
// opening bound. The first window satisfying both teacher and room wins.
func (s *SlotSearcher) Find(entries []models.Entry, teacher, day string, start, end int, reserved StringSet) (Slot, bool) {
	duration := end - start
	if duration <= 0 {
		return Slot{}, false
	}
	first := s.dayIndex(day)
	for offset := 0; offset < len(s.days); offset++ {
		candidateDay := s.days[(first+offset)%len(s.days)]
		candidate := s.dayOpen
		if offset == 0 {
			candidate = end + s.step
		}
		for ; candidate+duration <= s.dayClose; candidate += s.step {
			candidateEnd := candidate + duration
			if s.teacherBusy(entries, teacher, candidateDay, candidate, candidateEnd) {
				continue
			}
			room, ok := s.rooms.Find(entries, candidateDay, candidate, candidateEnd, "", reserved)
			if !ok {
				continue
			}
			return Slot{
				Day:        candidateDay,
				StartMin:   candidate,
				EndMin:     candidateEnd,
				StartLabel: models.FormatClock(candidate),
				EndLabel:   models.FormatClock(candidateEnd),
				Room:       room,
			}, true
		}
	}
	return Slot{}, false
}

func (s *SlotSearcher) dayIndex(day string) int {
	for i, name := range s.days {
		if name == day {
			return i
		}
	}
	return 0
}

func (s *SlotSearcher) teacherBusy(entries []models.Entry, teacher, day string, start, end int) bool {
	for _, entry := range entries {
		if entry.Day == day && s.match(entry.Teacher, teacher) && Overlaps(entry.StartMin, entry.EndMin, start, end) {
			return true
		}
	}
	return false
}
