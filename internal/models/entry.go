package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday names accepted in the day column, in week order.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Entry is one scheduled course session loaded from a timetable file.
type Entry struct {
	Course   string `json:"course"`
	Teacher  string `json:"teacher"`
	Year     string `json:"year"`
	Room     string `json:"room"`
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Resource string `json:"resource,omitempty"`
	StartMin int    `json:"startMin"`
	EndMin   int    `json:"endMin"`
}

// Duration returns the session length in minutes.
func (e Entry) Duration() int {
	return e.EndMin - e.StartMin
}

// StartLabel returns the "HH:MM" start label, derived from minutes when absent.
func (e Entry) StartLabel() string {
	if e.Start != "" {
		return e.Start
	}
	return FormatClock(e.StartMin)
}

// EndLabel returns the "HH:MM" end label, derived from minutes when absent.
func (e Entry) EndLabel() string {
	if e.End != "" {
		return e.End
	}
	return FormatClock(e.EndMin)
}

// ParseClock converts "HH:MM" into minutes from midnight. A trailing ":SS"
// as produced by spreadsheet time cells is accepted and ignored.
func ParseClock(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", raw)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", raw, err)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", raw, err)
	}
	if len(parts) == 3 {
		seconds, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || seconds < 0 || seconds > 59 {
			return 0, fmt.Errorf("invalid second in %q", raw)
		}
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 || (hours == 24 && minutes > 0) {
		return 0, fmt.Errorf("time %q out of range", raw)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes from midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
