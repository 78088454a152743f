package scheduler

import "github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"

// Detector finds pairwise clashes within a timetable.
type Detector struct {
	match fieldMatcher
}

// NewDetector builds a detector honouring the field matching mode in cfg.
func NewDetector(cfg Config) *Detector {
	return &Detector{match: newFieldMatcher(cfg.StrictFieldMatching)}
}

// Detect returns clashes ordered by first-seen day, then by pair scan order.
// A pair sharing several dimensions yields one clash per dimension.
func (d *Detector) Detect(entries []models.Entry) []models.Clash {
	clashes := make([]models.Clash, 0)
	days, grouped := groupByDay(entries)
	for _, day := range days {
		dayEntries := grouped[day]
		for i := 0; i < len(dayEntries); i++ {
			for j := i + 1; j < len(dayEntries); j++ {
				a, b := dayEntries[i], dayEntries[j]
				if !Overlaps(a.StartMin, a.EndMin, b.StartMin, b.EndMin) {
					continue
				}
				if d.match(a.Teacher, b.Teacher) {
					clashes = append(clashes, newClash(models.ClashTypeTeacher, day, a, b))
				}
				if d.match(a.Room, b.Room) {
					clashes = append(clashes, newClash(models.ClashTypeRoom, day, a, b))
				}
				if d.match(a.Year, b.Year) {
					clashes = append(clashes, newClash(models.ClashTypeYear, day, a, b))
				}
			}
		}
	}
	return clashes
}

func newClash(kind models.ClashType, day string, a, b models.Entry) models.Clash {
	return models.Clash{Type: kind, Day: day, Entries: []models.Entry{a, b}}
}

func groupByDay(entries []models.Entry) ([]string, map[string][]models.Entry) {
	order := make([]string, 0)
	grouped := make(map[string][]models.Entry)
	for _, entry := range entries {
		if _, seen := grouped[entry.Day]; !seen {
			order = append(order, entry.Day)
		}
		grouped[entry.Day] = append(grouped[entry.Day], entry)
	}
	return order, grouped
}
