package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

const busiestLimit = 8

// AnalyticsService summarises clash lists and caches per-run analytics.
type AnalyticsService struct {
	runs   *RunService
	cache  *CacheService
	days   []string
	ttl    time.Duration
	logger *zap.Logger
}

// NewAnalyticsService constructs an analytics service. days fixes the order of
// the per-day breakdown; runs and cache are optional.
func NewAnalyticsService(runs *RunService, cache *CacheService, days []string, logger *zap.Logger) *AnalyticsService {
	if len(days) == 0 {
		days = models.WeekDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{runs: runs, cache: cache, days: days, logger: logger}
}

// WithCacheTTL sets how long per-run analytics stay cached.
func (s *AnalyticsService) WithCacheTTL(ttl time.Duration) *AnalyticsService {
	s.ttl = ttl
	return s
}

// Summarize computes analytics for a clash list.
func (s *AnalyticsService) Summarize(clashes []models.Clash) models.ClashAnalytics {
	result := models.ClashAnalytics{
		TotalClashes:    len(clashes),
		ClashesByType:   []models.NamedCount{},
		ClashesByDay:    []models.DayCount{},
		BusiestTeachers: []models.NamedCount{},
		BusiestRooms:    []models.NamedCount{},
		BusiestYears:    []models.NamedCount{},
	}
	if len(clashes) == 0 {
		return result
	}

	types := newCounter()
	days := map[string]int{}
	teachers := newCounter()
	rooms := newCounter()
	years := newCounter()
	for _, clash := range clashes {
		types.add(clash.Type.Label())
		days[clash.Day]++
		for _, entry := range clash.Entries {
			teachers.add(entry.Teacher)
			rooms.add(entry.Room)
			years.add(entry.Year)
		}
	}

	result.ClashesByType = types.counts("")
	for _, day := range s.days {
		if n := days[day]; n > 0 {
			result.ClashesByDay = append(result.ClashesByDay, models.DayCount{Day: day, Clashes: n})
		}
	}
	result.BusiestTeachers = top(teachers.ranked(""), busiestLimit)
	result.BusiestRooms = top(rooms.ranked(""), busiestLimit)
	result.BusiestYears = years.ranked("Year ")

	for _, clash := range clashes {
		switch {
		case len(clash.Entries) > 2:
			result.Severity.High++
		case len(clash.Entries) > 0 && teachers.value(clash.Entries[0].Teacher) >= 2:
			result.Severity.Medium++
		default:
			result.Severity.Low++
		}
	}
	return result
}

// ForRun returns analytics for a stored run. The boolean reports a cache hit.
func (s *AnalyticsService) ForRun(ctx context.Context, runID string) (models.ClashAnalytics, bool, error) {
	key := RunAnalyticsCacheKey(runID)
	var cached models.ClashAnalytics
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	}

	if s.runs == nil {
		return models.ClashAnalytics{}, false, appErrors.Clone(appErrors.ErrFeatureDisabled, "run history is disabled")
	}
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return models.ClashAnalytics{}, false, err
	}
	result := s.Summarize(run.Clashes)
	if err := s.cache.Set(ctx, key, result, s.ttl); err != nil {
		s.logger.Warn("cache run analytics", zap.String("run_id", runID), zap.Error(err))
	}
	return result, false, nil
}

// counter tallies labels keeping first-seen order for stable ties.
type counter struct {
	order []string
	n     map[string]int
}

func newCounter() *counter {
	return &counter{n: map[string]int{}}
}

func (c *counter) add(label string) {
	if _, ok := c.n[label]; !ok {
		c.order = append(c.order, label)
	}
	c.n[label]++
}

func (c *counter) value(label string) int {
	return c.n[label]
}

func (c *counter) counts(prefix string) []models.NamedCount {
	out := make([]models.NamedCount, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, models.NamedCount{Name: prefix + label, Clashes: c.n[label]})
	}
	return out
}

func (c *counter) ranked(prefix string) []models.NamedCount {
	out := c.counts(prefix)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Clashes > out[j].Clashes })
	return out
}

func top(list []models.NamedCount, n int) []models.NamedCount {
	if len(list) > n {
		return list[:n]
	}
	return list
}
