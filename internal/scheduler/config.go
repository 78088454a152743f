package scheduler

import "github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"

// Swap strategies understood by NewSwapResolver.
const (
	SwapStrategyNone     = "none"
	SwapStrategyExchange = "exchange"
)

// Config carries institution-specific search bounds for the engine.
type Config struct {
	FallbackRooms       []string
	Days                []string
	DayOpen             int
	DayClose            int
	StepMinutes         int
	StrictFieldMatching bool
	SwapStrategy        string
}

// DefaultConfig returns the bounds used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		FallbackRooms: []string{"101", "102", "103", "104", "105", "Lab-1"},
		Days:          append([]string(nil), models.WeekDays...),
		DayOpen:       8 * 60,
		DayClose:      18 * 60,
		StepMinutes:   30,
		SwapStrategy:  SwapStrategyNone,
	}
}

// normalized fills zero values from DefaultConfig.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.FallbackRooms == nil {
		c.FallbackRooms = def.FallbackRooms
	}
	if len(c.Days) == 0 {
		c.Days = def.Days
	}
	if c.DayOpen <= 0 && c.DayClose <= 0 {
		c.DayOpen = def.DayOpen
		c.DayClose = def.DayClose
	}
	if c.DayClose <= c.DayOpen {
		c.DayClose = def.DayClose
	}
	if c.StepMinutes <= 0 {
		c.StepMinutes = def.StepMinutes
	}
	if c.SwapStrategy == "" {
		c.SwapStrategy = def.SwapStrategy
	}
	return c
}

// fieldMatcher decides whether two dimension values refer to the same resource.
type fieldMatcher func(a, b string) bool

func newFieldMatcher(strict bool) fieldMatcher {
	if strict {
		return func(a, b string) bool { return a != "" && a == b }
	}
	// Legacy behaviour: two missing values are considered equal.
	return func(a, b string) bool { return a == b }
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
