package service

import (
	"fmt"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/scheduler"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/config"
)

// NewEngineConfig converts environment settings into engine bounds.
func NewEngineConfig(cfg config.SchedulerConfig) (scheduler.Config, error) {
	out := scheduler.DefaultConfig()
	if cfg.FallbackRooms != nil {
		out.FallbackRooms = cfg.FallbackRooms
	}
	if len(cfg.Days) > 0 {
		out.Days = cfg.Days
	}
	if cfg.DayOpen != "" {
		open, err := models.ParseClock(cfg.DayOpen)
		if err != nil {
			return scheduler.Config{}, fmt.Errorf("scheduler day open: %w", err)
		}
		out.DayOpen = open
	}
	if cfg.DayClose != "" {
		closing, err := models.ParseClock(cfg.DayClose)
		if err != nil {
			return scheduler.Config{}, fmt.Errorf("scheduler day close: %w", err)
		}
		out.DayClose = closing
	}
	if out.DayClose <= out.DayOpen {
		return scheduler.Config{}, fmt.Errorf("scheduler day close %s must be after open %s", cfg.DayClose, cfg.DayOpen)
	}
	if cfg.StepMinutes > 0 {
		out.StepMinutes = cfg.StepMinutes
	}
	out.StrictFieldMatching = cfg.StrictFieldMatching
	if cfg.SwapStrategy != "" {
		out.SwapStrategy = cfg.SwapStrategy
	}
	if _, err := scheduler.NewSwapResolver(out); err != nil {
		return scheduler.Config{}, err
	}
	return out, nil
}
