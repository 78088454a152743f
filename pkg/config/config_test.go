package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, []string{"101", "102", "103", "104", "105", "Lab-1"}, cfg.Scheduler.FallbackRooms)
	assert.Equal(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, cfg.Scheduler.Days)
	assert.Equal(t, "08:00", cfg.Scheduler.DayOpen)
	assert.Equal(t, "18:00", cfg.Scheduler.DayClose)
	assert.Equal(t, 30, cfg.Scheduler.StepMinutes)
	assert.Equal(t, "none", cfg.Scheduler.SwapStrategy)
	assert.False(t, cfg.Scheduler.StrictFieldMatching)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileSizeBytes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SCHEDULER_FALLBACK_ROOMS", " A1, ,B2 ")
	t.Setenv("SCHEDULER_STRICT_FIELDS", "true")
	t.Setenv("SCHEDULER_SWAP_STRATEGY", " Exchange ")
	t.Setenv("ENABLE_RUN_HISTORY", "true")
	t.Setenv("DETECTION_CACHE_TTL", "90s")
	t.Setenv("REPORTS_SIGNED_URL_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "B2"}, cfg.Scheduler.FallbackRooms)
	assert.True(t, cfg.Scheduler.StrictFieldMatching)
	assert.Equal(t, "exchange", cfg.Scheduler.SwapStrategy)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 24*time.Hour, cfg.Reports.SignedURLTTL)
}
