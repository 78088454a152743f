package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/config"
)

func TestNewAppRejectsReportsWithoutHistory(t *testing.T) {
	cfg := &config.Config{Reports: config.ReportsConfig{Enabled: true}}

	var (
		application *app
		err         error
	)
	require.NotPanics(t, func() {
		application, err = newApp(context.Background(), cfg, zap.NewNop())
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENABLE_RUN_HISTORY")
	assert.Nil(t, application)
}

func TestNewAppRejectsUnknownSwapStrategy(t *testing.T) {
	cfg := &config.Config{Scheduler: config.SchedulerConfig{SwapStrategy: "rotate"}}

	var err error
	require.NotPanics(t, func() {
		_, err = newApp(context.Background(), cfg, zap.NewNop())
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rotate")
}

func TestNewAppWithoutOptionalFeatures(t *testing.T) {
	cfg := &config.Config{APIPrefix: "/api", Upload: config.UploadConfig{MaxFileSizeBytes: 1 << 20}}

	application, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, application.router)
	assert.Nil(t, application.queue)
	application.Close()
}

func TestAppCloseReleasesInReverseOrder(t *testing.T) {
	var order []string
	application := &app{logger: zap.NewNop()}
	application.closers = append(application.closers,
		func() error { order = append(order, "postgres"); return nil },
		func() error { order = append(order, "redis"); return errors.New("already closed") },
	)

	application.Close()
	application.Close()

	assert.Equal(t, []string{"redis", "postgres"}, order)
	assert.Empty(t, application.closers)
}
