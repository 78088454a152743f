package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

func TestDetectionServiceDetectRecordsRun(t *testing.T) {
	runs := newRunRepoStub()
	svc := NewDetectionService(newTestEngine(t), runs, nil, NewMetricsService(), zap.NewNop())

	result, err := svc.Detect(context.Background(), "week.csv", strings.NewReader(roomClashCSV))
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	require.Len(t, result.Clashes, 1)
	assert.Equal(t, models.ClashTypeRoom, result.Clashes[0].Type)
	assert.Equal(t, "Monday", result.Clashes[0].Day)
	assert.False(t, result.Cached)

	require.NotEmpty(t, result.RunID)
	stored := runs.runs[result.RunID]
	require.NotNil(t, stored)
	assert.Equal(t, "week.csv", stored.SourceName)
	assert.Equal(t, 1, stored.ClashCount)
}

func TestDetectionServiceWithoutHistory(t *testing.T) {
	svc := NewDetectionService(newTestEngine(t), nil, nil, nil, nil)

	result, err := svc.Detect(context.Background(), "week.csv", strings.NewReader(roomClashCSV))
	require.NoError(t, err)
	assert.Empty(t, result.RunID)
	assert.Len(t, result.Clashes, 1)
}

func TestDetectionServiceHistoryFailureIsNotFatal(t *testing.T) {
	runs := newRunRepoStub()
	runs.createErr = errors.New("db down")
	svc := NewDetectionService(newTestEngine(t), runs, nil, nil, zap.NewNop())

	result, err := svc.Detect(context.Background(), "week.csv", strings.NewReader(roomClashCSV))
	require.NoError(t, err)
	assert.Empty(t, result.RunID)
	assert.Len(t, result.Clashes, 1)
}

func TestDetectionServiceCachesByContent(t *testing.T) {
	cacheRepo := &stubCacheRepo{}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := NewDetectionService(newTestEngine(t), nil, cache, nil, zap.NewNop())

	first, err := svc.Detect(context.Background(), "a.csv", strings.NewReader(roomClashCSV))
	require.NoError(t, err)
	assert.False(t, first.Cached)
	require.Len(t, cacheRepo.store, 1)

	second, err := svc.Detect(context.Background(), "b.csv", strings.NewReader(roomClashCSV))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, first.Clashes, second.Clashes)
}

func TestDetectionServiceRejectsUnsupportedFormat(t *testing.T) {
	svc := NewDetectionService(newTestEngine(t), nil, nil, nil, zap.NewNop())

	_, err := svc.Detect(context.Background(), "week.txt", strings.NewReader(roomClashCSV))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnsupportedFormat.Code, appErr.Code)
	assert.Equal(t, http.StatusUnsupportedMediaType, appErr.Status)
}

func TestDetectionServiceReportsRowErrors(t *testing.T) {
	svc := NewDetectionService(newTestEngine(t), nil, nil, nil, zap.NewNop())
	input := "course,teacher,year,room,day,start,end\n" +
		"Math,T1,Y1,101,Monday,09:00,10:00\n" +
		"Physics,T2,Y2,101,Monday,10:00,09:00\n"

	_, err := svc.Detect(context.Background(), "week.csv", strings.NewReader(input))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidTimetable.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "row 2")
}
