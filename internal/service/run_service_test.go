package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

func seedRun(t *testing.T, runs *runRepoStub, source string) *models.AnalysisRun {
	t.Helper()
	req := roomClashRequest()
	run := &models.AnalysisRun{SourceName: source, Entries: req.Timetable, Clashes: req.Clashes}
	require.NoError(t, runs.Create(context.Background(), run))
	return run
}

func newRunServiceForTest(t *testing.T, runs *runRepoStub) *RunService {
	t.Helper()
	resolution := NewResolutionService(newTestEngine(t), runs, nil, nil, zap.NewNop())
	return NewRunService(runs, resolution, nil, nil, zap.NewNop())
}

func TestRunServiceList(t *testing.T) {
	runs := newRunRepoStub()
	seedRun(t, runs, "week-1.csv")
	seedRun(t, runs, "exams.xlsx")
	svc := newRunServiceForTest(t, runs)

	items, pagination, err := svc.List(context.Background(), dto.RunListQuery{Search: "week"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "week-1.csv", items[0].SourceName)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)
	assert.Equal(t, 1, pagination.TotalCount)
}

func TestRunServiceListValidation(t *testing.T) {
	svc := newRunServiceForTest(t, newRunRepoStub())

	_, _, err := svc.List(context.Background(), dto.RunListQuery{SortOrder: "sideways"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRunServiceListError(t *testing.T) {
	runs := newRunRepoStub()
	runs.listErr = errors.New("boom")
	svc := newRunServiceForTest(t, runs)

	_, _, err := svc.List(context.Background(), dto.RunListQuery{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestRunServiceGetNotFound(t *testing.T) {
	svc := newRunServiceForTest(t, newRunRepoStub())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRunServiceResolveStoresSuggestions(t *testing.T) {
	runs := newRunRepoStub()
	run := seedRun(t, runs, "week.csv")
	svc := newRunServiceForTest(t, runs)

	suggestions, err := svc.Resolve(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Physics", suggestions[0].TargetCourse)
	assert.Equal(t, 1, runs.runs[run.ID].SuggestionCount)
}

func TestRunServiceGetCachesUntilSuggestionsChange(t *testing.T) {
	runs := newRunRepoStub()
	run := seedRun(t, runs, "week.csv")
	cacheRepo := &stubCacheRepo{}
	cache := NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	svc := newRunServiceForTest(t, runs).WithCache(cache)
	ctx := context.Background()

	_, err := svc.Get(ctx, run.ID)
	require.NoError(t, err)
	first, err := svc.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, runs.finds)
	assert.Equal(t, 0, first.SuggestionCount)
	assert.Contains(t, cacheRepo.store, RunCacheKey(run.ID))

	_, err = svc.Resolve(ctx, run.ID)
	require.NoError(t, err)
	assert.NotContains(t, cacheRepo.store, RunCacheKey(run.ID))

	fresh, err := svc.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, runs.finds)
	assert.Equal(t, 1, fresh.SuggestionCount)
}
