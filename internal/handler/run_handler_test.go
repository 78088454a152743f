package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

type runStoreMock struct {
	query       dto.RunListQuery
	summaries   []models.AnalysisRunSummary
	run         *models.AnalysisRun
	suggestions []models.Suggestion
	err         error
	calls       int
}

func (m *runStoreMock) List(ctx context.Context, query dto.RunListQuery) ([]models.AnalysisRunSummary, *models.Pagination, error) {
	m.query = query
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.summaries, &models.Pagination{Page: 1, PageSize: 20, TotalCount: len(m.summaries)}, nil
}

func (m *runStoreMock) Get(ctx context.Context, id string) (*models.AnalysisRun, error) {
	m.calls++
	return m.run, m.err
}

func (m *runStoreMock) Resolve(ctx context.Context, id string) ([]models.Suggestion, error) {
	m.calls++
	return m.suggestions, m.err
}

func TestRunHandlerList(t *testing.T) {
	mock := &runStoreMock{summaries: []models.AnalysisRunSummary{{ID: "run-1", SourceName: "week.csv"}}}
	handler := NewRunHandler(mock)

	c, w := newGinContext(http.MethodGet, "/api/runs?search=week&page=2&page_size=5&sort_order=asc", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.RunListQuery{Search: "week", Page: 2, PageSize: 5, SortOrder: "asc"}, mock.query)
	var runs []models.AnalysisRunSummary
	decodeEnvelope(t, w, &runs)
	require.Len(t, runs, 1)
	assert.Contains(t, w.Body.String(), `"pagination"`)
}

func TestRunHandlerListBadQuery(t *testing.T) {
	handler := NewRunHandler(&runStoreMock{})

	c, w := newGinContext(http.MethodGet, "/api/runs?page=abc", nil)
	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunHandlerGetAndResolve(t *testing.T) {
	mock := &runStoreMock{
		run:         &models.AnalysisRun{ID: "run-1", SourceName: "week.csv"},
		suggestions: []models.Suggestion{{Action: models.SuggestionActionManual}},
	}
	handler := NewRunHandler(mock)

	c, w := newGinContext(http.MethodGet, "/api/runs/run-1", nil)
	c.Params = gin.Params{{Key: "id", Value: testRunID}}
	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	var run models.AnalysisRun
	decodeEnvelope(t, w, &run)
	assert.Equal(t, "week.csv", run.SourceName)

	c, w = newGinContext(http.MethodPost, "/api/runs/run-1/resolve", nil)
	c.Params = gin.Params{{Key: "id", Value: testRunID}}
	handler.Resolve(c)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuggestFixResponse
	decodeEnvelope(t, w, &resp)
	require.Len(t, resp.Suggestions, 1)
}

func TestRunHandlerNotFound(t *testing.T) {
	handler := NewRunHandler(&runStoreMock{err: appErrors.Clone(appErrors.ErrNotFound, "analysis run not found")})

	c, w := newGinContext(http.MethodGet, "/api/runs/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: missingRunID}}
	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestRunHandlerRejectsNonUUIDBeforeStore(t *testing.T) {
	mock := &runStoreMock{run: &models.AnalysisRun{ID: testRunID}}
	handler := NewRunHandler(mock)

	for _, id := range []string{"run-1", "1; DROP TABLE analysis_runs", ""} {
		c, w := newGinContext(http.MethodGet, "/api/runs/x", nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		handler.Get(c)
		require.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "NOT_FOUND", errorCode(t, w))

		c, w = newGinContext(http.MethodPost, "/api/runs/x/resolve", nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		handler.Resolve(c)
		require.Equal(t, http.StatusNotFound, w.Code, id)
	}
	assert.Zero(t, mock.calls)
}
