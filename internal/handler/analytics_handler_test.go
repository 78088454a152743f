package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

type analyticsMock struct {
	result   models.ClashAnalytics
	cacheHit bool
	err      error
	clashes  []models.Clash
}

func (m *analyticsMock) Summarize(clashes []models.Clash) models.ClashAnalytics {
	m.clashes = clashes
	return m.result
}

func (m *analyticsMock) ForRun(ctx context.Context, runID string) (models.ClashAnalytics, bool, error) {
	return m.result, m.cacheHit, m.err
}

func TestAnalyticsHandlerClashes(t *testing.T) {
	mock := &analyticsMock{result: models.ClashAnalytics{TotalClashes: 1}}
	handler := NewAnalyticsHandler(mock)

	c, w := newGinContext(http.MethodPost, "/api/analytics/clashes", []byte(`{"clashes":[{"type":"Room Clash","day":"Monday","entries":[]}]}`))
	handler.Clashes(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mock.clashes, 1)
	var result models.ClashAnalytics
	meta := decodeEnvelope(t, w, &result)
	assert.Equal(t, 1, result.TotalClashes)
	assert.Contains(t, meta, "processing_time_ms")
}

func TestAnalyticsHandlerClashesRequiresList(t *testing.T) {
	handler := NewAnalyticsHandler(&analyticsMock{})

	c, w := newGinContext(http.MethodPost, "/api/analytics/clashes", []byte(`{}`))
	handler.Clashes(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyticsHandlerRun(t *testing.T) {
	handler := NewAnalyticsHandler(&analyticsMock{result: models.ClashAnalytics{TotalClashes: 3}, cacheHit: true})

	c, w := newGinContext(http.MethodGet, "/api/runs/run-1/analytics", nil)
	c.Params = gin.Params{{Key: "id", Value: testRunID}}
	handler.Run(c)

	require.Equal(t, http.StatusOK, w.Code)
	var result models.ClashAnalytics
	meta := decodeEnvelope(t, w, &result)
	assert.Equal(t, 3, result.TotalClashes)
	assert.Equal(t, true, meta["cache_hit"])
}

func TestAnalyticsHandlerRunNotFound(t *testing.T) {
	handler := NewAnalyticsHandler(&analyticsMock{err: appErrors.Clone(appErrors.ErrNotFound, "analysis run not found")})

	c, w := newGinContext(http.MethodGet, "/api/runs/missing/analytics", nil)
	c.Params = gin.Params{{Key: "id", Value: missingRunID}}
	handler.Run(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsHandlerRunRejectsNonUUID(t *testing.T) {
	handler := NewAnalyticsHandler(&analyticsMock{result: models.ClashAnalytics{TotalClashes: 3}})

	c, w := newGinContext(http.MethodGet, "/api/runs/run-1/analytics", nil)
	c.Params = gin.Params{{Key: "id", Value: "run-1"}}
	handler.Run(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}
