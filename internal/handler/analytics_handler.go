package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/middleware"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/response"
)

type clashAnalytics interface {
	Summarize(clashes []models.Clash) models.ClashAnalytics
	ForRun(ctx context.Context, runID string) (models.ClashAnalytics, bool, error)
}

// AnalyticsHandler exposes dashboard-ready clash analytics.
type AnalyticsHandler struct {
	analytics clashAnalytics
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics clashAnalytics) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Clashes godoc
// @Summary Summarise a clash list
// @Tags Analytics
// @Accept json
// @Produce json
// @Param payload body dto.ClashAnalyticsRequest true "Clashes"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /analytics/clashes [post]
func (h *AnalyticsHandler) Clashes(c *gin.Context) {
	start := time.Now()
	var req dto.ClashAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Clashes == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "clashes array is required"))
		return
	}
	result := h.analytics.Summarize(req.Clashes)
	response.JSON(c, http.StatusOK, result, nil, middleware.TimedMeta(c, start))
}

// Run godoc
// @Summary Analytics for a stored run
// @Tags Analytics
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /runs/{id}/analytics [get]
func (h *AnalyticsHandler) Run(c *gin.Context) {
	start := time.Now()
	id, ok := uuidParam(c, "id", runNotFound)
	if !ok {
		return
	}
	result, cacheHit, err := h.analytics.ForRun(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, result, nil, middleware.TimedMeta(c, start))
}
