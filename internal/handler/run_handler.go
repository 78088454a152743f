package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/response"
)

type runStore interface {
	List(ctx context.Context, query dto.RunListQuery) ([]models.AnalysisRunSummary, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.AnalysisRun, error)
	Resolve(ctx context.Context, id string) ([]models.Suggestion, error)
}

const runNotFound = "analysis run not found"

// RunHandler exposes stored analysis runs.
type RunHandler struct {
	runs runStore
}

// NewRunHandler constructs the handler.
func NewRunHandler(runs runStore) *RunHandler {
	return &RunHandler{runs: runs}
}

// List godoc
// @Summary List analysis runs
// @Tags Runs
// @Produce json
// @Param search query string false "Source name filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Router /runs [get]
func (h *RunHandler) List(c *gin.Context) {
	var query dto.RunListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid query parameters"))
		return
	}
	runs, pagination, err := h.runs.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, runs, pagination)
}

// Get godoc
// @Summary Get an analysis run
// @Tags Runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /runs/{id} [get]
func (h *RunHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", runNotFound)
	if !ok {
		return
	}
	run, err := h.runs.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, run, nil)
}

// Resolve godoc
// @Summary Resolve a stored run
// @Tags Runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /runs/{id}/resolve [post]
func (h *RunHandler) Resolve(c *gin.Context) {
	id, ok := uuidParam(c, "id", runNotFound)
	if !ok {
		return
	}
	suggestions, err := h.runs.Resolve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SuggestFixResponse{Suggestions: suggestions}, nil)
}
