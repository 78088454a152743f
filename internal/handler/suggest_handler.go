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

type fixSuggester interface {
	Suggest(ctx context.Context, req dto.SuggestFixRequest) ([]models.Suggestion, error)
}

// SuggestHandler turns clash lists into remediation suggestions.
type SuggestHandler struct {
	suggester fixSuggester
}

// NewSuggestHandler constructs the handler.
func NewSuggestHandler(suggester fixSuggester) *SuggestHandler {
	return &SuggestHandler{suggester: suggester}
}

// Fix godoc
// @Summary Suggest fixes for detected clashes
// @Tags Resolution
// @Accept json
// @Produce json
// @Param payload body dto.SuggestFixRequest true "Timetable and clashes"
// @Success 200 {object} dto.SuggestFixResponse
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /suggest/fix [post]
func (h *SuggestHandler) Fix(c *gin.Context) {
	var req dto.SuggestFixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload, expected {timetable: [...], clashes: [...]}"))
		return
	}
	suggestions, err := h.suggester.Suggest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	response.Raw(c, http.StatusOK, dto.SuggestFixResponse{Suggestions: suggestions})
}
