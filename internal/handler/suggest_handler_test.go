package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

type suggesterMock struct {
	suggestions []models.Suggestion
	err         error
	req         dto.SuggestFixRequest
}

func (m *suggesterMock) Suggest(ctx context.Context, req dto.SuggestFixRequest) ([]models.Suggestion, error) {
	m.req = req
	return m.suggestions, m.err
}

func TestSuggestHandlerFix(t *testing.T) {
	mock := &suggesterMock{suggestions: []models.Suggestion{{
		ClashType:  models.ClashTypeRoom,
		Issue:      "Room Clash involving Physics",
		Fix:        `Move "Physics" → room 102 (Monday 09:00-10:00)`,
		Confidence: models.ConfidenceRoomChange,
		Action:     models.SuggestionActionRoomChange,
	}}}
	handler := NewSuggestHandler(mock)

	body := []byte(`{"timetable":[{"course":"Math","start":"09:00","end":"10:00"}],"clashes":[]}`)
	c, w := newGinContext(http.MethodPost, "/api/suggest/fix", body)
	handler.Fix(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mock.req.Timetable, 1)
	assert.Equal(t, "Math", mock.req.Timetable[0].Course)

	var resp dto.SuggestFixResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, 0.9, resp.Suggestions[0].Confidence)
}

func TestSuggestHandlerEmptyResult(t *testing.T) {
	handler := NewSuggestHandler(&suggesterMock{})

	c, w := newGinContext(http.MethodPost, "/api/suggest/fix", []byte(`{"timetable":[],"clashes":[]}`))
	handler.Fix(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, w.Body.String())
}

func TestSuggestHandlerErrors(t *testing.T) {
	handler := NewSuggestHandler(&suggesterMock{})
	c, w := newGinContext(http.MethodPost, "/api/suggest/fix", []byte(`{"timetable": "nope"}`))
	handler.Fix(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	handler = NewSuggestHandler(&suggesterMock{err: appErrors.Clone(appErrors.ErrNotFound, "analysis run not found")})
	c, w = newGinContext(http.MethodPost, "/api/suggest/fix", []byte(`{"timetable":[],"clashes":[],"runId":"x"}`))
	handler.Fix(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}
