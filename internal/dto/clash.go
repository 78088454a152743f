package dto

import "github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"

// DetectResponse is returned after a timetable upload has been scanned.
type DetectResponse struct {
	Success      bool           `json:"success"`
	TotalEntries int            `json:"totalEntries"`
	Timetable    []models.Entry `json:"timetable"`
	Clashes      []models.Clash `json:"clashes"`
	RunID        string         `json:"runId,omitempty"`
}

// SuggestFixRequest carries a timetable and its clashes back for resolution.
type SuggestFixRequest struct {
	Timetable []models.Entry `json:"timetable" validate:"required"`
	Clashes   []models.Clash `json:"clashes" validate:"required"`
	RunID     string         `json:"runId" validate:"omitempty,uuid"`
}

// SuggestFixResponse lists remediation suggestions in clash order.
type SuggestFixResponse struct {
	Suggestions []models.Suggestion `json:"suggestions"`
}

// ClashAnalyticsRequest asks for analytics over an arbitrary clash list.
type ClashAnalyticsRequest struct {
	Clashes []models.Clash `json:"clashes" validate:"required"`
}
