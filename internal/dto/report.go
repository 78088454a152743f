package dto

import (
	"time"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// CreateReportRequest asks for a rendered report of a stored run.
type CreateReportRequest struct {
	Format string `json:"format" validate:"required,oneof=csv pdf xlsx"`
}

// ReportJobResponse is returned after enqueueing a report.
type ReportJobResponse struct {
	ID     string              `json:"id"`
	RunID  string              `json:"runId"`
	Format models.ReportFormat `json:"format"`
	Status models.ReportStatus `json:"status"`
}

// ReportStatusResponse exposes job progress metadata.
type ReportStatusResponse struct {
	ID         string              `json:"id"`
	RunID      string              `json:"runId"`
	Format     models.ReportFormat `json:"format"`
	Status     models.ReportStatus `json:"status"`
	ResultURL  *string             `json:"resultUrl,omitempty"`
	Error      *string             `json:"error,omitempty"`
	FinishedAt *time.Time          `json:"finishedAt,omitempty"`
}
