package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/service"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/response"
)

type clashDetector interface {
	Detect(ctx context.Context, filename string, r io.Reader) (*service.DetectionResult, error)
}

// DetectHandler accepts timetable uploads and reports clashes.
type DetectHandler struct {
	detector clashDetector
	maxBytes int64
}

// NewDetectHandler constructs the handler. maxBytes <= 0 disables the size check.
func NewDetectHandler(detector clashDetector, maxBytes int64) *DetectHandler {
	return &DetectHandler{detector: detector, maxBytes: maxBytes}
}

// Upload godoc
// @Summary Detect clashes in an uploaded timetable
// @Tags Detection
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Timetable (.csv or .xlsx)"
// @Success 200 {object} dto.DetectResponse
// @Failure 400 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 415 {object} response.Envelope
// @Router /detect/upload [post]
func (h *DetectHandler) Upload(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, uploadError(err))
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		response.Error(c, appErrors.ErrPayloadTooLarge)
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInvalidTimetable.Code, appErrors.ErrInvalidTimetable.Status, "failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.detector.Detect(c.Request.Context(), header.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, clashes := result.Entries, result.Clashes
	if entries == nil {
		entries = []models.Entry{}
	}
	if clashes == nil {
		clashes = []models.Clash{}
	}
	response.Raw(c, http.StatusOK, dto.DetectResponse{
		Success:      true,
		TotalEntries: len(entries),
		Timetable:    entries,
		Clashes:      clashes,
		RunID:        result.RunID,
	})
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
		return appErrors.ErrPayloadTooLarge
	}
	if errors.Is(err, http.ErrMissingFile) {
		return appErrors.Clone(appErrors.ErrValidation, "timetable file not provided")
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid multipart upload")
}
