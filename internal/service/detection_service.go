package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/scheduler"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
	"github.com/bhavanabc05/AI-timetable-clash-detector/pkg/timetable"
)

// AnalysisRunRepository abstracts persistence for analysis runs.
type AnalysisRunRepository interface {
	Create(ctx context.Context, run *models.AnalysisRun) error
	FindByID(ctx context.Context, id string) (*models.AnalysisRun, error)
	List(ctx context.Context, filter models.AnalysisRunFilter) ([]models.AnalysisRunSummary, int, error)
	UpdateSuggestions(ctx context.Context, id string, suggestions models.SuggestionList) error
}

// DetectionResult is the outcome of scanning one uploaded timetable.
type DetectionResult struct {
	Entries []models.Entry `json:"entries"`
	Clashes []models.Clash `json:"clashes"`
	RunID   string         `json:"-"`
	Cached  bool           `json:"-"`
}

// DetectionService parses uploads and runs the clash detector.
type DetectionService struct {
	engine  *scheduler.Engine
	runs    AnalysisRunRepository
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewDetectionService constructs the service. runs and cache are optional.
func NewDetectionService(engine *scheduler.Engine, runs AnalysisRunRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *DetectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DetectionService{engine: engine, runs: runs, cache: cache, metrics: metrics, logger: logger}
}

// Detect reads the named file, detects clashes and, when history is on,
// records the run. Cache and history failures are logged, never returned.
func (s *DetectionService) Detect(ctx context.Context, filename string, r io.Reader) (*DetectionResult, error) {
	format, err := timetable.DetectFormat(filename)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, "")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidTimetable.Code, appErrors.ErrInvalidTimetable.Status, "failed to read uploaded file")
	}

	start := time.Now()
	key := s.cacheKey(format, data)
	result := &DetectionResult{}
	hit, cacheErr := s.cache.Get(ctx, key, result)
	if cacheErr != nil {
		hit = false
	}
	if hit {
		result.Cached = true
	} else {
		entries, err := timetable.Parse(bytes.NewReader(data), format)
		if err != nil {
			s.metrics.ObserveDetection(string(format), 0, nil, time.Since(start), err)
			return nil, invalidTimetable(err)
		}
		result = &DetectionResult{Entries: entries, Clashes: s.engine.Detect(entries)}
		_ = s.cache.Set(ctx, key, result, 0)
	}
	s.metrics.ObserveDetection(string(format), len(result.Entries), result.Clashes, time.Since(start), nil)

	if s.runs != nil {
		run := &models.AnalysisRun{
			SourceName: filename,
			Entries:    result.Entries,
			Clashes:    result.Clashes,
		}
		dbStart := time.Now()
		if err := s.runs.Create(ctx, run); err != nil {
			s.logger.Warn("persist analysis run", zap.String("source", filename), zap.Error(err))
		} else {
			result.RunID = run.ID
		}
		s.metrics.ObserveDBQuery("analysis_runs_create", time.Since(dbStart))
	}

	s.logger.Debug("timetable scanned",
		zap.String("source", filename),
		zap.Int("entries", len(result.Entries)),
		zap.Int("clashes", len(result.Clashes)),
		zap.Bool("cached", result.Cached),
	)
	return result, nil
}

// cacheKey is derived from the file bytes and the matching mode, the only
// setting that changes detection output.
func (s *DetectionService) cacheKey(format timetable.Format, data []byte) string {
	sum := sha256.Sum256(data)
	mode := "legacy"
	if s.engine.Config().StrictFieldMatching {
		mode = "strict"
	}
	return fmt.Sprintf("detect:%s:%s:%s", format, mode, hex.EncodeToString(sum[:]))
}

func invalidTimetable(err error) error {
	var rowErr *timetable.RowError
	if errors.As(err, &rowErr) {
		return appErrors.Wrap(err, appErrors.ErrInvalidTimetable.Code, appErrors.ErrInvalidTimetable.Status, rowErr.Error())
	}
	return appErrors.Wrap(err, appErrors.ErrInvalidTimetable.Code, appErrors.ErrInvalidTimetable.Status, appErrors.ErrInvalidTimetable.Message)
}
