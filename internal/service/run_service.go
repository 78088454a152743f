package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

// RunService exposes stored analysis runs.
type RunService struct {
	runs       AnalysisRunRepository
	resolution *ResolutionService
	validator  *validator.Validate
	metrics    *MetricsService
	cache      *CacheService
	logger     *zap.Logger
}

// NewRunService constructs the service.
func NewRunService(runs AnalysisRunRepository, resolution *ResolutionService, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *RunService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RunService{runs: runs, resolution: resolution, validator: validate, metrics: metrics, logger: logger}
}

// WithCache keeps loaded runs in cache until their suggestions change.
func (s *RunService) WithCache(cache *CacheService) *RunService {
	s.cache = cache
	return s
}

// List returns run summaries with pagination metadata.
func (s *RunService) List(ctx context.Context, query dto.RunListQuery) ([]models.AnalysisRunSummary, *models.Pagination, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid run query")
	}
	filter := models.AnalysisRunFilter{
		Search:    query.Search,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortOrder: query.SortOrder,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	start := time.Now()
	runs, total, err := s.runs.List(ctx, filter)
	s.metrics.ObserveDBQuery("analysis_runs_list", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list analysis runs")
	}
	if runs == nil {
		runs = []models.AnalysisRunSummary{}
	}
	return runs, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// Get returns a run with its payloads.
func (s *RunService) Get(ctx context.Context, id string) (*models.AnalysisRun, error) {
	key := RunCacheKey(id)
	var cached models.AnalysisRun
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	start := time.Now()
	run, err := s.runs.FindByID(ctx, id)
	s.metrics.ObserveDBQuery("analysis_runs_get", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "analysis run not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load analysis run")
	}
	if err := s.cache.Set(ctx, key, run, 0); err != nil {
		s.logger.Warn("cache analysis run", zap.String("run_id", id), zap.Error(err))
	}
	return run, nil
}

// Resolve runs a fresh resolution pass over a stored run and saves the result.
func (s *RunService) Resolve(ctx context.Context, id string) ([]models.Suggestion, error) {
	run, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	suggestions := s.resolution.resolve(run.Entries, run.Clashes)
	if err := s.runs.UpdateSuggestions(ctx, id, suggestions); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store suggestions")
	}
	dropCachedRun(ctx, s.cache, id)
	s.logger.Info("analysis run resolved", zap.String("run_id", id), zap.Int("suggestions", len(suggestions)))
	return suggestions, nil
}

// dropCachedRun evicts a run whose stored suggestions were replaced. Failures
// are logged by the cache service and leave the entry to expire by TTL.
func dropCachedRun(ctx context.Context, cache *CacheService, id string) {
	_ = cache.Invalidate(ctx, RunCacheKey(id))
}
