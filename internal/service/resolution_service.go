package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/dto"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/scheduler"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

// ResolutionService produces remediation suggestions for a clash list.
type ResolutionService struct {
	engine    *scheduler.Engine
	runs      AnalysisRunRepository
	validator *validator.Validate
	metrics   *MetricsService
	cache     *CacheService
	logger    *zap.Logger
}

// NewResolutionService constructs the service. runs is optional.
func NewResolutionService(engine *scheduler.Engine, runs AnalysisRunRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ResolutionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolutionService{engine: engine, runs: runs, validator: validate, metrics: metrics, logger: logger}
}

// WithCache evicts cached runs when suggestions are saved on them.
func (s *ResolutionService) WithCache(cache *CacheService) *ResolutionService {
	s.cache = cache
	return s
}

// Suggest runs one resolution pass with fresh run state. When the request
// names a stored run, the suggestions are saved on it.
func (s *ResolutionService) Suggest(ctx context.Context, req dto.SuggestFixRequest) ([]models.Suggestion, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "timetable and clashes are required")
	}
	entries, err := normalizeEntries(req.Timetable)
	if err != nil {
		return nil, err
	}
	clashes := make([]models.Clash, len(req.Clashes))
	for i, clash := range req.Clashes {
		pair, err := normalizeEntries(clash.Entries)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("clash %d: %s", i+1, appErrors.FromError(err).Message))
		}
		clash.Entries = pair
		clashes[i] = clash
	}

	suggestions := s.resolve(entries, clashes)

	if req.RunID != "" && s.runs != nil {
		if err := s.runs.UpdateSuggestions(ctx, req.RunID, suggestions); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "analysis run not found")
			}
			s.logger.Warn("store suggestions", zap.String("run_id", req.RunID), zap.Error(err))
		} else {
			dropCachedRun(ctx, s.cache, req.RunID)
		}
	}
	return suggestions, nil
}

func (s *ResolutionService) resolve(entries []models.Entry, clashes []models.Clash) []models.Suggestion {
	start := time.Now()
	suggestions, _ := s.engine.Resolve(entries, clashes)
	s.metrics.ObserveResolution(suggestions, time.Since(start))
	return suggestions
}

// normalizeEntries derives minutes from "HH:MM" labels when present so
// clients may send either form. The engine relies on start < end.
func normalizeEntries(entries []models.Entry) ([]models.Entry, error) {
	out := make([]models.Entry, len(entries))
	for i, entry := range entries {
		if entry.Start != "" {
			minutes, err := models.ParseClock(entry.Start)
			if err != nil {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("entry %d: %v", i+1, err))
			}
			entry.StartMin = minutes
		}
		if entry.End != "" {
			minutes, err := models.ParseClock(entry.End)
			if err != nil {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("entry %d: %v", i+1, err))
			}
			entry.EndMin = minutes
		}
		if entry.StartMin >= entry.EndMin {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("entry %d: start must be before end", i+1))
		}
		out[i] = entry
	}
	return out, nil
}
