package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/scheduler"
	appErrors "github.com/bhavanabc05/AI-timetable-clash-detector/pkg/errors"
)

type stubCacheRepo struct {
	store map[string][]byte
	gets  int
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	s.gets++
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range s.store {
		if strings.HasPrefix(key, prefix) {
			delete(s.store, key)
		}
	}
	return nil
}

type runRepoStub struct {
	runs      map[string]*models.AnalysisRun
	createErr error
	updateErr error
	listErr   error
	finds     int
}

func newRunRepoStub() *runRepoStub {
	return &runRepoStub{runs: map[string]*models.AnalysisRun{}}
}

func (r *runRepoStub) Create(_ context.Context, run *models.AnalysisRun) error {
	if r.createErr != nil {
		return r.createErr
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	run.EntryCount = len(run.Entries)
	run.ClashCount = len(run.Clashes)
	run.CreatedAt = time.Now().UTC()
	run.UpdatedAt = run.CreatedAt
	r.runs[run.ID] = run
	return nil
}

func (r *runRepoStub) FindByID(_ context.Context, id string) (*models.AnalysisRun, error) {
	r.finds++
	run, ok := r.runs[id]
	if !ok {
		return nil, fmt.Errorf("find analysis run: %w", sql.ErrNoRows)
	}
	return run, nil
}

func (r *runRepoStub) List(_ context.Context, filter models.AnalysisRunFilter) ([]models.AnalysisRunSummary, int, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var out []models.AnalysisRunSummary
	for _, run := range r.runs {
		if filter.Search != "" && !strings.Contains(strings.ToLower(run.SourceName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, models.AnalysisRunSummary{
			ID:         run.ID,
			SourceName: run.SourceName,
			EntryCount: run.EntryCount,
			ClashCount: run.ClashCount,
			CreatedAt:  run.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SourceName < out[j].SourceName })
	return out, len(out), nil
}

func (r *runRepoStub) UpdateSuggestions(_ context.Context, id string, suggestions models.SuggestionList) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	run, ok := r.runs[id]
	if !ok {
		return fmt.Errorf("update suggestions: %w", sql.ErrNoRows)
	}
	run.Suggestions = suggestions
	run.SuggestionCount = len(suggestions)
	return nil
}

func newTestEngine(t *testing.T) *scheduler.Engine {
	t.Helper()
	engine, err := scheduler.NewEngine(scheduler.DefaultConfig())
	require.NoError(t, err)
	return engine
}

func entry(course, teacher, year, room, day, start, end string) models.Entry {
	startMin, _ := models.ParseClock(start)
	endMin, _ := models.ParseClock(end)
	return models.Entry{
		Course: course, Teacher: teacher, Year: year, Room: room, Day: day,
		Start: start, End: end, StartMin: startMin, EndMin: endMin,
	}
}

const roomClashCSV = "course,teacher,year,room,day,start,end\n" +
	"Math,T1,Y1,101,Monday,09:00,10:00\n" +
	"Physics,T2,Y2,101,Monday,09:00,10:00\n"
