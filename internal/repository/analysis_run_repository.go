package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// AnalysisRunRepository persists detection runs.
type AnalysisRunRepository struct {
	db *sqlx.DB
}

// NewAnalysisRunRepository constructs the repository.
func NewAnalysisRunRepository(db *sqlx.DB) *AnalysisRunRepository {
	return &AnalysisRunRepository{db: db}
}

// Create inserts a run, filling id and timestamps when absent.
func (r *AnalysisRunRepository) Create(ctx context.Context, run *models.AnalysisRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	run.UpdatedAt = run.CreatedAt
	run.EntryCount = len(run.Entries)
	run.ClashCount = len(run.Clashes)
	run.SuggestionCount = len(run.Suggestions)

	const query = `INSERT INTO analysis_runs (id, source_name, entry_count, clash_count, suggestion_count, entries, clashes, suggestions, created_at, updated_at)
VALUES (:id, :source_name, :entry_count, :clash_count, :suggestion_count, :entries, :clashes, :suggestions, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, run); err != nil {
		return fmt.Errorf("create analysis run: %w", err)
	}
	return nil
}

// FindByID returns a run with its stored payloads.
func (r *AnalysisRunRepository) FindByID(ctx context.Context, id string) (*models.AnalysisRun, error) {
	const query = `SELECT id, source_name, entry_count, clash_count, suggestion_count, entries, clashes, suggestions, created_at, updated_at
FROM analysis_runs WHERE id = $1`
	var run models.AnalysisRun
	if err := r.db.GetContext(ctx, &run, query, id); err != nil {
		return nil, fmt.Errorf("get analysis run: %w", err)
	}
	return &run, nil
}

// List returns run summaries and the total count for the filter.
func (r *AnalysisRunRepository) List(ctx context.Context, filter models.AnalysisRunFilter) ([]models.AnalysisRunSummary, int, error) {
	base := "FROM analysis_runs WHERE 1=1"
	var args []interface{}
	if filter.Search != "" {
		base += fmt.Sprintf(" AND LOWER(source_name) LIKE $%d", len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, source_name, entry_count, clash_count, suggestion_count, created_at %s ORDER BY created_at %s LIMIT %d OFFSET %d", base, order, size, offset)
	var runs []models.AnalysisRunSummary
	if err := r.db.SelectContext(ctx, &runs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list analysis runs: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, args...); err != nil {
		return nil, 0, fmt.Errorf("count analysis runs: %w", err)
	}
	return runs, total, nil
}

// UpdateSuggestions stores the latest resolution pass for a run.
func (r *AnalysisRunRepository) UpdateSuggestions(ctx context.Context, id string, suggestions models.SuggestionList) error {
	const query = `UPDATE analysis_runs SET suggestions = $1, suggestion_count = $2, updated_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, suggestions, len(suggestions), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update analysis run suggestions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check analysis run update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update analysis run suggestions: %w", sql.ErrNoRows)
	}
	return nil
}
