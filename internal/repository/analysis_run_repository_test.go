package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

var analysisRunColumns = []string{"id", "source_name", "entry_count", "clash_count", "suggestion_count", "entries", "clashes", "suggestions", "created_at", "updated_at"}

func TestAnalysisRunRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalysisRunRepository(db)

	run := &models.AnalysisRun{
		SourceName: "week1.csv",
		Entries: models.EntryList{
			{Course: "Math", Teacher: "T1", Day: "Monday", StartMin: 540, EndMin: 600},
		},
		Clashes: models.ClashList{},
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO analysis_runs")).
		WithArgs(sqlmock.AnyArg(), "week1.csv", 1, 0, 0, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), run))
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 1, run.EntryCount)
	assert.False(t, run.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRunRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalysisRunRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(analysisRunColumns).
		AddRow("run-1", "week1.csv", 2, 1, 0,
			`[{"course":"Math","teacher":"T1","year":"Y1","room":"101","day":"Monday","start":"09:00","end":"10:00","startMin":540,"endMin":600}]`,
			`[{"type":"Room Clash","day":"Monday","entries":[]}]`,
			nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, source_name, entry_count, clash_count, suggestion_count, entries, clashes, suggestions, created_at, updated_at FROM analysis_runs WHERE id = $1")).
		WithArgs("run-1").
		WillReturnRows(rows)

	run, err := repo.FindByID(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, run.Entries, 1)
	assert.Equal(t, 540, run.Entries[0].StartMin)
	require.Len(t, run.Clashes, 1)
	assert.Equal(t, models.ClashTypeRoom, run.Clashes[0].Type)
	assert.Empty(t, run.Suggestions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRunRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM analysis_runs WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := NewAnalysisRunRepository(db).FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAnalysisRunRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalysisRunRepository(db)

	rows := sqlmock.NewRows([]string{"id", "source_name", "entry_count", "clash_count", "suggestion_count", "created_at"}).
		AddRow("run-1", "week1.csv", 10, 2, 2, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, source_name, entry_count, clash_count, suggestion_count, created_at FROM analysis_runs WHERE 1=1 AND LOWER(source_name) LIKE $1 ORDER BY created_at DESC LIMIT 10 OFFSET 10")).
		WithArgs("%week%").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM analysis_runs WHERE 1=1 AND LOWER(source_name) LIKE $1")).
		WithArgs("%week%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	runs, total, err := repo.List(context.Background(), models.AnalysisRunFilter{Search: "Week", Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 11, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalysisRunRepositoryUpdateSuggestions(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAnalysisRunRepository(db)

	suggestions := models.SuggestionList{{TargetCourse: "Physics", Confidence: models.ConfidenceManual}}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE analysis_runs SET suggestions = $1, suggestion_count = $2, updated_at = $3 WHERE id = $4")).
		WithArgs(sqlmock.AnyArg(), 1, sqlmock.AnyArg(), "run-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE analysis_runs SET suggestions")).
		WithArgs(sqlmock.AnyArg(), 1, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateSuggestions(context.Background(), "run-1", suggestions))
	err := repo.UpdateSuggestions(context.Background(), "missing", suggestions)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
