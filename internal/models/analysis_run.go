package models

import "time"

// AnalysisRun is a stored detection pass over one uploaded timetable.
type AnalysisRun struct {
	ID              string         `db:"id" json:"id"`
	SourceName      string         `db:"source_name" json:"source_name"`
	EntryCount      int            `db:"entry_count" json:"entry_count"`
	ClashCount      int            `db:"clash_count" json:"clash_count"`
	SuggestionCount int            `db:"suggestion_count" json:"suggestion_count"`
	Entries         EntryList      `db:"entries" json:"entries"`
	Clashes         ClashList      `db:"clashes" json:"clashes"`
	Suggestions     SuggestionList `db:"suggestions" json:"suggestions"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// AnalysisRunSummary is the list-view projection of a run.
type AnalysisRunSummary struct {
	ID              string    `db:"id" json:"id"`
	SourceName      string    `db:"source_name" json:"source_name"`
	EntryCount      int       `db:"entry_count" json:"entry_count"`
	ClashCount      int       `db:"clash_count" json:"clash_count"`
	SuggestionCount int       `db:"suggestion_count" json:"suggestion_count"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AnalysisRunFilter narrows run listings.
type AnalysisRunFilter struct {
	Search    string
	Page      int
	PageSize  int
	SortOrder string
}

// Pagination describes list metadata.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
