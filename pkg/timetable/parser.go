// Package timetable loads timetable files into engine entries.
package timetable

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// Format identifies a supported timetable file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported timetable format")

// RowError reports a data row that could not be converted into an entry.
// Row is 1-based and excludes the header.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// row mirrors the timetable column contract.
type row struct {
	Course   string `csv:"course"`
	Teacher  string `csv:"teacher"`
	Year     string `csv:"year"`
	Room     string `csv:"room"`
	Day      string `csv:"day"`
	Start    string `csv:"start"`
	End      string `csv:"end"`
	Resource string `csv:"resource"`
}

// DetectFormat infers the format from the file extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Parse reads entries from r using the given format.
func Parse(r io.Reader, format Format) ([]models.Entry, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(r)
	case FormatXLSX:
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseFile detects the format from filename and parses r.
func ParseFile(filename string, r io.Reader) ([]models.Entry, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}
	return Parse(r, format)
}

func decode(source recordSource) ([]models.Entry, error) {
	rows := []*row{}
	if err := gocsv.UnmarshalCSV(newNormalizingReader(source), &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Entry{}, nil
		}
		return nil, fmt.Errorf("decode timetable: %w", err)
	}
	return toEntries(rows)
}

func toEntries(rows []*row) ([]models.Entry, error) {
	entries := make([]models.Entry, 0, len(rows))
	for i, r := range rows {
		start, err := models.ParseClock(r.Start)
		if err != nil {
			return nil, &RowError{Row: i + 1, Err: err}
		}
		end, err := models.ParseClock(r.End)
		if err != nil {
			return nil, &RowError{Row: i + 1, Err: err}
		}
		if start >= end {
			return nil, &RowError{Row: i + 1, Err: fmt.Errorf("start %s is not before end %s", r.Start, r.End)}
		}
		entries = append(entries, models.Entry{
			Course:   r.Course,
			Teacher:  r.Teacher,
			Year:     r.Year,
			Room:     r.Room,
			Day:      r.Day,
			Start:    models.FormatClock(start),
			End:      models.FormatClock(end),
			Resource: r.Resource,
			StartMin: start,
			EndMin:   end,
		})
	}
	return entries, nil
}
