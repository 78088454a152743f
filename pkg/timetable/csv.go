package timetable

import (
	"encoding/csv"
	"io"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// ParseCSV reads a comma separated timetable with a header row.
func ParseCSV(r io.Reader) ([]models.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return decode(reader)
}
