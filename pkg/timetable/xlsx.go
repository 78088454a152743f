package timetable

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bhavanabc05/AI-timetable-clash-detector/internal/models"
)

// ParseXLSX reads the first sheet of a workbook using the same header
// contract as ParseCSV.
func ParseXLSX(r io.Reader) ([]models.Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	return decode(&sliceSource{rows: rows})
}

type sliceSource struct {
	rows [][]string
	next int
}

func (s *sliceSource) Read() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	record := s.rows[s.next]
	s.next++
	return record, nil
}
