package timetable

import (
	"errors"
	"io"
	"strings"
)

// recordSource yields raw records one at a time.
type recordSource interface {
	Read() ([]string, error)
}

// normalizingReader adapts a record source to gocsv.CSVReader. The header is
// trimmed and lower-cased, values are trimmed, blank records are dropped and
// short records are padded to the header width.
type normalizingReader struct {
	source recordSource
	width  int
	header bool
}

func newNormalizingReader(source recordSource) *normalizingReader {
	return &normalizingReader{source: source}
}

func (r *normalizingReader) Read() ([]string, error) {
	for {
		record, err := r.source.Read()
		if err != nil {
			return nil, err
		}
		if blank(record) {
			continue
		}
		if !r.header {
			r.header = true
			r.width = len(record)
			for i, name := range record {
				record[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
			}
			return record, nil
		}
		out := make([]string, r.width)
		for i := 0; i < len(record) && i < r.width; i++ {
			out[i] = strings.TrimSpace(record[i])
		}
		return out, nil
	}
}

func (r *normalizingReader) ReadAll() ([][]string, error) {
	records := make([][]string, 0)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

func blank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
