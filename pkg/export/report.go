package export

import "fmt"

// Table is one titled grid of a report. Rows are aligned to Headers.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Report groups the tables rendered into a single document.
type Report struct {
	Title  string
	Tables []Table
}

// Renderer turns a report into file bytes.
type Renderer interface {
	Render(report Report) ([]byte, error)
	ContentType() string
	Extension() string
}

func (t Table) validate(kind string) error {
	if len(t.Headers) == 0 {
		return fmt.Errorf("%s table %q requires at least one header", kind, t.Title)
	}
	return nil
}

// cell returns the value at column i, tolerating short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
