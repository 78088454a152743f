package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

// XLSXExporter renders each report table into its own worksheet.
type XLSXExporter struct{}

// NewXLSXExporter constructs an XLSX exporter.
func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

// ContentType implements Renderer.
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension implements Renderer.
func (e *XLSXExporter) Extension() string { return "xlsx" }

// Render writes the workbook. The first table reuses the default sheet.
func (e *XLSXExporter) Render(report Report) ([]byte, error) {
	if len(report.Tables) == 0 {
		return nil, fmt.Errorf("xlsx requires at least one table")
	}
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, table := range report.Tables {
		if err := table.validate("xlsx"); err != nil {
			return nil, err
		}
		name := sheetName(table.Title, i)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeRow(f, name, 1, table.Headers); err != nil {
			return nil, err
		}
		lastHeader, err := excelize.CoordinatesToCellName(len(table.Headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(name, "A1", lastHeader, headerStyle); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
		for r, row := range table.Rows {
			values := make([]string, len(table.Headers))
			for j := range table.Headers {
				values[j] = cell(row, j)
			}
			if err := writeRow(f, name, r+2, values); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := f.SetSheetRow(sheet, start, &row); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}

func sheetName(title string, index int) string {
	if title == "" {
		return fmt.Sprintf("Sheet%d", index+1)
	}
	runes := []rune(title)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}
