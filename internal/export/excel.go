// internal/export/excel.go
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/soumik-d/magicbricks-scraper/internal/domain"
)

const sheetName = "Properties"

// Filename and ContentType describe the download the exporter produces.
const (
	Filename    = "properties_data.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ToExcel serializes the records into a single-sheet workbook: a header row of
// the six column names followed by one row per record, no index column. The
// whole file is returned in memory; an empty input yields a header-only sheet.
func ToExcel(properties []domain.Property) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRow(f, 1, domain.Columns()); err != nil {
		return nil, err
	}
	for i, p := range properties {
		if err := writeRow(f, i+2, p.Row()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
