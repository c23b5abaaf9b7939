package export

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/soumik-d/magicbricks-scraper/internal/domain"
)

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("failed to read sheet %q: %v", sheetName, err)
	}
	return rows
}

func TestToExcelEmpty(t *testing.T) {
	data, err := ToExcel(nil)
	if err != nil {
		t.Fatalf("ToExcel returned error: %v", err)
	}

	rows := readRows(t, data)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header row only", len(rows))
	}
	if !reflect.DeepEqual(rows[0], domain.Columns()) {
		t.Errorf("header = %v, want %v", rows[0], domain.Columns())
	}
}

func TestToExcelRoundTrip(t *testing.T) {
	properties := []domain.Property{
		{
			Location:     "Andheri West",
			PropertyType: "Flat",
			Price:        "₹1.5 Cr",
			Size:         "650 sqft",
			Bedrooms:     "2",
			SoldBy:       "Sunrise Realty",
		},
		{
			Location:     domain.NoLocation,
			PropertyType: domain.NoPropertyType,
			Price:        domain.NoPrice,
			Size:         domain.NoSize,
			Bedrooms:     domain.NoBedrooms,
			SoldBy:       domain.NoSoldBy,
		},
	}

	data, err := ToExcel(properties)
	if err != nil {
		t.Fatalf("ToExcel returned error: %v", err)
	}

	rows := readRows(t, data)
	if len(rows) != len(properties)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(properties)+1)
	}
	if !reflect.DeepEqual(rows[0], domain.Columns()) {
		t.Errorf("header = %v, want %v", rows[0], domain.Columns())
	}
	for i, p := range properties {
		if !reflect.DeepEqual(rows[i+1], p.Row()) {
			t.Errorf("row %d = %v, want %v", i+1, rows[i+1], p.Row())
		}
	}
}
