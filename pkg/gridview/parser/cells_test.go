package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C3", "Text")
	f.SetCellValue(sheetName, "L1", "past the column limit")
	f.SetCellValue(sheetName, "A51", "past the row limit")

	cells, err := ExtractCells(reopen(t, f), sheetName, testGeometry)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(cells) != 5 {
		t.Errorf("Expected 5 cells, got %d: %v", len(cells), cells)
	}
	tests := []struct {
		addr models.CellAddress
		want string
	}{
		{models.CellAddress{Col: 1, Row: 1}, "Header1"},
		{models.CellAddress{Col: 2, Row: 1}, "Header2"},
		{models.CellAddress{Col: 1, Row: 2}, "100"},
		{models.CellAddress{Col: 2, Row: 2}, "200.5"},
		{models.CellAddress{Col: 3, Row: 3}, "Text"},
	}
	for _, tt := range tests {
		if got := cells[tt.addr]; got != tt.want {
			t.Errorf("Cell %v: expected %q, got %q", tt.addr, tt.want, got)
		}
	}
}

func TestDetectDataRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	r, err := DetectDataRange(f, sheetName)
	if err != nil {
		t.Fatalf("DetectDataRange failed: %v", err)
	}
	if r != nil {
		t.Errorf("Expected no data range on an empty sheet, got %v", r)
	}

	f.SetCellValue(sheetName, "C2", "x")
	f.SetCellValue(sheetName, "E7", 1)
	f.SetCellValue(sheetName, "B4", "y")

	r, err = DetectDataRange(reopen(t, f), sheetName)
	if err != nil {
		t.Fatalf("DetectDataRange failed: %v", err)
	}
	want := models.CellRange{C1: 2, R1: 2, C2: 5, R2: 7}
	if r == nil || *r != want {
		t.Errorf("Expected %v, got %v", want, r)
	}
}

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "a"},
		{"b"},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 1 || maxRow != 2 || minCol != 0 || maxCol != 2 {
		t.Errorf("Unexpected bounds: rows %d-%d, cols %d-%d", minRow, maxRow, minCol, maxCol)
	}
}
