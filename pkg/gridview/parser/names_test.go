package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input string
		want  models.CellRange
	}{
		{"A1", models.CellRange{C1: 1, R1: 1, C2: 1, R2: 1}},
		{"$B$2:$D$10", models.CellRange{C1: 2, R1: 2, C2: 4, R2: 10}},
		{"D10:B2", models.CellRange{C1: 2, R1: 2, C2: 4, R2: 10}},
		{" c3 ", models.CellRange{C1: 3, R1: 3, C2: 3, R2: 3}},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}

	for _, bad := range []string{"", "A", "1:2", "A1:"} {
		if _, err := ParseRange(bad); !errors.Is(err, ErrBadReference) {
			t.Errorf("ParseRange(%q): expected ErrBadReference, got %v", bad, err)
		}
	}
}

func TestParseReference(t *testing.T) {
	sheet, areas := parseReference("'My Sheet'!$A$1:$B$2,'My Sheet'!$D$4")
	if sheet != "My Sheet" {
		t.Errorf("Expected sheet 'My Sheet', got %q", sheet)
	}
	if len(areas) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(areas))
	}
	if areas[1] != (models.CellRange{C1: 4, R1: 4, C2: 4, R2: 4}) {
		t.Errorf("Unexpected second area %v", areas[1])
	}

	if sheet, areas := parseReference("$A$1"); sheet != "" || areas != nil {
		t.Errorf("Expected nothing without a sheet, got %q %v", sheet, areas)
	}
}

func TestExtractNamesAndPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	defs := []*excelize.DefinedName{
		{Name: "Totals", RefersTo: "Sheet1!$B$2:$C$5"},
		{Name: "Split", RefersTo: "Sheet1!$A$1,Sheet1!$C$3"},
		{Name: "_xlnm.Print_Area", RefersTo: "Sheet1!$A$1:$F$20", Scope: "Sheet1"},
	}
	for _, dn := range defs {
		if err := f.SetDefinedName(dn); err != nil {
			t.Fatalf("SetDefinedName(%s) failed: %v", dn.Name, err)
		}
	}
	f2 := reopen(t, f)

	names := ExtractNames(f2)
	if len(names) != 1 {
		t.Fatalf("Expected 1 name, got %v", names)
	}
	want := models.NamedRange{Sheet: "Sheet1", Range: models.CellRange{C1: 2, R1: 2, C2: 3, R2: 5}}
	if names["Totals"] != want {
		t.Errorf("Expected %v, got %v", want, names["Totals"])
	}

	areas := ExtractPrintAreas(f2)
	if len(areas["Sheet1"]) != 1 {
		t.Fatalf("Expected 1 print area, got %v", areas)
	}
	if areas["Sheet1"][0] != (models.CellRange{C1: 1, R1: 1, C2: 6, R2: 20}) {
		t.Errorf("Unexpected print area %v", areas["Sheet1"][0])
	}
}
