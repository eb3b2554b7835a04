package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// ErrBadReference indicates a range reference that is not of the form
// A1 or A1:B2.
var ErrBadReference = errors.New("bad range reference")

const printAreaName = "_xlnm.Print_Area"

// ExtractNames returns the workbook's defined names that refer to a single
// sheet range. Print areas and names spanning several areas are skipped.
func ExtractNames(f *excelize.File) map[string]models.NamedRange {
	result := make(map[string]models.NamedRange)
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parseReference(dn.RefersTo)
		if sheetName == "" || len(areas) != 1 {
			continue
		}
		result[dn.Name] = models.NamedRange{Sheet: sheetName, Range: areas[0]}
	}
	return result
}

// ExtractPrintAreas returns the print areas of each sheet.
func ExtractPrintAreas(f *excelize.File) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parseReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// parseReference parses a reference such as 'Sheet 1'!$A$1:$D$10 or a
// comma-separated list of them. Only the first sheet name is returned.
func parseReference(ref string) (string, []models.CellRange) {
	var sheetName string
	var areas []models.CellRange
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if r, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, r)
		}
	}
	return sheetName, areas
}

// ParseRange parses an A1-style cell or range, with or without $ signs.
func ParseRange(s string) (models.CellRange, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), "$", "")
	from, to, found := strings.Cut(clean, ":")
	if !found {
		to = from
	}
	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w %q: %v", ErrBadReference, s, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return models.CellRange{}, fmt.Errorf("%w %q: %v", ErrBadReference, s, err)
	}
	return models.CellRange{C1: c1, R1: r1, C2: c2, R2: r2}.Normalize(), nil
}
