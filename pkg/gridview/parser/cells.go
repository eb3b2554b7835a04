package parser

import (
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// ExtractCells returns the formatted text of every non-empty cell inside
// the geometry limits, keyed by address.
func ExtractCells(f *excelize.File, sheetName string, g Geometry) (map[models.CellAddress]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	result := make(map[models.CellAddress]string)
	for rowIdx, row := range rows {
		if rowIdx >= g.MaxRows {
			break
		}
		for colIdx, value := range row {
			if colIdx >= g.MaxCols {
				break
			}
			if value == "" {
				continue
			}
			result[models.CellAddress{Col: colIdx + 1, Row: rowIdx + 1}] = value
		}
	}
	return result, nil
}
