// Package parser reads sheet geometry and cell text from xlsx workbooks.
package parser

import "math"

// Excel's default column width in characters and row height in points.
const (
	DefaultColWidth  = 9.140625
	DefaultRowHeight = 15.0
)

// Geometry describes the engine grid the workbook is mapped onto.
type Geometry struct {
	// ColWidth is the engine width of a default-width column.
	ColWidth int
	// RowHeight is the engine height of a default-height row.
	RowHeight int
	MaxCols   int
	MaxRows   int
}

// ColUnits converts a width in characters to engine units.
func (g Geometry) ColUnits(width float64) int {
	return scale(width, DefaultColWidth, g.ColWidth)
}

// RowUnits converts a height in points to engine units.
func (g Geometry) RowUnits(height float64) int {
	return scale(height, DefaultRowHeight, g.RowHeight)
}

// scale maps v so that unit becomes def, never rounding a visible size
// down to zero.
func scale(v, unit float64, def int) int {
	if v <= 0 {
		return def
	}
	return max(1, int(math.Round(v/unit*float64(def))))
}
