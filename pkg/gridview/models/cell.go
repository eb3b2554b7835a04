// Package models defines the value types shared by the grid viewport engine.
package models

import "fmt"

// CellAddress identifies a single grid cell.
type CellAddress struct {
	// Col is the column index (1-based).
	Col int `json:"col"`
	// Row is the row index (1-based).
	Row int `json:"row"`
}

// Index returns the heading index of the address along axis.
func (a CellAddress) Index(axis Axis) int {
	if axis == AxisCols {
		return a.Col
	}
	return a.Row
}

// WithIndex returns a copy of a with the heading index along axis replaced.
func (a CellAddress) WithIndex(axis Axis, idx int) CellAddress {
	if axis == AxisCols {
		a.Col = idx
	} else {
		a.Row = idx
	}
	return a
}

func (a CellAddress) String() string {
	return fmt.Sprintf("C%dR%d", a.Col, a.Row)
}

// CellRange represents inclusive cell coordinate bounds.
// A normalized range has C1 <= C2 and R1 <= R2.
type CellRange struct {
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
}

// SingleCell returns the range covering exactly a.
func SingleCell(a CellAddress) CellRange {
	return CellRange{C1: a.Col, R1: a.Row, C2: a.Col, R2: a.Row}
}

// Normalize returns r with its corners ordered.
func (r CellRange) Normalize() CellRange {
	if r.C1 > r.C2 {
		r.C1, r.C2 = r.C2, r.C1
	}
	if r.R1 > r.R2 {
		r.R1, r.R2 = r.R2, r.R1
	}
	return r
}

// TopLeft returns the first corner of the range.
func (r CellRange) TopLeft() CellAddress {
	return CellAddress{Col: r.C1, Row: r.R1}
}

// BottomRight returns the last corner of the range.
func (r CellRange) BottomRight() CellAddress {
	return CellAddress{Col: r.C2, Row: r.R2}
}

// Bounds returns the inclusive start and end indices along axis.
func (r CellRange) Bounds(axis Axis) (int, int) {
	if axis == AxisCols {
		return r.C1, r.C2
	}
	return r.R1, r.R2
}

// Contains reports whether a lies inside the normalized range.
func (r CellRange) Contains(a CellAddress) bool {
	return a.Col >= r.C1 && a.Col <= r.C2 && a.Row >= r.R1 && a.Row <= r.R2
}

// IsSingle reports whether the range covers a single cell.
func (r CellRange) IsSingle() bool {
	return r.C1 == r.C2 && r.R1 == r.R2
}

func (r CellRange) String() string {
	return fmt.Sprintf("C%dR%d:C%dR%d", r.C1, r.R1, r.C2, r.R2)
}
