// Package selection holds the active cell and the selected range, and
// implements the pivot-point primitive every selection gesture uses.
package selection

import "github.com/ukaji3/gridview-go/pkg/gridview/models"

// Up selects, per axis, which edge of an unanchored selection moves.
type Up uint8

const (
	// UpCols moves the left edge instead of the right one.
	UpCols Up = 1 << iota
	// UpRows moves the top edge instead of the bottom one.
	UpRows
)

// UpFor returns the flags for a gesture moving by (dx, dy).
func UpFor(dx, dy int) Up {
	var up Up
	if dx < 0 {
		up |= UpCols
	}
	if dy < 0 {
		up |= UpRows
	}
	return up
}

// Model holds the active cell and the selected range. The range is kept
// normalized and always contains the active cell.
type Model struct {
	active models.CellAddress
	sel    models.CellRange
	limit  models.CellAddress

	// OnActiveCell is called after the active cell moves.
	OnActiveCell func(models.CellAddress)
	// OnSelection is called after the selected range changes.
	OnSelection func(models.CellRange)
}

// New creates a model with the active cell at (1, 1). limit is the
// bottom-right addressable cell.
func New(limit models.CellAddress) *Model {
	m := &Model{limit: limit}
	m.Reset()
	return m
}

// Reset moves the active cell to (1, 1) without notifying.
func (m *Model) Reset() {
	m.active = models.CellAddress{Col: 1, Row: 1}
	m.sel = models.SingleCell(m.active)
}

// Active returns the active cell.
func (m *Model) Active() models.CellAddress {
	return m.active
}

// Selection returns the selected range.
func (m *Model) Selection() models.CellRange {
	return m.sel
}

// Limit returns the bottom-right addressable cell.
func (m *Model) Limit() models.CellAddress {
	return m.limit
}

// Clamp bounds a to the grid.
func (m *Model) Clamp(a models.CellAddress) models.CellAddress {
	return models.CellAddress{
		Col: max(1, min(m.limit.Col, a.Col)),
		Row: max(1, min(m.limit.Row, a.Row)),
	}
}

// FullCols reports whether the selection spans every column.
func (m *Model) FullCols() bool {
	return m.sel.C1 == 1 && m.sel.C2 == m.limit.Col
}

// FullRows reports whether the selection spans every row.
func (m *Model) FullRows() bool {
	return m.sel.R1 == 1 && m.sel.R2 == m.limit.Row
}

// Set replaces the active cell and the selection and notifies a selection
// change. An active cell outside sel is clamped into it.
func (m *Model) Set(active models.CellAddress, sel models.CellRange) {
	sel = sel.Normalize()
	sel.C1, sel.R1 = max(1, sel.C1), max(1, sel.R1)
	sel.C2, sel.R2 = min(m.limit.Col, sel.C2), min(m.limit.Row, sel.R2)
	m.sel = sel
	m.active = models.CellAddress{
		Col: max(sel.C1, min(sel.C2, active.Col)),
		Row: max(sel.R1, min(sel.R2, active.Row)),
	}
	m.notifySelection()
}

// SetActive moves the active cell inside the current selection and
// notifies an active cell change.
func (m *Model) SetActive(a models.CellAddress) {
	if !m.sel.Contains(a) {
		return
	}
	m.active = a
	if m.OnActiveCell != nil {
		m.OnActiveCell(m.active)
	}
}

func (m *Model) notifySelection() {
	if m.OnSelection != nil {
		m.OnSelection(m.sel)
	}
}
