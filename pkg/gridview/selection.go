package gridview

import (
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/selection"
)

// SetSelectedCells moves the active cell to from and, when to is given,
// extends the selection to it. Both cells are scrolled into view.
func (e *Engine) SetSelectedCells(from models.CellAddress, to ...models.CellAddress) {
	e.sel.With(true, 0, func(p *selection.Pivot) {
		p.X, p.Y = from.Col, from.Row
	})
	if len(to) > 0 {
		corner := to[0]
		e.sel.With(false, 0, func(p *selection.Pivot) {
			p.X, p.Y = corner.Col, corner.Row
		})
		e.showCell(corner)
	}
	e.showCell(from)
	e.flush()
}

// SelectRange selects r with the active cell at its top-left corner.
func (e *Engine) SelectRange(r models.CellRange) {
	r = r.Normalize()
	e.SetSelectedCells(r.TopLeft(), r.BottomRight())
}

// SetActiveCell moves the active cell inside the current selection.
// Cells outside the selection are ignored.
func (e *Engine) SetActiveCell(a models.CellAddress) {
	e.sel.SetActive(a)
	e.flush()
}

// offsetActive moves the active cell, or with extend the selection edge,
// by (dx, dy) visible headings, then scrolls the pivot into view. jump
// moves to the sheet edge instead.
func (e *Engine) offsetActive(dx, dy int, extend, jump bool) {
	limit := e.sel.Limit()
	var target models.CellAddress
	e.sel.With(!extend, selection.UpFor(dx, dy), func(p *selection.Pivot) {
		if jump {
			dx = edgeDistance(dx, p.X, limit.Col)
			dy = edgeDistance(dy, p.Y, limit.Row)
		}
		p.X = max(1, min(limit.Col, e.cols.Step(p.X, dx)))
		p.Y = max(1, min(limit.Row, e.rows.Step(p.Y, dy)))
		target = models.CellAddress{Col: p.X, Row: p.Y}
	})
	// whole rows or columns only scroll along their own axis
	if e.sel.FullCols() {
		target.Col = e.panes.Main.Origin.Col
	}
	if e.sel.FullRows() {
		target.Row = e.panes.Main.Origin.Row
	}
	e.showCell(target)
}

func edgeDistance(d, at, limit int) int {
	switch {
	case d < 0:
		return -(at - 1)
	case d > 0:
		return limit - at
	}
	return 0
}
