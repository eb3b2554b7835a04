package gridview

import (
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/gridview-go/pkg/gridview/damage"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

// overflowMarker replaces text wider than its cell.
const overflowMarker = "*"

type cellKey struct {
	q models.Quadrant
	a models.CellAddress
}

// pass remembers what one redraw pass already drew.
type pass struct {
	headings [2]map[int]bool
	cells    map[cellKey]bool
}

func newPass() *pass {
	return &pass{
		headings: [2]map[int]bool{make(map[int]bool), make(map[int]bool)},
		cells:    make(map[cellKey]bool),
	}
}

func headingKind(axis models.Axis) surface.Kind {
	if axis == models.AxisCols {
		return surface.KindColHeading
	}
	return surface.KindRowHeading
}

// redraw consumes the pending damage and draws the headings and cells
// intersecting it.
func (e *Engine) redraw() {
	if !e.damage.Pending() {
		return
	}
	plan := e.damage.Validate(e.clip(), e.panes.Frozen.Pixel)
	e.areasStale = true
	p := newPass()
	for _, r := range plan.ColHeadings {
		e.drawHeadings(models.AxisCols, r, p)
	}
	for _, r := range plan.RowHeadings {
		e.drawHeadings(models.AxisRows, r, p)
	}
	for _, r := range plan.Cells {
		e.drawCells(r, p)
	}
	e.log.Debug("redraw pass",
		"col_pieces", len(plan.ColHeadings),
		"row_pieces", len(plan.RowHeadings),
		"cell_pieces", len(plan.Cells),
		"headings", len(p.headings[models.AxisCols])+len(p.headings[models.AxisRows]),
		"cells", len(p.cells))
}

func (e *Engine) drawHeadings(axis models.Axis, r models.Rect, p *pass) {
	lo, hi := r.Span(axis)
	// the corner belongs to neither strip
	lo = max(lo, e.panes.Frozen.Pixel.On(axis))
	strip := e.headingStrip(axis, 0, 0)
	olo, ohi := strip.Span(axis.Other())
	limit := e.store(axis).Limit()
	for coord := lo; coord < hi; {
		idx := e.panes.HeadingAt(axis, coord)
		p0, p1 := e.panes.HeadingSpan(axis, idx)
		if p1 <= coord {
			invariant(idx == limit, "heading walk",
				"%s heading %d ends at %d before %d", axis, idx, p1, coord)
			break
		}
		if !p.headings[axis][idx] {
			p.headings[axis][idx] = true
			e.place(surface.Item{
				Kind:  headingKind(axis),
				Rect:  models.Band(axis, p0, p1, olo, ohi),
				Text:  e.headingLabel(axis, idx),
				Index: idx,
			})
		}
		coord = p1
	}
}

func (e *Engine) drawCells(r models.Rect, p *pass) {
	m := e.panes.Mapper()
	for _, q := range e.panes.Quadrants() {
		reg := e.panes.Region(q)
		area := r.Intersect(reg.Rect)
		if area.Empty() {
			continue
		}
		for x := area.X0; x < area.X1; {
			col := m.HeadingAt(models.AxisCols, x, reg.Origin.Col, reg.Pixel.X)
			x0, x1 := m.HeadingSpan(models.AxisCols, col, reg.Origin.Col, reg.Pixel.X)
			if x1 <= x {
				invariant(col == e.cols.Limit(), "column walk", "column %d ends at %d before %d", col, x1, x)
				break
			}
			for y := area.Y0; y < area.Y1; {
				row := m.HeadingAt(models.AxisRows, y, reg.Origin.Row, reg.Pixel.Y)
				y0, y1 := m.HeadingSpan(models.AxisRows, row, reg.Origin.Row, reg.Pixel.Y)
				if y1 <= y {
					invariant(row == e.rows.Limit(), "row walk", "row %d ends at %d before %d", row, y1, y)
					break
				}
				e.drawCell(q, models.CellAddress{Col: col, Row: row}, models.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, p)
				y = y1
			}
			x = x1
		}
	}
}

func (e *Engine) drawCell(q models.Quadrant, a models.CellAddress, rect models.Rect, p *pass) {
	key := cellKey{q: q, a: a}
	if p.cells[key] {
		return
	}
	p.cells[key] = true
	text := e.opts.Content(q, a.Col, a.Row)
	if runewidth.StringWidth(text)*e.opts.GlyphWidth > rect.Width() {
		text = overflowMarker
	}
	e.place(surface.Item{Kind: surface.KindCell, Rect: rect, Text: text, Cell: a, Quadrant: q})
}

// place creates it, replacing any item of the same kind already drawn
// inside its rectangle. Replaced text goes to the error report.
func (e *Engine) place(it surface.Item) {
	for _, id := range e.surf.Find(it.Rect, surface.Enclosed, it.Kind) {
		if old, ok := e.surf.Item(id); ok {
			e.log.Debug("replacing drawn item", "old", old.Text, "new", it.Text)
			e.report = append(e.report, old.Text)
		}
		e.surf.Delete(id)
	}
	e.surf.Create(it)
}

// syncDrawnAreas mirrors the tracker's drawn rectangles as items, shown
// only while the areas toggle is on. Items are recreated only after a
// redraw pass changed the drawn set.
func (e *Engine) syncDrawnAreas() {
	if !e.areasStale {
		return
	}
	e.areasStale = false
	e.surf.Delete(e.surf.All(surface.KindDrawnArea)...)
	kinds := [...]damage.Kind{damage.ColHeadings, damage.RowHeadings, damage.Cells}
	for _, k := range kinds {
		for _, r := range e.damage.Drawn(k) {
			e.surf.Create(surface.Item{
				Kind:   surface.KindDrawnArea,
				Rect:   r,
				Text:   k.String(),
				Hidden: !e.state.AreasDrawn,
			})
		}
	}
}

func (e *Engine) drawFreezeLines() {
	e.surf.Delete(e.surf.All(surface.KindFreezeLine)...)
	if !e.panes.IsFrozen() {
		return
	}
	c, h, d := e.panes.Frozen.Pixel, e.headingSize(), e.panes.Main.Pixel
	if e.panes.Frozen.Frozen(models.AxisCols) {
		e.surf.Create(surface.Item{
			Kind:  surface.KindFreezeLine,
			Rect:  models.Rect{X0: d.X - 1, Y0: c.Y - h.Y, X1: d.X, Y1: max(e.size.Y, e.extent.Y)},
			Index: int(models.AxisCols),
		})
	}
	if e.panes.Frozen.Frozen(models.AxisRows) {
		e.surf.Create(surface.Item{
			Kind:  surface.KindFreezeLine,
			Rect:  models.Rect{X0: c.X - h.X, Y0: d.Y - 1, X1: max(e.size.X, e.extent.X), Y1: d.Y},
			Index: int(models.AxisRows),
		})
	}
}

// drawSelection redraws the selection and active cell overlays and
// highlights the headings of the selected range.
func (e *Engine) drawSelection() {
	e.surf.Delete(e.surf.All(surface.KindSelection, surface.KindActiveCell)...)
	c := e.panes.Frozen.Pixel
	clip := models.Rect{X0: c.X, Y0: c.Y, X1: e.extent.X, Y1: e.extent.Y}
	sel, active := e.sel.Selection(), e.sel.Active()

	if r := e.rangeRect(sel).Intersect(clip); !r.Empty() {
		e.surf.Create(surface.Item{Kind: surface.KindSelection, Rect: r})
	}
	if e.visible(active) {
		if r := e.panes.CellRect(active).Intersect(clip); !r.Empty() {
			e.surf.Create(surface.Item{Kind: surface.KindActiveCell, Rect: r, Cell: active})
		}
	}
	for _, axis := range axes {
		lo, hi := sel.Bounds(axis)
		for _, id := range e.surf.All(headingKind(axis)) {
			it, _ := e.surf.Item(id)
			e.surf.SetHighlighted(id, it.Index >= lo && it.Index <= hi)
		}
	}
}

// visible reports whether a is drawn by some quadrant.
func (e *Engine) visible(a models.CellAddress) bool {
	for _, axis := range axes {
		idx := a.Index(axis)
		if e.frozenIndex(axis, idx) {
			continue
		}
		if idx < e.panes.Main.Origin.Index(axis) {
			return false
		}
	}
	return true
}

func (e *Engine) frozenIndex(axis models.Axis, idx int) bool {
	f := e.panes.Frozen
	return f.Frozen(axis) && idx >= f.Start.Index(axis) && idx < f.End.Index(axis)
}

// rangeRect returns the pixel area of r. Parts scrolled under the frozen
// panes collapse onto the divider.
func (e *Engine) rangeRect(r models.CellRange) models.Rect {
	var out models.Rect
	for _, axis := range axes {
		lo, hi := r.Bounds(axis)
		p0, _ := e.edgeSpan(axis, lo)
		_, p1 := e.edgeSpan(axis, hi)
		if axis == models.AxisCols {
			out.X0, out.X1 = p0, p1
		} else {
			out.Y0, out.Y1 = p0, p1
		}
	}
	return out
}

func (e *Engine) edgeSpan(axis models.Axis, idx int) (int, int) {
	if !e.frozenIndex(axis, idx) && idx < e.panes.Main.Origin.Index(axis) {
		if idx < e.panes.Frozen.Start.Index(axis) {
			c := e.panes.Frozen.Pixel.On(axis)
			return c, c
		}
		d := e.panes.Main.Pixel.On(axis)
		return d, d
	}
	return e.panes.HeadingSpan(axis, idx)
}
