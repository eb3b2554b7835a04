package layout

import "github.com/ukaji3/gridview-go/pkg/gridview/models"

// Region is the part of the grid drawn by one quadrant.
type Region struct {
	Quadrant models.Quadrant
	// Origin is the cell drawn at Pixel.
	Origin models.CellAddress
	// Pixel is the surface position of Origin.
	Pixel models.Point
	// Cells is the inclusive range of cells the quadrant shows.
	Cells models.CellRange
	// Rect is the surface area covered by Cells.
	Rect models.Rect
}

// Panes tracks the scrollable viewport and the frozen pane descriptor and
// answers which quadrant owns a pixel or a cell.
type Panes struct {
	Main   models.Viewport
	Frozen models.FrozenPane

	m *Mapper
}

// NewPanes creates unfrozen panes whose content starts at origin.
func NewPanes(m *Mapper, origin models.Point) *Panes {
	p := &Panes{m: m}
	p.Reset(origin)
	return p
}

// Reset scrolls back to cell (1, 1) and drops any frozen pane.
func (p *Panes) Reset(origin models.Point) {
	home := models.CellAddress{Col: 1, Row: 1}
	p.Main = models.Viewport{Origin: home, Last: home, Pixel: origin}
	p.Frozen = models.FrozenPane{Start: home, End: home, Pixel: origin}
}

// Mapper returns the coordinate mapper.
func (p *Panes) Mapper() *Mapper {
	return p.m
}

// IsFrozen reports whether any axis is frozen.
func (p *Panes) IsFrozen() bool {
	return p.Frozen.Frozen(models.AxisCols) || p.Frozen.Frozen(models.AxisRows)
}

// MinOrigin returns the lowest origin index the viewport may scroll to.
func (p *Panes) MinOrigin(axis models.Axis) int {
	return max(1, p.Frozen.End.Index(axis))
}

// SyncDivider places the scrollable viewport right after the frozen block.
func (p *Panes) SyncDivider() {
	for _, axis := range []models.Axis{models.AxisCols, models.AxisRows} {
		s := p.m.Store(axis)
		px := p.Frozen.Pixel.On(axis) + s.Span(p.Frozen.Start.Index(axis), p.Frozen.End.Index(axis))
		p.Main.Pixel = p.Main.Pixel.WithOn(axis, px)
	}
}

// Fit recomputes the last visible cell for a surface of the given size.
// The viewport always reaches the surface edge unless the axis runs out
// of headings.
func (p *Panes) Fit(size models.Point) {
	for _, axis := range []models.Axis{models.AxisCols, models.AxisRows} {
		origin := p.Main.Origin.Index(axis)
		last := p.m.HeadingAt(axis, size.On(axis)-1, origin, p.Main.Pixel.On(axis))
		p.Main.Last = p.Main.Last.WithIndex(axis, max(last, origin))
	}
}

// Extent returns the bottom-right pixel corner covered by the viewport.
func (p *Panes) Extent() models.Point {
	var out models.Point
	for _, axis := range []models.Axis{models.AxisCols, models.AxisRows} {
		s := p.m.Store(axis)
		end := p.Main.Pixel.On(axis) + s.Span(p.Main.Origin.Index(axis), p.Main.Last.Index(axis)+1)
		out = out.WithOn(axis, end)
	}
	return out
}

// AxisOrigin returns the origin index and pixel of the segment that draws
// coord along axis.
func (p *Panes) AxisOrigin(axis models.Axis, coord int) (int, int) {
	if p.Frozen.Frozen(axis) && coord < p.Main.Pixel.On(axis) {
		return p.Frozen.Start.Index(axis), p.Frozen.Pixel.On(axis)
	}
	return p.Main.Origin.Index(axis), p.Main.Pixel.On(axis)
}

// IndexOrigin returns the origin index and pixel of the segment that draws
// heading idx along axis.
func (p *Panes) IndexOrigin(axis models.Axis, idx int) (int, int) {
	if p.Frozen.Frozen(axis) && idx < p.Frozen.End.Index(axis) {
		return p.Frozen.Start.Index(axis), p.Frozen.Pixel.On(axis)
	}
	return p.Main.Origin.Index(axis), p.Main.Pixel.On(axis)
}

// HeadingAt returns the heading drawn at coord along axis.
func (p *Panes) HeadingAt(axis models.Axis, coord int) int {
	origin, px := p.AxisOrigin(axis, coord)
	return p.m.HeadingAt(axis, coord, origin, px)
}

// HeadingSpan returns the pixel interval of heading idx along axis.
func (p *Panes) HeadingSpan(axis models.Axis, idx int) (int, int) {
	origin, px := p.IndexOrigin(axis, idx)
	return p.m.HeadingSpan(axis, idx, origin, px)
}

// PointQuadrant returns the quadrant owning pixel pt. Both axes use the
// same half-open rule: a coordinate at or past the divider scrolls.
func (p *Panes) PointQuadrant(pt models.Point) models.Quadrant {
	colFrozen := p.Frozen.Frozen(models.AxisCols) && pt.X < p.Main.Pixel.X
	rowFrozen := p.Frozen.Frozen(models.AxisRows) && pt.Y < p.Main.Pixel.Y
	return models.QuadrantOf(colFrozen, rowFrozen)
}

// CellQuadrant returns the quadrant that draws cell a.
func (p *Panes) CellQuadrant(a models.CellAddress) models.Quadrant {
	colFrozen := p.Frozen.Frozen(models.AxisCols) && a.Col < p.Frozen.End.Col
	rowFrozen := p.Frozen.Frozen(models.AxisRows) && a.Row < p.Frozen.End.Row
	return models.QuadrantOf(colFrozen, rowFrozen)
}

// CellAt returns the cell drawn at pt, clamped to the grid.
func (p *Panes) CellAt(pt models.Point) models.CellAddress {
	return models.CellAddress{
		Col: p.HeadingAt(models.AxisCols, pt.X),
		Row: p.HeadingAt(models.AxisRows, pt.Y),
	}
}

// CellRect returns the pixel rectangle of a in the quadrant that draws it.
func (p *Panes) CellRect(a models.CellAddress) models.Rect {
	x0, x1 := p.HeadingSpan(models.AxisCols, a.Col)
	y0, y1 := p.HeadingSpan(models.AxisRows, a.Row)
	return models.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Quadrants returns the quadrants currently on screen, main first.
func (p *Panes) Quadrants() []models.Quadrant {
	cols := p.Frozen.Frozen(models.AxisCols)
	rows := p.Frozen.Frozen(models.AxisRows)
	out := []models.Quadrant{models.QuadrantMain}
	if rows {
		out = append(out, models.QuadrantFrozenRows)
	}
	if cols && rows {
		out = append(out, models.QuadrantCorner)
	}
	if cols {
		out = append(out, models.QuadrantFrozenCols)
	}
	return out
}

// Region returns the origin, pixel position and extent of quadrant q.
func (p *Panes) Region(q models.Quadrant) Region {
	colFrozen := q == models.QuadrantCorner || q == models.QuadrantFrozenCols
	rowFrozen := q == models.QuadrantCorner || q == models.QuadrantFrozenRows
	r := Region{Quadrant: q}
	for _, axis := range []models.Axis{models.AxisCols, models.AxisRows} {
		frozen := colFrozen
		if axis == models.AxisRows {
			frozen = rowFrozen
		}
		first, last := p.Main.Origin.Index(axis), p.Main.Last.Index(axis)
		px := p.Main.Pixel.On(axis)
		if frozen {
			first, last = p.Frozen.Start.Index(axis), p.Frozen.End.Index(axis)-1
			px = p.Frozen.Pixel.On(axis)
		}
		end := px + p.m.Store(axis).Span(first, last+1)
		r.Origin = r.Origin.WithIndex(axis, first)
		r.Pixel = r.Pixel.WithOn(axis, px)
		if axis == models.AxisCols {
			r.Cells.C1, r.Cells.C2 = first, last
			r.Rect.X0, r.Rect.X1 = px, end
		} else {
			r.Cells.R1, r.Cells.R2 = first, last
			r.Rect.Y0, r.Rect.Y1 = px, end
		}
	}
	return r
}
