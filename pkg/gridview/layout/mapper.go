// Package layout maps between cell addresses and surface pixels, and splits
// the grid into frozen quadrants.
package layout

import (
	"github.com/ukaji3/gridview-go/pkg/gridview/dims"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// Mapper converts between heading indices and pixel coordinates by walking
// the dimension stores from a viewport origin.
type Mapper struct {
	cols *dims.Store
	rows *dims.Store
}

// NewMapper creates a mapper over the column and row stores.
func NewMapper(cols, rows *dims.Store) *Mapper {
	return &Mapper{cols: cols, rows: rows}
}

// Store returns the dimension store of axis.
func (m *Mapper) Store(axis models.Axis) *dims.Store {
	if axis == models.AxisCols {
		return m.cols
	}
	return m.rows
}

// HeadingSpan returns the pixel interval [p0, p1) of heading idx when
// heading origin starts at originPx.
func (m *Mapper) HeadingSpan(axis models.Axis, idx, origin, originPx int) (int, int) {
	s := m.Store(axis)
	p0 := originPx + s.Span(origin, idx)
	return p0, p0 + s.Size(idx)
}

// HeadingAt returns the heading containing pixel coord when heading origin
// starts at originPx. Coordinates before the first or past the last
// heading clamp to 1 or the axis limit.
//
// The search jumps by the distance left divided by the default size and
// keeps a bracket of indices known to lie before and after coord, so
// runs of non-default sizes cannot make it oscillate.
func (m *Mapper) HeadingAt(axis models.Axis, coord, origin, originPx int) int {
	s := m.Store(axis)
	def := max(s.Default(), 1)
	lo, hi := 0, s.Limit()+1
	idx := s.Clamp(origin)
	for hi-lo > 1 {
		p0, p1 := m.HeadingSpan(axis, idx, origin, originPx)
		if coord >= p0 && coord < p1 {
			return idx
		}
		var next int
		if coord >= p1 {
			lo = idx
			next = s.Step(idx, max((coord-p1)/def, 1))
		} else {
			hi = idx
			next = s.Step(idx, -max((p0-coord)/def, 1))
		}
		if next <= lo || next >= hi {
			next = lo + (hi-lo)/2
		}
		idx = next
	}
	if lo < 1 {
		return 1
	}
	return s.Clamp(lo)
}

// CellRect returns the pixel rectangle of a for a viewport whose origin
// cell is drawn at px.
func (m *Mapper) CellRect(a, origin models.CellAddress, px models.Point) models.Rect {
	x0, x1 := m.HeadingSpan(models.AxisCols, a.Col, origin.Col, px.X)
	y0, y1 := m.HeadingSpan(models.AxisRows, a.Row, origin.Row, px.Y)
	return models.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// CellAt returns the cell containing pt for a viewport whose origin cell is
// drawn at px.
func (m *Mapper) CellAt(pt models.Point, origin models.CellAddress, px models.Point) models.CellAddress {
	return models.CellAddress{
		Col: m.HeadingAt(models.AxisCols, pt.X, origin.Col, px.X),
		Row: m.HeadingAt(models.AxisRows, pt.Y, origin.Row, px.Y),
	}
}
