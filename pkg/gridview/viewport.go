package gridview

import (
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

// MoveViewport scrolls so that (col, row) becomes the top-left scrollable
// cell. Targets are clamped to the grid and to the frozen panes.
func (e *Engine) MoveViewport(col, row int) {
	e.scrollTo(models.AxisCols, col)
	e.scrollTo(models.AxisRows, row)
	e.flush()
}

// ScrollUnits scrolls axis by n visible headings.
func (e *Engine) ScrollUnits(axis models.Axis, n int) {
	e.scrollUnits(axis, n)
	e.flush()
}

// ScrollPages scrolls axis by n screens.
func (e *Engine) ScrollPages(axis models.Axis, n int) {
	e.scrollPages(axis, n)
	e.flush()
}

// ScrollToFraction scrolls axis to a position in [0, 1] of the scrollable
// range. The sheet end never scrolls past the viewport end.
func (e *Engine) ScrollToFraction(axis models.Axis, f float64) {
	f = max(0, min(1, f))
	base := e.panes.MinOrigin(axis)
	target := int(f*float64(e.store(axis).Limit()-base)) + base
	e.scrollTo(axis, min(target, e.maxOrigin(axis)))
	e.flush()
}

// Fraction returns the visible part of axis as scrollbar fractions.
func (e *Engine) Fraction(axis models.Axis) (float64, float64) {
	base := e.panes.MinOrigin(axis)
	denom := float64(e.store(axis).Limit() - base)
	if denom <= 0 {
		return 0, 1
	}
	origin := e.panes.Main.Origin.Index(axis)
	first := float64(origin-base) / denom
	if origin >= e.maxOrigin(axis) {
		return min(first, 1), 1
	}
	last := float64(e.panes.Main.Last.Index(axis)-base) / denom
	return first, max(first, min(last, 1))
}

// ShowCell scrolls the least amount that makes cell (col, row) fully
// visible. Frozen headings are always visible.
func (e *Engine) ShowCell(col, row int) {
	e.showCell(models.CellAddress{Col: col, Row: row})
	e.flush()
}

func (e *Engine) showCell(a models.CellAddress) {
	a = e.sel.Clamp(a)
	for _, axis := range axes {
		idx := a.Index(axis)
		if e.panes.Frozen.Frozen(axis) && idx < e.panes.Frozen.End.Index(axis) {
			continue
		}
		origin := e.panes.Main.Origin.Index(axis)
		if idx < origin {
			e.scrollTo(axis, idx)
			continue
		}
		m := e.panes.Mapper()
		_, p1 := m.HeadingSpan(axis, idx, origin, e.panes.Main.Pixel.On(axis))
		if p1 > e.size.On(axis) {
			e.scrollTo(axis, max(origin, e.fitOrigin(axis, idx)))
		}
	}
}

// fitOrigin returns the lowest origin that still shows idx entirely, or
// idx itself when it is larger than the scrollable area.
func (e *Engine) fitOrigin(axis models.Axis, idx int) int {
	s := e.store(axis)
	view := e.size.On(axis) - e.panes.Main.Pixel.On(axis)
	lo := e.panes.MinOrigin(axis)
	o, total := idx, s.Size(idx)
	for o > lo && total+s.Size(o-1) <= view {
		o--
		total += s.Size(o)
	}
	return o
}

// maxOrigin is the origin that shows the last heading at the viewport end.
func (e *Engine) maxOrigin(axis models.Axis) int {
	return e.fitOrigin(axis, e.store(axis).Limit())
}

func (e *Engine) scrollUnits(axis models.Axis, n int) {
	origin := e.panes.Main.Origin.Index(axis)
	e.scrollTo(axis, e.store(axis).Step(origin, n))
}

// scrollPages moves by screens: forward to the last visible heading,
// backward to the heading that puts the current origin last.
func (e *Engine) scrollPages(axis models.Axis, n int) {
	m := e.panes.Mapper()
	for ; n != 0; n -= sign(n) {
		origin := e.panes.Main.Origin.Index(axis)
		px := e.panes.Main.Pixel.On(axis)
		size := e.size.On(axis)
		var target int
		if n > 0 {
			target = m.HeadingAt(axis, size, origin, px)
		} else {
			p0, p1 := m.HeadingSpan(axis, origin, origin, px)
			target = m.HeadingAt(axis, p1-(size-p0), origin, px)
		}
		if target == origin {
			target = e.store(axis).Step(origin, sign(n))
		}
		e.scrollTo(axis, target)
		if e.panes.Main.Origin.Index(axis) == origin {
			break
		}
	}
}

// scrollTo moves the scrollable viewport along axis. Items still visible
// are shifted, items that scroll out are deleted and the exposed strip is
// invalidated. A jump of at least one screen redraws the whole viewport.
func (e *Engine) scrollTo(axis models.Axis, target int) {
	s := e.store(axis)
	target = max(e.panes.MinOrigin(axis), s.Clamp(target))
	origin := e.panes.Main.Origin.Index(axis)
	if target == origin {
		return
	}
	// pending damage is in pixels of the current layout
	e.redraw()
	d := s.Span(origin, target)
	e.panes.Main.Origin = e.panes.Main.Origin.WithIndex(axis, target)
	p := e.panes.Main.Pixel.On(axis)
	view := e.size.On(axis) - p
	e.log.Debug("move viewport", "axis", axis, "from", origin, "to", target, "delta", d)
	switch {
	case d == 0:
	case abs(d) >= view:
		e.deleteBand(axis, p, far, surface.ContentKinds...)
		e.extent = e.extent.WithOn(axis, p)
	case d > 0:
		e.deleteBand(axis, p, p+d, surface.ContentKinds...)
		e.moveBand(axis, p+d, -d, surface.ContentKinds...)
		e.extent = e.extent.WithOn(axis, e.extent.On(axis)-d)
	default:
		e.moveBand(axis, p, -d, surface.ContentKinds...)
		e.invalidate(models.Band(axis, p, p-d, -far, far))
		e.extent = e.extent.WithOn(axis, e.extent.On(axis)-d)
	}
	e.refit()
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
