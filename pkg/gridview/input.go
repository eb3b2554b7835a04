package gridview

import (
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/selection"
)

// Key is a navigation key understood by KeyPress.
type Key int

const (
	// KeyUp moves the active cell one visible row up.
	KeyUp Key = iota
	// KeyDown moves the active cell one visible row down.
	KeyDown
	// KeyLeft moves the active cell one visible column left.
	KeyLeft
	// KeyRight moves the active cell one visible column right.
	KeyRight
	// KeyHome moves to the first scrollable column, with ctrl also the
	// first scrollable row.
	KeyHome
	// KeyPageUp scrolls one screen up, or left with alt.
	KeyPageUp
	// KeyPageDown scrolls one screen down, or right with alt.
	KeyPageDown
	// KeyReturn moves down, or cycles through a multi-cell selection by rows.
	KeyReturn
	// KeyTab moves right, or cycles through a multi-cell selection by columns.
	KeyTab
)

// Modifiers is a set of modifier keys.
type Modifiers uint8

const (
	// ModShift extends the selection or reverses Return and Tab.
	ModShift Modifiers = 1 << iota
	// ModCtrl jumps to the sheet edge.
	ModCtrl
	// ModAlt makes page keys scroll horizontally.
	ModAlt
)

// KeyPress applies a navigation key. Shift extends the selection instead
// of moving the active cell.
func (e *Engine) KeyPress(key Key, mods Modifiers) {
	shift := mods&ModShift != 0
	switch key {
	case KeyHome:
		e.home(shift, mods&ModCtrl != 0)
	case KeyPageUp, KeyPageDown:
		n := 1
		if key == KeyPageUp {
			n = -1
		}
		axis := models.AxisRows
		if mods&ModAlt != 0 {
			axis = models.AxisCols
		}
		e.page(axis, n, shift)
	case KeyReturn, KeyTab:
		if !e.sel.Selection().IsSingle() {
			e.cycleActive(key == KeyTab, shift)
			break
		}
		switch {
		case key == KeyReturn && shift:
			e.offsetActive(0, -1, false, false)
		case key == KeyReturn:
			e.offsetActive(0, 1, false, false)
		case shift:
			e.offsetActive(-1, 0, false, false)
		default:
			e.offsetActive(1, 0, false, false)
		}
	default:
		dx, dy := arrowDelta(key)
		e.offsetActive(dx, dy, shift, mods&ModCtrl != 0)
	}
	e.flush()
}

func arrowDelta(k Key) (int, int) {
	switch k {
	case KeyUp:
		return 0, -1
	case KeyDown:
		return 0, 1
	case KeyLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// home moves to the first scrollable column, and with ctrl to the first
// scrollable row as well.
func (e *Engine) home(shift, ctrl bool) {
	target := e.panes.Main.Origin
	e.sel.With(!shift, 0, func(p *selection.Pivot) {
		p.X = e.panes.MinOrigin(models.AxisCols)
		target.Col = p.X
		if ctrl {
			p.Y = e.panes.MinOrigin(models.AxisRows)
			target.Row = p.Y
		}
	})
	e.scrollTo(models.AxisCols, target.Col)
	e.scrollTo(models.AxisRows, target.Row)
}

// page scrolls by a screen and keeps the pivot at the same surface
// position.
func (e *Engine) page(axis models.Axis, n int, shift bool) {
	e.sel.With(!shift, 0, func(p *selection.Pivot) {
		a := models.CellAddress{Col: p.X, Row: p.Y}
		pt := e.panes.CellRect(a).Min()
		if idx := a.Index(axis); idx < e.panes.Main.Origin.Index(axis) {
			pt = pt.WithOn(axis, e.panes.Main.Pixel.On(axis))
		}
		e.scrollPages(axis, n)
		next := e.panes.CellAt(pt)
		p.X, p.Y = next.Col, next.Row
	})
}

// cycleActive moves the active cell through a multi-cell selection, row
// by row for Return and column by column for Tab.
func (e *Engine) cycleActive(byCol, back bool) {
	sel, a := e.sel.Selection(), e.sel.Active()
	major, minor := models.AxisRows, models.AxisCols
	if byCol {
		major, minor = models.AxisCols, models.AxisRows
	}
	mlo, mhi := sel.Bounds(major)
	nlo, nhi := sel.Bounds(minor)
	m, n := a.Index(major), a.Index(minor)
	if back {
		if m <= mlo {
			m = mhi
			if n > nlo {
				n--
			} else {
				n = nhi
			}
		} else {
			m--
		}
	} else {
		if m >= mhi {
			m = mlo
			if n < nhi {
				n++
			} else {
				n = nlo
			}
		} else {
			m++
		}
	}
	next := a.WithIndex(major, m).WithIndex(minor, n)
	e.sel.SetActive(next)
	e.showCell(next)
}

// Wheel scrolls by n units, vertically or with shift horizontally.
func (e *Engine) Wheel(n int, mods Modifiers) {
	axis := models.AxisRows
	if mods&ModShift != 0 {
		axis = models.AxisCols
	}
	e.ScrollUnits(axis, n)
}

// PointerPress starts a click or drag at pt. The corner selects every
// cell, the heading strips select whole columns or rows and shift extends
// the selection.
func (e *Engine) PointerPress(pt models.Point, mods Modifiers) {
	e.dragging = true
	e.dragPos = pt
	if pt.X >= e.extent.X || pt.Y >= e.extent.Y {
		return
	}
	shift := mods&ModShift != 0
	c := e.panes.Frozen.Pixel
	limit := e.sel.Limit()
	if pt.X < c.X && pt.Y < c.Y {
		e.sel.Set(e.panes.Main.Origin, models.CellRange{C1: 1, R1: 1, C2: limit.Col, R2: limit.Row})
		e.flush()
		return
	}
	a := e.panes.CellAt(models.Point{X: max(pt.X, c.X), Y: max(pt.Y, c.Y)})
	e.sel.With(!shift, 0, func(p *selection.Pivot) {
		p.X, p.Y = a.Col, a.Row
	})
	sel := e.sel.Selection()
	switch {
	case pt.X < c.X:
		active := e.sel.Active()
		if !shift {
			active = models.CellAddress{Col: e.panes.Main.Origin.Col, Row: a.Row}
		}
		e.sel.Set(active, models.CellRange{C1: 1, R1: sel.R1, C2: limit.Col, R2: sel.R2})
	case pt.Y < c.Y:
		active := e.sel.Active()
		if !shift {
			active = models.CellAddress{Col: a.Col, Row: e.panes.Main.Origin.Row}
		}
		e.sel.Set(active, models.CellRange{C1: sel.C1, R1: 1, C2: sel.C2, R2: limit.Row})
	}
	e.flush()
}

// PointerDrag extends the selection to pt. Dragging over the heading
// strips or past the surface edge keeps scrolling on the Scheduler until
// the pointer is released.
func (e *Engine) PointerDrag(pt models.Point) {
	if !e.dragging {
		return
	}
	e.dragPos = pt
	e.dragStep()
}

// PointerRelease ends a drag. Pending auto-scroll ticks become no-ops.
func (e *Engine) PointerRelease() {
	e.dragging = false
}

// Dragging reports whether a pointer drag is in progress.
func (e *Engine) Dragging() bool {
	return e.dragging
}

func (e *Engine) dragStep() {
	pt := e.dragPos
	c := e.panes.Frozen.Pixel
	origin := e.panes.Main.Origin
	extendTo := func(a models.CellAddress, cols, rows bool) {
		e.sel.With(false, 0, func(p *selection.Pivot) {
			if cols {
				p.X = a.Col
			}
			if rows {
				p.Y = a.Row
			}
		})
	}
	switch {
	case pt.X < c.X && pt.Y < c.Y:
		switch {
		case e.sel.FullCols():
			e.scrollUnits(models.AxisRows, -1)
		case e.sel.FullRows():
			e.scrollUnits(models.AxisCols, -1)
		default:
			e.scrollUnits(models.AxisCols, -1)
			e.scrollUnits(models.AxisRows, -1)
		}
		extendTo(e.panes.Main.Origin, !e.sel.FullCols(), !e.sel.FullRows())
		e.scheduleDrag()
	case pt.Y < c.Y:
		if !e.sel.FullRows() {
			e.scrollUnits(models.AxisRows, -1)
			extendTo(e.panes.Main.Origin, false, true)
			e.scheduleDrag()
			break
		}
		col := e.panes.HeadingAt(models.AxisCols, pt.X)
		extendTo(models.CellAddress{Col: col}, true, false)
		if pt.X >= e.size.X {
			e.showCell(models.CellAddress{Col: col, Row: origin.Row})
			e.scheduleDrag()
		}
	case pt.X < c.X:
		if !e.sel.FullCols() {
			e.scrollUnits(models.AxisCols, -1)
			extendTo(e.panes.Main.Origin, true, false)
			e.scheduleDrag()
			break
		}
		row := e.panes.HeadingAt(models.AxisRows, pt.Y)
		extendTo(models.CellAddress{Row: row}, false, true)
		if pt.Y >= e.size.Y {
			e.showCell(models.CellAddress{Col: origin.Col, Row: row})
			e.scheduleDrag()
		}
	default:
		a := e.panes.CellAt(pt)
		extendTo(a, true, true)
		e.showCell(a)
		if pt.X >= e.size.X || pt.Y >= e.size.Y {
			e.scheduleDrag()
		}
	}
	e.flush()
}

func (e *Engine) scheduleDrag() {
	if e.opts.Scheduler == nil || e.tickPending {
		return
	}
	e.tickPending = true
	e.opts.Scheduler.After(e.opts.AutoScrollDelay, e.dragTick)
}

func (e *Engine) dragTick() {
	e.tickPending = false
	if !e.dragging {
		e.log.Debug("auto-scroll tick after release ignored")
		return
	}
	e.dragStep()
}
