package gridview

import (
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

type editKind int

const (
	editResize editKind = iota
	editInsert
	editDelete
)

func (k editKind) String() string {
	switch k {
	case editInsert:
		return "insert"
	case editDelete:
		return "delete"
	default:
		return "resize"
	}
}

// InsertRows inserts as many default-height rows as are selected, before
// the first selected row. The selection must span every column.
func (e *Engine) InsertRows() { e.edit(models.AxisRows, editInsert, 0) }

// DeleteRows deletes the selected rows. The selection must span every
// column.
func (e *Engine) DeleteRows() { e.edit(models.AxisRows, editDelete, 0) }

// SetRowsHeight sets the height of the selected rows: h > 0 sets it,
// h == 0 hides the rows and h < 0 unhides them.
func (e *Engine) SetRowsHeight(h int) { e.edit(models.AxisRows, editResize, max(-1, h)) }

// InsertCols inserts as many default-width columns as are selected,
// before the first selected column. The selection must span every row.
func (e *Engine) InsertCols() { e.edit(models.AxisCols, editInsert, 0) }

// DeleteCols deletes the selected columns. The selection must span every
// row.
func (e *Engine) DeleteCols() { e.edit(models.AxisCols, editDelete, 0) }

// SetColsWidth sets the width of the selected columns, with the same
// conventions as SetRowsHeight.
func (e *Engine) SetColsWidth(w int) { e.edit(models.AxisCols, editResize, max(-1, w)) }

func (e *Engine) edit(axis models.Axis, kind editKind, size int) {
	full := e.sel.FullRows()
	if axis == models.AxisRows {
		full = e.sel.FullCols()
	}
	if !full {
		e.log.Debug("structural edit ignored", "axis", axis, "op", kind, "selection", e.sel.Selection())
		return
	}
	i0, i1 := e.sel.Selection().Bounds(axis)
	e.log.Debug("structural edit", "axis", axis, "op", kind, "from", i0, "to", i1, "size", size)
	if i0 >= e.panes.Main.Origin.Index(axis) {
		e.editInPlace(axis, kind, i0, i1, size)
	} else {
		e.editRebuild(axis, kind, i0, i1, size)
	}
	e.flush()
}

// editInPlace handles edits at or after the viewport origin: items before
// the edit stay, items after it are shifted by the size delta.
func (e *Engine) editInPlace(axis models.Axis, kind editKind, i0, i1, size int) {
	p0, _ := e.panes.HeadingSpan(axis, i0)
	_, p1 := e.panes.HeadingSpan(axis, i1)
	end := e.extent.On(axis)
	switch {
	case p0 >= end:
		// nothing drawn is affected
		e.applyEdit(axis, kind, i0, i1, size)
	case kind != editInsert && p1 >= end:
		e.applyEdit(axis, kind, i0, i1, size)
		e.deleteBand(axis, p0, far, surface.ContentKinds...)
		e.extent = e.extent.WithOn(axis, p0)
	default:
		delta := e.applyEdit(axis, kind, i0, i1, size)
		e.shiftEdit(axis, kind, p0, p1, delta)
	}
	e.refit()
}

// shiftEdit updates the items drawn from p0 onwards after an edit changed
// the headings in [p0, p1) by delta pixels.
func (e *Engine) shiftEdit(axis models.Axis, kind editKind, p0, p1, delta int) {
	grow := func() {
		e.extent = e.extent.WithOn(axis, e.extent.On(axis)+delta)
	}
	switch kind {
	case editResize:
		e.deleteBand(axis, p0, p1, surface.ContentKinds...)
		e.moveBand(axis, p1, delta, surface.ContentKinds...)
		grow()
		e.invalidate(models.Band(axis, p0, p1+delta, -far, far))
	case editInsert:
		// headings after the insertion point are renumbered
		e.deleteBand(axis, p0, far, headingKind(axis))
		e.moveBand(axis, p0, delta, surface.KindCell)
		grow()
		e.invalidate(models.Band(axis, p0, p0+delta, -far, far))
		e.invalidate(e.headingStrip(axis, p0+delta, e.extent.On(axis)))
	case editDelete:
		e.deleteBand(axis, p0, p1, surface.ContentKinds...)
		e.deleteBand(axis, p1, far, headingKind(axis))
		e.moveBand(axis, p1, delta, surface.KindCell)
		grow()
		e.invalidate(e.headingStrip(axis, p0, e.extent.On(axis)))
	}
}

// applyEdit updates the dimension store and returns the pixel delta.
func (e *Engine) applyEdit(axis models.Axis, kind editKind, i0, i1, size int) int {
	s := e.store(axis)
	switch kind {
	case editInsert:
		return s.Insert(i0, i1-i0+1)
	case editDelete:
		return s.Delete(i0, i1)
	}
	return s.SetSize(i0, i1, size)
}

// editRebuild handles edits that reach before the viewport origin. Pane
// indices are renumbered and the viewport is drawn from scratch.
func (e *Engine) editRebuild(axis models.Axis, kind editKind, i0, i1, size int) {
	e.applyEdit(axis, kind, i0, i1, size)
	n := i1 - i0 + 1
	switch kind {
	case editInsert:
		e.renumberPanes(axis, func(k int) int {
			if k > i0 {
				return k + n
			}
			return k
		})
	case editDelete:
		e.renumberPanes(axis, func(k int) int {
			switch {
			case k > i1:
				return k - n
			case k >= i0:
				return i0
			}
			return k
		})
	}
	e.panes.SyncDivider()
	e.rebuild()
}

func (e *Engine) renumberPanes(axis models.Axis, remap func(int) int) {
	s := e.store(axis)
	f := &e.panes.Frozen
	start, end := s.Clamp(remap(f.Start.Index(axis))), s.Clamp(remap(f.End.Index(axis)))
	if end <= start {
		start, end = 1, 1
	}
	f.Start = f.Start.WithIndex(axis, start)
	f.End = f.End.WithIndex(axis, end)
	origin := max(e.panes.MinOrigin(axis), s.Clamp(remap(e.panes.Main.Origin.Index(axis))))
	e.panes.Main.Origin = e.panes.Main.Origin.WithIndex(axis, origin)
	e.state.Freeze = e.panes.IsFrozen()
}
