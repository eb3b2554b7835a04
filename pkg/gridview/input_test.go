package gridview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

func TestSetSelectedCellsNotifiesOnce(t *testing.T) {
	e, c, rec := newEngine(t)

	e.SetSelectedCells(cell(2, 2), cell(4, 5))

	assert.Equal(t, []models.CellAddress{cell(2, 2)}, rec.active)
	assert.Equal(t, []models.CellRange{{C1: 2, R1: 2, C2: 4, R2: 5}}, rec.selection)
	assert.Equal(t, cell(2, 2), e.Active())

	sel := c.Items(surface.KindSelection)
	require.Len(t, sel, 1)
	assert.Equal(t, models.Rect{X0: 100, Y0: 40, X1: 280, Y1: 120}, sel[0].Rect)
	active := c.Items(surface.KindActiveCell)
	require.Len(t, active, 1)
	assert.Equal(t, cell(2, 2), active[0].Cell)

	for _, it := range c.Items(surface.KindColHeading) {
		assert.Equal(t, it.Index >= 2 && it.Index <= 4, it.Highlighted, "column %d", it.Index)
	}
}

func TestSetActiveCellStaysInSelection(t *testing.T) {
	e, _, _ := newEngine(t)
	e.SelectRange(models.CellRange{C1: 2, R1: 2, C2: 4, R2: 5})

	e.SetActiveCell(cell(3, 4))
	assert.Equal(t, cell(3, 4), e.Active())

	e.SetActiveCell(cell(9, 9))
	assert.Equal(t, cell(3, 4), e.Active())
	assert.Equal(t, models.CellRange{C1: 2, R1: 2, C2: 4, R2: 5}, e.Selection())
}

func TestArrowKeys(t *testing.T) {
	e, _, _ := newEngine(t)

	e.KeyPress(KeyDown, 0)
	assert.Equal(t, cell(1, 2), e.Active())

	e.KeyPress(KeyRight, ModShift)
	assert.Equal(t, cell(1, 2), e.Active())
	assert.Equal(t, models.CellRange{C1: 1, R1: 2, C2: 2, R2: 2}, e.Selection())

	e.KeyPress(KeyDown, ModCtrl)
	assert.Equal(t, cell(1, 1000), e.Active())
	assert.Equal(t, 987, e.Viewport().Origin.Row)
	checkSurface(t, e, true)

	e.KeyPress(KeyUp, ModCtrl)
	assert.Equal(t, cell(1, 1), e.Active())
	assert.Equal(t, 1, e.Viewport().Origin.Row)

	e.KeyPress(KeyLeft, 0)
	assert.Equal(t, cell(1, 1), e.Active(), "clamped at the sheet edge")
}

func TestArrowKeysSkipHiddenHeadings(t *testing.T) {
	e, _, _ := newEngine(t)
	e.SelectRange(fullRows(2, 3))
	e.SetRowsHeight(0)
	e.SetSelectedCells(cell(1, 1))

	e.KeyPress(KeyDown, 0)
	assert.Equal(t, cell(1, 4), e.Active())
}

func TestReturnAndTabCycleSelection(t *testing.T) {
	e, _, _ := newEngine(t)
	e.SelectRange(models.CellRange{C1: 1, R1: 1, C2: 2, R2: 2})

	var got []models.CellAddress
	for range 4 {
		e.KeyPress(KeyReturn, 0)
		got = append(got, e.Active())
	}
	assert.Equal(t, []models.CellAddress{cell(1, 2), cell(2, 1), cell(2, 2), cell(1, 1)}, got)

	got = nil
	for range 4 {
		e.KeyPress(KeyTab, 0)
		got = append(got, e.Active())
	}
	assert.Equal(t, []models.CellAddress{cell(2, 1), cell(1, 2), cell(2, 2), cell(1, 1)}, got)

	e.KeyPress(KeyReturn, ModShift)
	assert.Equal(t, cell(2, 2), e.Active())
	assert.Equal(t, models.CellRange{C1: 1, R1: 1, C2: 2, R2: 2}, e.Selection())
}

func TestReturnAndTabMoveSingleCell(t *testing.T) {
	e, _, _ := newEngine(t)

	e.KeyPress(KeyReturn, 0)
	assert.Equal(t, cell(1, 2), e.Active())
	e.KeyPress(KeyReturn, ModShift)
	assert.Equal(t, cell(1, 1), e.Active())
	e.KeyPress(KeyTab, 0)
	assert.Equal(t, cell(2, 1), e.Active())
	e.KeyPress(KeyTab, ModShift)
	assert.Equal(t, cell(1, 1), e.Active())
}

func TestHomeKey(t *testing.T) {
	e, _, _ := newEngine(t)
	e.MoveViewport(5, 10)
	e.SetSelectedCells(cell(7, 12))

	e.KeyPress(KeyHome, 0)
	assert.Equal(t, cell(1, 12), e.Active())
	assert.Equal(t, cell(1, 10), e.Viewport().Origin)

	e.KeyPress(KeyHome, ModCtrl)
	assert.Equal(t, cell(1, 1), e.Active())
	assert.Equal(t, cell(1, 1), e.Viewport().Origin)
	checkSurface(t, e, true)
}

func TestPageKeys(t *testing.T) {
	e, _, _ := newEngine(t)

	e.KeyPress(KeyPageDown, 0)
	assert.Equal(t, 15, e.Viewport().Origin.Row)
	assert.Equal(t, cell(1, 15), e.Active())

	e.KeyPress(KeyPageDown, ModShift)
	assert.Equal(t, 29, e.Viewport().Origin.Row)
	assert.Equal(t, cell(1, 15), e.Active())
	assert.Equal(t, models.CellRange{C1: 1, R1: 15, C2: 1, R2: 29}, e.Selection())

	e.KeyPress(KeyPageDown, ModAlt)
	assert.Equal(t, 7, e.Viewport().Origin.Col)
	checkSurface(t, e, true)
}

func TestWheel(t *testing.T) {
	e, _, _ := newEngine(t)
	e.Wheel(3, 0)
	e.Wheel(2, ModShift)
	assert.Equal(t, cell(3, 4), e.Viewport().Origin)
	e.Wheel(-10, 0)
	assert.Equal(t, cell(3, 1), e.Viewport().Origin)
}

func TestPointerPressRegions(t *testing.T) {
	e, _, _ := newEngine(t)

	e.PointerPress(models.Point{X: 130, Y: 50}, 0)
	e.PointerRelease()
	assert.Equal(t, cell(2, 2), e.Active())
	assert.True(t, e.Selection().IsSingle())

	e.PointerPress(models.Point{X: 10, Y: 10}, 0)
	e.PointerRelease()
	assert.Equal(t, models.CellRange{C1: 1, R1: 1, C2: 100, R2: 1000}, e.Selection())
	assert.Equal(t, cell(1, 1), e.Active())

	e.PointerPress(models.Point{X: 10, Y: 50}, 0)
	e.PointerRelease()
	assert.Equal(t, models.CellRange{C1: 1, R1: 2, C2: 100, R2: 2}, e.Selection())
	assert.Equal(t, cell(1, 2), e.Active())

	e.PointerPress(models.Point{X: 130, Y: 10}, 0)
	e.PointerRelease()
	assert.Equal(t, models.CellRange{C1: 2, R1: 1, C2: 2, R2: 1000}, e.Selection())
	assert.Equal(t, cell(2, 1), e.Active())

	e.PointerPress(models.Point{X: 250, Y: 10}, ModShift)
	e.PointerRelease()
	assert.Equal(t, models.CellRange{C1: 2, R1: 1, C2: 4, R2: 1000}, e.Selection())
	assert.Equal(t, cell(2, 1), e.Active())

	e.PointerPress(models.Point{X: 450, Y: 10}, 0)
	e.PointerRelease()
	assert.Equal(t, models.CellRange{C1: 2, R1: 1, C2: 4, R2: 1000}, e.Selection(), "press past the content is ignored")
}

func TestDragOverRowHeadings(t *testing.T) {
	e, _, _ := newEngine(t)
	sched := &fakeScheduler{}
	e.opts.Scheduler = sched

	e.PointerPress(models.Point{X: 10, Y: 50}, 0)
	e.PointerDrag(models.Point{X: 10, Y: 110})
	e.PointerRelease()

	assert.Equal(t, models.CellRange{C1: 1, R1: 2, C2: 100, R2: 5}, e.Selection())
	assert.Empty(t, sched.pending)
}

func TestDragAutoScroll(t *testing.T) {
	sched := &fakeScheduler{}
	e, _, _ := newEngine(t, func(o *Options) { o.Scheduler = sched })

	e.PointerPress(models.Point{X: 100, Y: 100}, 0)
	assert.Equal(t, cell(2, 5), e.Active())

	e.PointerDrag(models.Point{X: 220, Y: 100})
	assert.Empty(t, sched.pending, "no auto-scroll inside the surface")
	assert.Equal(t, models.CellRange{C1: 2, R1: 5, C2: 4, R2: 5}, e.Selection())

	e.PointerDrag(models.Point{X: 100, Y: 350})
	assert.Equal(t, models.CellRange{C1: 2, R1: 5, C2: 2, R2: 17}, e.Selection())
	assert.Equal(t, 4, e.Viewport().Origin.Row)
	require.Len(t, sched.pending, 1)
	assert.Equal(t, time.Second, sched.delays[0])

	assert.Equal(t, 1, sched.run())
	assert.Equal(t, 20, e.Selection().R2)
	assert.Equal(t, 7, e.Viewport().Origin.Row)
	require.Len(t, sched.pending, 1)

	e.PointerRelease()
	assert.Equal(t, 1, sched.run())
	assert.Equal(t, 7, e.Viewport().Origin.Row, "ticks after release do nothing")
	assert.Empty(t, sched.pending)
	assert.Equal(t, cell(2, 5), e.Active())
	checkSurface(t, e, true)
}
