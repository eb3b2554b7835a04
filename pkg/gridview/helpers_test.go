package gridview

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

type recorder struct {
	active    []models.CellAddress
	selection []models.CellRange
	reports   []string
}

func (r *recorder) events() Events {
	return Events{
		ActiveCell:  func(a models.CellAddress) { r.active = append(r.active, a) },
		Selection:   func(s models.CellRange) { r.selection = append(r.selection, s) },
		ErrorReport: func(s string) { r.reports = append(r.reports, s) },
	}
}

type fakeScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (f *fakeScheduler) After(d time.Duration, fn func()) {
	f.pending = append(f.pending, fn)
	f.delays = append(f.delays, d)
}

func (f *fakeScheduler) run() int {
	p := f.pending
	f.pending = nil
	for _, fn := range p {
		fn()
	}
	return len(p)
}

// newEngine returns an engine with the default geometry on a 400x300
// canvas: columns 1-6 and rows 1-14 are visible.
func newEngine(t *testing.T, tweak ...func(*Options)) (*Engine, *surface.Canvas, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := DefaultOptions()
	opts.Events = rec.events()
	for _, fn := range tweak {
		fn(&opts)
	}
	c := surface.NewCanvas()
	e, err := New(c, opts)
	require.NoError(t, err)
	e.Resize(400, 300)
	return e, c, rec
}

func cellAt(t *testing.T, c *surface.Canvas, r models.Rect) surface.Item {
	t.Helper()
	ids := c.Find(r, surface.Enclosed, surface.KindCell)
	require.Len(t, ids, 1, "cells enclosed in %+v", r)
	it, _ := c.Item(ids[0])
	return it
}

// checkSurface verifies that the canvas holds exactly one heading per
// visible heading and one cell per visible cell of every quadrant, at the
// positions the panes compute. With texts, cell and heading labels are
// checked too.
func checkSurface(t *testing.T, e *Engine, texts bool) {
	t.Helper()
	c := e.Surface()
	m := e.panes.Mapper()

	wantCells := 0
	for _, q := range e.panes.Quadrants() {
		reg := e.panes.Region(q)
		for col := reg.Cells.C1; col <= reg.Cells.C2; col++ {
			if e.cols.Hidden(col) {
				continue
			}
			for row := reg.Cells.R1; row <= reg.Cells.R2; row++ {
				if e.rows.Hidden(row) {
					continue
				}
				a := models.CellAddress{Col: col, Row: row}
				r := m.CellRect(a, reg.Origin, reg.Pixel)
				ids := c.Find(r, surface.Enclosed, surface.KindCell)
				require.Len(t, ids, 1, "quadrant %d cell %s at %+v", q, a, r)
				wantCells++
				if !texts {
					continue
				}
				it, _ := c.Item(ids[0])
				want := e.opts.Content(q, col, row)
				if runewidth.StringWidth(want)*e.opts.GlyphWidth > r.Width() {
					want = overflowMarker
				}
				require.Equal(t, want, it.Text, "quadrant %d cell %s", q, a)
			}
		}
	}
	require.Len(t, c.All(surface.KindCell), wantCells, "cell item count")

	for _, axis := range axes {
		var want []int
		f := e.panes.Frozen
		if f.Frozen(axis) {
			for i := f.Start.Index(axis); i < f.End.Index(axis); i++ {
				want = append(want, i)
			}
		}
		for i := e.panes.Main.Origin.Index(axis); i <= e.panes.Main.Last.Index(axis); i++ {
			want = append(want, i)
		}
		n := 0
		for _, idx := range want {
			if e.store(axis).Hidden(idx) {
				continue
			}
			p0, p1 := e.panes.HeadingSpan(axis, idx)
			strip := e.headingStrip(axis, p0, p1)
			ids := c.Find(strip, surface.Enclosed, headingKind(axis))
			require.Len(t, ids, 1, "%s heading %d at %+v", axis, idx, strip)
			n++
			if texts {
				it, _ := c.Item(ids[0])
				require.Equal(t, idx, it.Index)
				require.Equal(t, e.headingLabel(axis, idx), it.Text)
			}
		}
		require.Len(t, c.All(headingKind(axis)), n, "%s heading count", axis)
	}
	require.Len(t, c.All(surface.KindCorner), 1)
	require.False(t, e.damage.Pending(), "damage left after flush")
}
