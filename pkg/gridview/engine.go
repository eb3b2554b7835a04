package gridview

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ukaji3/gridview-go/pkg/gridview/damage"
	"github.com/ukaji3/gridview-go/pkg/gridview/dims"
	"github.com/ukaji3/gridview-go/pkg/gridview/layout"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/selection"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

// far bounds the open side of bands that extend to the end of the surface.
const far = 1 << 30

var axes = [...]models.Axis{models.AxisCols, models.AxisRows}

// Engine is the viewport controller. It owns the dimension stores, the
// panes, the selection and the damage tracker, and keeps the drawable
// items of a Surface in sync with them.
//
// Every exported mutating method ends with a redraw pass, so the surface
// is consistent whenever control returns to the caller. Engine is not
// safe for concurrent use; drive it from one goroutine.
type Engine struct {
	opts Options
	log  *slog.Logger

	cols   *dims.Store
	rows   *dims.Store
	panes  *layout.Panes
	sel    *selection.Model
	damage *damage.Tracker
	surf   surface.Surface

	state models.PaneState
	size  models.Point
	// extent is the bottom-right corner of the drawn content.
	extent models.Point
	report []string
	// areasStale is set when the drawn-area items lag the tracker.
	areasStale bool

	dragging    bool
	dragPos     models.Point
	tickPending bool
}

// New creates an engine drawing into s. A nil s gets an in-memory Canvas.
// Nothing is drawn until the first Resize.
func New(s surface.Surface, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if s == nil {
		s = surface.NewCanvas()
	}
	e := &Engine{
		opts:   opts,
		log:    opts.Logger,
		cols:   dims.New(opts.ColWidth, opts.MaxCols),
		rows:   dims.New(opts.RowHeight, opts.MaxRows),
		sel:    selection.New(models.CellAddress{Col: opts.MaxCols, Row: opts.MaxRows}),
		damage: damage.New(),
		surf:   s,
		state:  models.PaneState{Gridlines: true, Headings: true},
	}
	e.panes = layout.NewPanes(layout.NewMapper(e.cols, e.rows), e.contentOrigin())
	e.extent = e.contentOrigin()
	e.sel.OnActiveCell = func(a models.CellAddress) {
		if opts.Events.ActiveCell != nil {
			opts.Events.ActiveCell(a)
		}
	}
	e.sel.OnSelection = func(r models.CellRange) {
		if opts.Events.Selection != nil {
			opts.Events.Selection(r)
		}
	}
	e.createCorner()
	return e, nil
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// Surface returns the surface the engine draws into.
func (e *Engine) Surface() surface.Surface {
	return e.surf
}

// State returns the display toggles.
func (e *Engine) State() models.PaneState {
	return e.state
}

// Viewport returns the scrollable viewport.
func (e *Engine) Viewport() models.Viewport {
	return e.panes.Main
}

// Frozen returns the frozen pane descriptor.
func (e *Engine) Frozen() models.FrozenPane {
	return e.panes.Frozen
}

// Active returns the active cell.
func (e *Engine) Active() models.CellAddress {
	return e.sel.Active()
}

// Selection returns the selected range.
func (e *Engine) Selection() models.CellRange {
	return e.sel.Selection()
}

// Size returns the surface size.
func (e *Engine) Size() models.Point {
	return e.size
}

// Extent returns the bottom-right corner of the drawn content.
func (e *Engine) Extent() models.Point {
	return e.extent
}

// Dims returns the dimension store of axis.
func (e *Engine) Dims(axis models.Axis) *dims.Store {
	return e.store(axis)
}

// CellAt returns the cell drawn at pt.
func (e *Engine) CellAt(pt models.Point) models.CellAddress {
	return e.panes.CellAt(pt)
}

// Resize sets the surface size and redraws what became visible.
func (e *Engine) Resize(width, height int) {
	e.size = models.Point{X: max(0, width), Y: max(0, height)}
	e.log.Debug("resize", "width", e.size.X, "height", e.size.Y)
	e.refit()
	e.flush()
}

// Reset returns to a clean sheet: default sizes, no frozen panes, the
// active cell at (1, 1) and every item redrawn.
func (e *Engine) Reset() {
	e.cols.Load(models.AxisLayout{})
	e.rows.Load(models.AxisLayout{})
	e.sel.Reset()
	e.state.Freeze = false
	e.dragging = false
	e.damage.Reset()
	e.surf.Clear()
	e.areasStale = true
	e.panes.Reset(e.contentOrigin())
	e.createCorner()
	e.rebuild()
	e.flush()
}

func (e *Engine) store(axis models.Axis) *dims.Store {
	if axis == models.AxisCols {
		return e.cols
	}
	return e.rows
}

// headingSize returns the heading strip thickness: the row heading
// width and the column heading height.
func (e *Engine) headingSize() models.Point {
	return models.Point{X: e.opts.RowHeadingWidth, Y: e.opts.ColHeadingHeight}
}

// contentOrigin is where the first frozen cell is drawn. Hidden headings
// are kept above and left of the surface.
func (e *Engine) contentOrigin() models.Point {
	if e.state.Headings {
		return e.headingSize()
	}
	return models.Point{}
}

// clip is the area the redraw pass may draw into.
func (e *Engine) clip() models.Rect {
	c, h := e.panes.Frozen.Pixel, e.headingSize()
	return models.Rect{X0: c.X - h.X, Y0: c.Y - h.Y, X1: e.extent.X, Y1: e.extent.Y}
}

// headingStrip returns the part of axis's heading strip between lo and hi.
func (e *Engine) headingStrip(axis models.Axis, lo, hi int) models.Rect {
	c, h := e.panes.Frozen.Pixel, e.headingSize()
	other := axis.Other()
	return models.Band(axis, lo, hi, c.On(other)-h.On(other), c.On(other))
}

func (e *Engine) createCorner() {
	c, h := e.panes.Frozen.Pixel, e.headingSize()
	e.surf.Create(surface.Item{
		Kind: surface.KindCorner,
		Rect: models.Rect{X0: c.X - h.X, Y0: c.Y - h.Y, X1: c.X, Y1: c.Y},
	})
}

func (e *Engine) invalidate(r models.Rect) {
	if r.Empty() {
		return
	}
	e.damage.Invalidate(r)
	if e.log.Enabled(context.Background(), slog.LevelDebug) {
		from := e.panes.CellAt(r.Min())
		to := e.panes.CellAt(models.Point{X: r.X1 - 1, Y: r.Y1 - 1})
		e.log.Debug("invalidated area", "rect", r,
			"cells", models.CellRange{C1: from.Col, R1: from.Row, C2: to.Col, R2: to.Row}.String())
	}
}

// deleteBand deletes items of kinds lying inside [lo, hi) along axis.
func (e *Engine) deleteBand(axis models.Axis, lo, hi int, kinds ...surface.Kind) {
	if hi <= lo {
		return
	}
	e.surf.Delete(e.surf.Find(models.Band(axis, lo, hi, -far, far), surface.Enclosed, kinds...)...)
}

// moveBand shifts items of kinds lying at or after lo along axis.
func (e *Engine) moveBand(axis models.Axis, lo, delta int, kinds ...surface.Kind) {
	if delta == 0 {
		return
	}
	d := models.Point{}.WithOn(axis, delta)
	for _, id := range e.surf.Find(models.Band(axis, lo, far, -far, far), surface.Enclosed, kinds...) {
		e.surf.Move(id, d.X, d.Y)
	}
}

// refit recomputes the last visible cell, invalidates content exposed
// past the previous extent and deletes items past the new one.
func (e *Engine) refit() {
	e.panes.Fit(e.size)
	next := e.panes.Extent()
	for _, axis := range axes {
		cur, nxt := e.extent.On(axis), next.On(axis)
		switch {
		case nxt > cur:
			e.invalidate(models.Band(axis, cur, nxt, -far, far))
		case nxt < cur:
			e.deleteBand(axis, nxt, far, surface.ContentKinds...)
		}
		last := e.panes.Main.Last.Index(axis)
		invariant(nxt >= e.size.On(axis) || last == e.store(axis).Limit(),
			"viewport covers surface", "%s extent %d short of %d at heading %d", axis, nxt, e.size.On(axis), last)
	}
	e.extent = next
}

// rebuild deletes every content item and redraws the viewport.
func (e *Engine) rebuild() {
	e.surf.Delete(e.surf.All(surface.ContentKinds...)...)
	e.extent = e.panes.Frozen.Pixel
	e.refit()
}

// flush runs the redraw pass and refreshes the overlays.
func (e *Engine) flush() {
	e.redraw()
	e.syncDrawnAreas()
	e.drawFreezeLines()
	e.drawSelection()
	if len(e.report) > 0 {
		msg := strings.Join(e.report, " ")
		e.report = nil
		e.log.Debug("error report", "text", msg)
		if e.opts.Events.ErrorReport != nil {
			e.opts.Events.ErrorReport(msg)
		}
	}
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() models.Snapshot {
	counts := make(map[string]int)
	for _, id := range e.surf.All() {
		if it, ok := e.surf.Item(id); ok {
			counts[it.Kind.String()]++
		}
	}
	return models.Snapshot{
		Surface:   e.size,
		Viewport:  e.panes.Main,
		Frozen:    e.panes.Frozen,
		State:     e.state,
		Active:    e.sel.Active(),
		Selection: e.sel.Selection(),
		Cols:      e.cols.Layout(),
		Rows:      e.rows.Layout(),
		Items:     counts,
	}
}
