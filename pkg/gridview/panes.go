package gridview

import (
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
	"github.com/ukaji3/gridview-go/pkg/gridview/surface"
)

// ToggleFreezePanes freezes the headings between the viewport origin and
// the active cell, or unfreezes them. An axis freezes only when the active
// cell lies past the origin and inside the viewport on it; when neither
// axis qualifies nothing happens.
func (e *Engine) ToggleFreezePanes() {
	if e.panes.IsFrozen() {
		e.unfreeze()
	} else {
		e.freeze()
	}
	e.flush()
}

func (e *Engine) freeze() {
	a := e.sel.Active()
	p := e.panes
	frozen := false
	for _, axis := range axes {
		idx := a.Index(axis)
		origin := p.Main.Origin.Index(axis)
		if idx <= origin || idx > p.Main.Last.Index(axis) {
			continue
		}
		p.Frozen.Start = p.Frozen.Start.WithIndex(axis, origin)
		p.Frozen.End = p.Frozen.End.WithIndex(axis, idx)
		p.Main.Origin = p.Main.Origin.WithIndex(axis, idx)
		frozen = true
	}
	if !frozen {
		e.log.Debug("freeze ignored", "active", a, "origin", p.Main.Origin)
		return
	}
	p.SyncDivider()
	e.relabelFrozen()
	e.state.Freeze = true
	e.log.Debug("panes frozen", "start", p.Frozen.Start, "end", p.Frozen.End)
}

func (e *Engine) unfreeze() {
	p := e.panes
	for _, axis := range axes {
		if p.Frozen.Frozen(axis) {
			e.scrollTo(axis, p.Frozen.End.Index(axis))
		}
	}
	// cells keep their position, only the frozen bands change quadrant
	e.relabelFrozen()
	for _, axis := range axes {
		if p.Frozen.Frozen(axis) {
			p.Main.Origin = p.Main.Origin.WithIndex(axis, p.Frozen.Start.Index(axis))
		}
	}
	home := models.CellAddress{Col: 1, Row: 1}
	p.Frozen.Start, p.Frozen.End = home, home
	p.SyncDivider()
	e.state.Freeze = false
	e.refit()
	e.log.Debug("panes unfrozen", "origin", p.Main.Origin)
}

// relabelFrozen deletes and invalidates the cells between the content
// origin and the divider, whose quadrant changes on a freeze toggle.
func (e *Engine) relabelFrozen() {
	c, d := e.panes.Frozen.Pixel, e.panes.Main.Pixel
	bands := []models.Rect{
		{X0: c.X, Y0: c.Y, X1: d.X, Y1: far},
		{X0: c.X, Y0: c.Y, X1: far, Y1: d.Y},
	}
	for _, r := range bands {
		if r.Empty() {
			continue
		}
		e.surf.Delete(e.surf.Find(r, surface.Enclosed, surface.KindCell)...)
		e.invalidate(r)
	}
}

// ToggleHeadings shows or hides the heading strips. Hidden headings are
// moved off the surface rather than deleted.
func (e *Engine) ToggleHeadings() {
	d := e.headingSize()
	if e.state.Headings {
		d = models.Point{X: -d.X, Y: -d.Y}
	}
	e.state.Headings = !e.state.Headings
	kinds := append([]surface.Kind{surface.KindCorner}, surface.ContentKinds...)
	for _, id := range e.surf.All(kinds...) {
		e.surf.Move(id, d.X, d.Y)
	}
	e.panes.Frozen.Pixel = e.panes.Frozen.Pixel.Add(d)
	e.panes.Main.Pixel = e.panes.Main.Pixel.Add(d)
	e.extent = e.extent.Add(d)
	e.refit()
	e.flush()
}

// ToggleGridlines switches gridline rendering.
func (e *Engine) ToggleGridlines() {
	e.state.Gridlines = !e.state.Gridlines
	e.flush()
}

// ToggleAreasDrawn shows or hides the regions drawn by the last redraw
// pass.
func (e *Engine) ToggleAreasDrawn() {
	e.state.AreasDrawn = !e.state.AreasDrawn
	for _, id := range e.surf.All(surface.KindDrawnArea) {
		e.surf.SetHidden(id, !e.state.AreasDrawn)
	}
	e.flush()
}

// LoadLayout replaces the heading sizes with l and freezes panes at its
// split. The selection returns to the first scrollable cell.
func (e *Engine) LoadLayout(l models.SheetLayout) {
	e.cols.Load(l.Cols)
	e.rows.Load(l.Rows)
	p := e.panes
	p.Reset(e.contentOrigin())
	if l.Freeze != nil {
		fr := e.sel.Clamp(*l.Freeze)
		for _, axis := range axes {
			if idx := fr.Index(axis); idx > 1 {
				p.Frozen.End = p.Frozen.End.WithIndex(axis, idx)
				p.Main.Origin = p.Main.Origin.WithIndex(axis, idx)
			}
		}
	}
	if l.TopLeft != nil {
		tl := e.sel.Clamp(*l.TopLeft)
		for _, axis := range axes {
			origin := max(p.MinOrigin(axis), tl.Index(axis))
			p.Main.Origin = p.Main.Origin.WithIndex(axis, origin)
		}
	}
	p.SyncDivider()
	e.state.Freeze = p.IsFrozen()
	e.log.Debug("layout loaded", "sheet", l.Name, "frozen", e.state.Freeze, "origin", p.Main.Origin)
	e.rebuild()
	e.sel.Set(p.Main.Origin, models.SingleCell(p.Main.Origin))
	e.flush()
}
