// Package damage tracks stale ("invalid") and already rendered ("drawn")
// surface regions and turns them into minimal redraw plans.
package damage

import "github.com/ukaji3/gridview-go/pkg/gridview/models"

// Kind classifies a redraw piece.
type Kind int

const (
	// ColHeadings pieces lie in the column heading strip.
	ColHeadings Kind = iota
	// RowHeadings pieces lie in the row heading strip.
	RowHeadings
	// Cells pieces lie in the content area.
	Cells

	numKinds
)

func (k Kind) String() string {
	switch k {
	case ColHeadings:
		return "cols"
	case RowHeadings:
		return "rows"
	default:
		return "cells"
	}
}

// Plan lists the regions a redraw pass must render, per kind. Pieces never
// overlap each other or anything drawn earlier in the same batch.
type Plan struct {
	ColHeadings []models.Rect
	RowHeadings []models.Rect
	Cells       []models.Rect
}

// Empty reports whether the plan has nothing to draw.
func (p Plan) Empty() bool {
	return len(p.ColHeadings) == 0 && len(p.RowHeadings) == 0 && len(p.Cells) == 0
}

// Tracker holds the invalid and drawn rectangle sets.
//
// Invalid rectangles are never merged; overlaps are resolved by Validate.
// The first invalidation after a Validate starts a new batch and forgets
// the previous batch's drawn rectangles.
type Tracker struct {
	invalid []models.Rect
	drawn   [numKinds][]models.Rect
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{}
}

// Invalidate marks r as needing a redraw. Empty rectangles are ignored.
func (t *Tracker) Invalidate(r models.Rect) {
	if r.Empty() {
		return
	}
	if len(t.invalid) == 0 {
		t.ClearDrawn()
	}
	t.invalid = append(t.invalid, r)
}

// ClearDrawn forgets every drawn rectangle.
func (t *Tracker) ClearDrawn() {
	for k := range t.drawn {
		t.drawn[k] = nil
	}
}

// Reset drops all invalid and drawn rectangles.
func (t *Tracker) Reset() {
	t.invalid = nil
	t.ClearDrawn()
}

// Pending reports whether any region awaits a redraw.
func (t *Tracker) Pending() bool {
	return len(t.invalid) > 0
}

// Invalid returns a copy of the pending rectangles.
func (t *Tracker) Invalid() []models.Rect {
	return append([]models.Rect(nil), t.invalid...)
}

// Drawn returns a copy of the drawn rectangles of kind k.
func (t *Tracker) Drawn(k Kind) []models.Rect {
	return append([]models.Rect(nil), t.drawn[k]...)
}

// AllDrawn returns every drawn rectangle.
func (t *Tracker) AllDrawn() []models.Rect {
	var out []models.Rect
	for k := range t.drawn {
		out = append(out, t.drawn[k]...)
	}
	return out
}

// Validate consumes the invalid set. Each rectangle is clipped to clip,
// the parts left of content.X and above content.Y are split off into row
// and column heading pieces, and every piece has the already drawn
// regions of its kind subtracted. The resulting pieces are recorded as
// drawn and returned.
func (t *Tracker) Validate(clip models.Rect, content models.Point) Plan {
	var plan Plan
	for _, r := range t.invalid {
		r = r.Intersect(clip)
		if r.Empty() {
			continue
		}
		if r.X0 < content.X {
			plan.RowHeadings = append(plan.RowHeadings,
				t.take(RowHeadings, models.Rect{X0: r.X0, Y0: r.Y0, X1: min(r.X1, content.X), Y1: r.Y1})...)
			r.X0 = content.X
			if r.Empty() {
				continue
			}
		}
		if r.Y0 < content.Y {
			plan.ColHeadings = append(plan.ColHeadings,
				t.take(ColHeadings, models.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: min(r.Y1, content.Y)})...)
			r.Y0 = content.Y
			if r.Empty() {
				continue
			}
		}
		plan.Cells = append(plan.Cells, t.take(Cells, r)...)
	}
	t.invalid = nil
	return plan
}

func (t *Tracker) take(k Kind, r models.Rect) []models.Rect {
	pieces := SubtractAll(r, t.drawn[k])
	t.drawn[k] = append(t.drawn[k], pieces...)
	return pieces
}
