package selection

import "github.com/ukaji3/gridview-go/pkg/gridview/models"

// Pivot is an open selection mutation. Callers move X and Y, then Commit.
type Pivot struct {
	X, Y int

	m        *Model
	isActive bool
	up       Up
	anchorX  bool
	anchorY  bool
	done     bool
}

// Begin opens a pivot. With isActive the pivot starts at the active cell
// and Commit moves the active cell there. Otherwise it starts at the
// selection corner opposite the active cell (on axes where the active cell
// sits on an edge) or at the edge chosen by up, and Commit stretches the
// selection to it.
func (m *Model) Begin(isActive bool, up Up) *Pivot {
	p := &Pivot{X: m.active.Col, Y: m.active.Row, m: m, isActive: isActive, up: up}
	if isActive {
		return p
	}
	p.anchorX = anchored(m.sel.C1, m.sel.C2, m.active.Col)
	if p.anchorX {
		p.X = m.sel.C1 + m.sel.C2 - m.active.Col
	} else if up&UpCols != 0 {
		p.X = m.sel.C1
	} else {
		p.X = m.sel.C2
	}
	p.anchorY = anchored(m.sel.R1, m.sel.R2, m.active.Row)
	if p.anchorY {
		p.Y = m.sel.R1 + m.sel.R2 - m.active.Row
	} else if up&UpRows != 0 {
		p.Y = m.sel.R1
	} else {
		p.Y = m.sel.R2
	}
	return p
}

// Commit applies the pivot and emits exactly one notification. Later
// calls do nothing.
func (p *Pivot) Commit() {
	if p.done {
		return
	}
	p.done = true
	m := p.m
	pt := m.Clamp(models.CellAddress{Col: p.X, Row: p.Y})
	if p.isActive {
		m.active = pt
		m.sel = models.SingleCell(pt)
		if m.OnActiveCell != nil {
			m.OnActiveCell(m.active)
		}
		return
	}
	m.sel.C1, m.sel.C2 = stretch(m.sel.C1, m.sel.C2, m.active.Col, pt.Col, p.anchorX, p.up&UpCols != 0)
	m.sel.R1, m.sel.R2 = stretch(m.sel.R1, m.sel.R2, m.active.Row, pt.Row, p.anchorY, p.up&UpRows != 0)
	m.notifySelection()
}

// With runs fn on a new pivot and commits it on every exit path,
// including a panic inside fn.
func (m *Model) With(isActive bool, up Up, fn func(p *Pivot)) {
	p := m.Begin(isActive, up)
	defer p.Commit()
	fn(p)
}

// anchored reports whether the active index lies on an edge of [lo, hi]
// (or the range is a single index).
func anchored(lo, hi, a int) bool {
	n := 0
	if lo != a {
		n++
	}
	if hi != a && hi != lo {
		n++
	}
	return n <= 1
}

func stretch(lo, hi, a, pivot int, anchor, up bool) (int, int) {
	switch {
	case anchor:
		return min(a, pivot), max(a, pivot)
	case up:
		return min(a, pivot), hi
	default:
		return lo, max(a, pivot)
	}
}
