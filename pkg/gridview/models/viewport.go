package models

// Quadrant identifies one of the four independently scrolled regions.
type Quadrant int

const (
	// QuadrantMain scrolls on both axes.
	QuadrantMain Quadrant = 1
	// QuadrantFrozenRows shows the frozen rows and scrolls horizontally.
	QuadrantFrozenRows Quadrant = 2
	// QuadrantCorner is the fully frozen top-left block.
	QuadrantCorner Quadrant = 3
	// QuadrantFrozenCols shows the frozen columns and scrolls vertically.
	QuadrantFrozenCols Quadrant = 4
)

// QuadrantOf returns the quadrant for the given frozen-ness of each axis.
func QuadrantOf(colFrozen, rowFrozen bool) Quadrant {
	switch {
	case colFrozen && rowFrozen:
		return QuadrantCorner
	case rowFrozen:
		return QuadrantFrozenRows
	case colFrozen:
		return QuadrantFrozenCols
	default:
		return QuadrantMain
	}
}

// Viewport is the scrollable region: its origin cell, the last cell that
// intersects the drawing surface, and the pixel where the origin is drawn.
type Viewport struct {
	// Origin is the top-left scrollable cell.
	Origin CellAddress `json:"origin"`
	// Last is the bottom-right cell intersecting the surface.
	Last CellAddress `json:"last"`
	// Pixel is the surface position of Origin's top-left corner.
	Pixel Point `json:"pixel"`
}

// FrozenPane describes the frozen top-left block. Columns [Start.Col,
// End.Col) and rows [Start.Row, End.Row) are frozen, drawn from Pixel.
// An axis with Start == End is not frozen; End is also the lowest
// origin the scrollable viewport may reach on that axis.
type FrozenPane struct {
	// Start is the first frozen cell.
	Start CellAddress `json:"start"`
	// End is one past the last frozen cell on each axis.
	End CellAddress `json:"end"`
	// Pixel is the content origin (below and right of the heading strips).
	Pixel Point `json:"pixel"`
}

// Frozen reports whether any heading is frozen along axis.
func (p FrozenPane) Frozen(axis Axis) bool {
	return p.End.Index(axis) > p.Start.Index(axis)
}

// PaneState holds the display toggles.
type PaneState struct {
	Freeze     bool `json:"freeze"`
	Gridlines  bool `json:"gridlines"`
	Headings   bool `json:"headings"`
	AreasDrawn bool `json:"areas_drawn"`
}
