package models

// Axis selects one of the two grid dimensions.
type Axis int

const (
	// AxisCols is the horizontal axis (columns, x pixels).
	AxisCols Axis = iota
	// AxisRows is the vertical axis (rows, y pixels).
	AxisRows
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	return 1 - a
}

func (a Axis) String() string {
	if a == AxisCols {
		return "cols"
	}
	return "rows"
}

// Point is a pixel position on the drawing surface.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// On returns the coordinate of p along axis.
func (p Point) On(axis Axis) int {
	if axis == AxisCols {
		return p.X
	}
	return p.Y
}

// WithOn returns a copy of p with the coordinate along axis replaced.
func (p Point) WithOn(axis Axis, v int) Point {
	if axis == AxisCols {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is a half-open pixel rectangle [X0, X1) x [Y0, Y1).
type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Band returns the rectangle spanning [lo, hi) along axis and [olo, ohi)
// along the other axis.
func Band(axis Axis, lo, hi, olo, ohi int) Rect {
	if axis == AxisCols {
		return Rect{X0: lo, Y0: olo, X1: hi, Y1: ohi}
	}
	return Rect{X0: olo, Y0: lo, X1: ohi, Y1: hi}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Width returns the horizontal extent of r.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the vertical extent of r.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Span returns the [lo, hi) interval of r along axis.
func (r Rect) Span(axis Axis) (int, int) {
	if axis == AxisCols {
		return r.X0, r.X1
	}
	return r.Y0, r.Y1
}

// Intersect returns the overlap of r and s, which may be empty.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		X0: max(r.X0, s.X0),
		Y0: max(r.Y0, s.Y0),
		X1: min(r.X1, s.X1),
		Y1: min(r.Y1, s.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Overlaps reports whether r and s share at least one pixel.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Intersect(s).Empty()
}

// Encloses reports whether s lies entirely inside r.
func (r Rect) Encloses(s Rect) bool {
	return s.X0 >= r.X0 && s.X1 <= r.X1 && s.Y0 >= r.Y0 && s.Y1 <= r.Y1
}

// Contains reports whether the pixel p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}
