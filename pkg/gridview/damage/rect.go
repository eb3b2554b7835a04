package damage

import "github.com/ukaji3/gridview-go/pkg/gridview/models"

// Subtract returns a \ b as up to four disjoint rectangles: the slivers
// left and right of the overlap span the full height of a, the slivers
// above and below are limited to the overlap's columns.
func Subtract(a, b models.Rect) []models.Rect {
	if a.Empty() {
		return nil
	}
	in := a.Intersect(b)
	if in.Empty() {
		return []models.Rect{a}
	}
	var out []models.Rect
	if a.X0 < in.X0 {
		out = append(out, models.Rect{X0: a.X0, Y0: a.Y0, X1: in.X0, Y1: a.Y1})
	}
	if in.X1 < a.X1 {
		out = append(out, models.Rect{X0: in.X1, Y0: a.Y0, X1: a.X1, Y1: a.Y1})
	}
	if a.Y0 < in.Y0 {
		out = append(out, models.Rect{X0: in.X0, Y0: a.Y0, X1: in.X1, Y1: in.Y0})
	}
	if in.Y1 < a.Y1 {
		out = append(out, models.Rect{X0: in.X0, Y0: in.Y1, X1: in.X1, Y1: a.Y1})
	}
	return out
}

// SubtractAll removes every rectangle in bs from a.
func SubtractAll(a models.Rect, bs []models.Rect) []models.Rect {
	pieces := []models.Rect{a}
	for _, b := range bs {
		var next []models.Rect
		for _, p := range pieces {
			next = append(next, Subtract(p, b)...)
		}
		pieces = next
		if len(pieces) == 0 {
			break
		}
	}
	return pieces
}
