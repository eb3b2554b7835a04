// Package dims stores per-heading sizes for one grid axis.
package dims

import (
	"maps"

	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// Store maps heading indices of one axis to pixel sizes.
//
// A heading is in one of three states: default (no entry), custom (an
// entry in sizes) or hidden (an entry in hidden holding the size it had
// when it was hidden). The two maps never share a key.
type Store struct {
	def    int
	limit  int
	sizes  map[int]int
	hidden map[int]int
}

// New creates a store for headings 1..limit with the given default size.
func New(def, limit int) *Store {
	return &Store{
		def:    def,
		limit:  limit,
		sizes:  make(map[int]int),
		hidden: make(map[int]int),
	}
}

// Default returns the size of a heading with no entry.
func (s *Store) Default() int {
	return s.def
}

// Limit returns the highest addressable heading index.
func (s *Store) Limit() int {
	return s.limit
}

// Clamp bounds i to [1, Limit()].
func (s *Store) Clamp(i int) int {
	return max(1, min(s.limit, i))
}

// Size returns the rendered size of heading i; hidden headings are 0.
func (s *Store) Size(i int) int {
	if _, ok := s.hidden[i]; ok {
		return 0
	}
	if v, ok := s.sizes[i]; ok {
		return v
	}
	return s.def
}

// Hidden reports whether heading i is hidden.
func (s *Store) Hidden(i int) bool {
	_, ok := s.hidden[i]
	return ok
}

// Span returns the rendered length of headings [i0, i1). When i1 < i0 the
// result is the negated length of [i1, i0).
func (s *Store) Span(i0, i1 int) int {
	if i1 < i0 {
		return -s.Span(i1, i0)
	}
	total := (i1 - i0) * s.def
	for k, v := range s.sizes {
		if k >= i0 && k < i1 {
			total += v - s.def
		}
	}
	for k := range s.hidden {
		if k >= i0 && k < i1 {
			total -= s.def
		}
	}
	return total
}

// Total returns the rendered length of every addressable heading.
func (s *Store) Total() int {
	return s.Span(1, s.limit+1)
}

// SetSize sets headings i0..i1 (inclusive) to size and returns the change
// in rendered length. A zero size hides the headings, a negative size
// unhides them.
func (s *Store) SetSize(i0, i1, size int) int {
	switch {
	case size == 0:
		return s.Hide(i0, i1)
	case size < 0:
		return s.Unhide(i0, i1)
	}
	delta := 0
	for i := i0; i <= i1; i++ {
		before := s.Size(i)
		delete(s.hidden, i)
		if size == s.def {
			delete(s.sizes, i)
		} else {
			s.sizes[i] = size
		}
		delta += size - before
	}
	return delta
}

// Hide hides headings i0..i1, remembering their current sizes, and returns
// the (non-positive) change in rendered length. Headings already hidden
// keep their recorded size.
func (s *Store) Hide(i0, i1 int) int {
	delta := 0
	for i := i0; i <= i1; i++ {
		if s.Hidden(i) {
			continue
		}
		before := s.Size(i)
		s.hidden[i] = before
		delete(s.sizes, i)
		delta -= before
	}
	return delta
}

// Unhide restores hidden headings in i0..i1 to their recorded sizes and
// returns the (non-negative) change in rendered length. Visible headings
// are left untouched.
func (s *Store) Unhide(i0, i1 int) int {
	delta := 0
	for i := i0; i <= i1; i++ {
		v, ok := s.hidden[i]
		if !ok {
			continue
		}
		delete(s.hidden, i)
		if v != s.def {
			s.sizes[i] = v
		}
		delta += v
	}
	return delta
}

// Insert adds n default-sized headings before i0, shifting every entry at
// or above i0 up by n, and returns the change in rendered length.
func (s *Store) Insert(i0, n int) int {
	if n <= 0 {
		return 0
	}
	s.sizes = shift(s.sizes, func(k int) (int, bool) {
		if k >= i0 {
			return k + n, true
		}
		return k, true
	})
	s.hidden = shift(s.hidden, func(k int) (int, bool) {
		if k >= i0 {
			return k + n, true
		}
		return k, true
	})
	return n * s.def
}

// Delete removes headings i0..i1, shifting every entry above i1 down, and
// returns the change in rendered length.
func (s *Store) Delete(i0, i1 int) int {
	if i1 < i0 {
		return 0
	}
	delta := -s.Span(i0, i1+1)
	n := i1 - i0 + 1
	remap := func(k int) (int, bool) {
		switch {
		case k < i0:
			return k, true
		case k <= i1:
			return 0, false
		default:
			return k - n, true
		}
	}
	s.sizes = shift(s.sizes, remap)
	s.hidden = shift(s.hidden, remap)
	return delta
}

// Step moves from heading i by delta visible headings, skipping hidden
// ones. The result is not clamped.
func (s *Store) Step(i, delta int) int {
	for delta != 0 {
		next := i + delta
		lo, hi := i+1, next
		if delta < 0 {
			lo, hi = next, i-1
		}
		skipped := 0
		for k := range s.hidden {
			if k >= lo && k <= hi {
				skipped++
			}
		}
		if delta < 0 {
			skipped = -skipped
		}
		i, delta = next, skipped
	}
	return i
}

// Layout returns a copy of the store contents.
func (s *Store) Layout() models.AxisLayout {
	out := models.AxisLayout{Default: s.def}
	if len(s.sizes) > 0 {
		out.Sizes = maps.Clone(s.sizes)
	}
	if len(s.hidden) > 0 {
		out.Hidden = maps.Clone(s.hidden)
	}
	return out
}

// Load replaces the store contents with l. Hidden entries win over sizes
// for the same index; sizes equal to the default are dropped.
func (s *Store) Load(l models.AxisLayout) {
	s.sizes = make(map[int]int)
	s.hidden = make(map[int]int)
	for k, v := range l.Sizes {
		if v > 0 && v != s.def {
			s.sizes[k] = v
		}
	}
	for k, v := range l.Hidden {
		if v <= 0 {
			v = s.def
		}
		delete(s.sizes, k)
		s.hidden[k] = v
	}
}

func shift(m map[int]int, remap func(int) (int, bool)) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		if nk, ok := remap(k); ok {
			out[nk] = v
		}
	}
	return out
}
