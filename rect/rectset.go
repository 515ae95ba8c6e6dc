package rect

// Set is a union of rectangles maintained in a canonical
// non-overlapping form: Add/Subtract always leave the set's own
// rectangles disjoint, which is what makes Contains and Rects correct
// and keeps damage accumulation idempotent.
type Set struct {
	rects []Rect
}

// NewSet returns an empty rectangle set.
func NewSet() *Set {
	return &Set{}
}

// Clear empties the set.
func (s *Set) Clear() {
	s.rects = s.rects[:0]
}

// Add unions r into the set. Portions of r already covered by the set
// are not duplicated.
func (s *Set) Add(r Rect) {
	if r.Empty() {
		return
	}

	pieces := []Rect{r}
	for _, existing := range s.rects {
		var next []Rect
		var buf [4]Rect
		for _, p := range pieces {
			n := Subtract(buf[:], p, existing)
			next = append(next, buf[:n]...)
		}
		pieces = next
		if len(pieces) == 0 {
			break
		}
	}

	s.rects = append(s.rects, pieces...)
}

// Subtract removes r from every rectangle currently in the set.
func (s *Set) Subtract(r Rect) {
	if r.Empty() || len(s.rects) == 0 {
		return
	}

	var result []Rect
	var buf [4]Rect
	for _, existing := range s.rects {
		n := Subtract(buf[:], existing, r)
		result = append(result, buf[:n]...)
	}
	s.rects = result
}

// Translate shifts every rectangle in the set by (dy, dx).
func (s *Set) Translate(dy, dx int) {
	for i := range s.rects {
		s.rects[i] = s.rects[i].Translate(dy, dx)
	}
}

// Contains reports whether the set's union fully covers r.
func (s *Set) Contains(r Rect) bool {
	remaining := []Rect{r}
	var buf [4]Rect
	for _, existing := range s.rects {
		var next []Rect
		for _, p := range remaining {
			n := Subtract(buf[:], p, existing)
			next = append(next, buf[:n]...)
		}
		remaining = next
		if len(remaining) == 0 {
			return true
		}
	}
	return len(remaining) == 0
}

// Rects returns the number of constituent rectangles in the set.
func (s *Set) Rects() int {
	return len(s.rects)
}

// GetRects copies the set's constituent rectangles into out, up to n
// entries, and returns the slice actually written.
func (s *Set) GetRects(out []Rect, n int) []Rect {
	if n > len(s.rects) {
		n = len(s.rects)
	}
	return append(out[:0], s.rects[:n]...)
}

// All returns the set's constituent rectangles. The caller must not
// mutate the returned slice.
func (s *Set) All() []Rect {
	return s.rects
}
