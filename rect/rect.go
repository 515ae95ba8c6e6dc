// Package rect provides the rectangle and rectangle-set algebra the
// window tree uses for geometry, damage tracking and scrolling.
package rect

// Rect is an axis-aligned rectangle in some coordinate frame, given
// as a top-left corner and a size in whole cells.
type Rect struct {
	Top, Left   int
	Lines, Cols int
}

// New constructs a Rect from a top-left corner and size.
func New(top, left, lines, cols int) Rect {
	return Rect{Top: top, Left: left, Lines: lines, Cols: cols}
}

// Bottom returns the row just past the rectangle's last row.
func (r Rect) Bottom() int { return r.Top + r.Lines }

// Right returns the column just past the rectangle's last column.
func (r Rect) Right() int { return r.Left + r.Cols }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Lines <= 0 || r.Cols <= 0 }

// Translate shifts the rectangle by (dy, dx).
func (r Rect) Translate(dy, dx int) Rect {
	r.Top += dy
	r.Left += dx
	return r
}

// Contains reports whether r fully covers other.
func (r Rect) Contains(other Rect) bool {
	return other.Top >= r.Top && other.Left >= r.Left &&
		other.Bottom() <= r.Bottom() && other.Right() <= r.Right()
}

// Intersect returns the overlapping region of a and b, and whether
// that region is non-empty.
func Intersect(a, b Rect) (Rect, bool) {
	top := max(a.Top, b.Top)
	left := max(a.Left, b.Left)
	bottom := min(a.Bottom(), b.Bottom())
	right := min(a.Right(), b.Right())

	if bottom <= top || right <= left {
		return Rect{}, false
	}
	return Rect{Top: top, Left: left, Lines: bottom - top, Cols: right - left}, true
}

// Subtract removes b from a, writing up to four non-overlapping
// rectangles that cover what remains of a into out starting at
// out[0] (out must have room for four), and returns the number
// written. If a and b do not overlap, a itself is written unchanged.
func Subtract(out []Rect, a, b Rect) int {
	overlap, ok := Intersect(a, b)
	if !ok {
		return copy(out, []Rect{a})
	}

	n := 0
	// Strip above the overlap.
	if overlap.Top > a.Top {
		out[n] = Rect{Top: a.Top, Left: a.Left, Lines: overlap.Top - a.Top, Cols: a.Cols}
		n++
	}
	// Strip below the overlap.
	if overlap.Bottom() < a.Bottom() {
		out[n] = Rect{Top: overlap.Bottom(), Left: a.Left, Lines: a.Bottom() - overlap.Bottom(), Cols: a.Cols}
		n++
	}
	// Strip left of the overlap, bounded to the overlap's rows.
	if overlap.Left > a.Left {
		out[n] = Rect{Top: overlap.Top, Left: a.Left, Lines: overlap.Lines, Cols: overlap.Left - a.Left}
		n++
	}
	// Strip right of the overlap, bounded to the overlap's rows.
	if overlap.Right() < a.Right() {
		out[n] = Rect{Top: overlap.Top, Left: overlap.Right(), Lines: overlap.Lines, Cols: a.Right() - overlap.Right()}
		n++
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
