package window

import (
	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
)

// Scroll shifts the window's whole area by (downward, rightward) rows
// and columns, masking out any visible children first so their own
// content is left undisturbed by the raw terminal scroll. It reports
// whether the terminal honoured every piece of the scroll; a refusal
// already triggers a re-expose of the affected area, so callers can
// usually ignore the result.
func (w *Window) Scroll(downward, rightward int) bool {
	return w.scroll(rect.New(0, 0, w.rect.Lines, w.rect.Cols), downward, rightward, nil, true)
}

// ScrollWithChildren is Scroll but does not mask children out of the
// scrolled region: their content visually moves along with the rest
// of the window's background, for the (rarer) case where a window's
// children are meant to track its own scroll position rather than
// stay pinned to the screen.
func (w *Window) ScrollWithChildren(downward, rightward int) bool {
	return w.scroll(rect.New(0, 0, w.rect.Lines, w.rect.Cols), downward, rightward, nil, false)
}

// ScrollRect is Scroll restricted to a sub-rectangle r of the window,
// in local coordinates, still masking children. p, if non-nil,
// supplies the background pen the terminal fills uncovered cells
// with; the pens of the window and its ancestors fill in whatever p
// leaves unset.
func (w *Window) ScrollRect(r rect.Rect, downward, rightward int, p *pen.Pen) bool {
	return w.scroll(r, downward, rightward, p, true)
}

func (w *Window) scroll(origRect rect.Rect, downward, rightward int, p *pen.Pen, maskChildren bool) bool {
	self := rect.New(0, 0, w.rect.Lines, w.rect.Cols)
	r, ok := rect.Intersect(self, origRect)
	if !ok {
		return false
	}

	visible := rect.NewSet()
	visible.Add(r)

	if maskChildren {
		for c := w.firstChild; c != nil; c = c.next {
			if c.flags&flagVisible == 0 {
				continue
			}
			visible.Subtract(c.rect)
		}
	}

	return w.scrollRectSet(visible, downward, rightward, p)
}

// scrollRectSet walks from w up to the root, translating the visible
// set into root coordinates, subtracting every in-front sibling at
// each level and folding each level's pen into the working pen
// (nearest ancestor wins). The surviving pieces are then individually
// handed to the terminal; each piece either scrolls (exposing the
// uncovered edge strip) or falls back to a plain expose of itself.
func (w *Window) scrollRectSet(visible *rect.Set, downward, rightward int, p *pen.Pen) bool {
	orig := w
	absTop, absLeft := 0, 0
	workPen := p

	win := w
	for {
		if win.flags&flagVisible == 0 {
			return false
		}

		workPen = pen.Copy(workPen, win.pen, true)

		parent := win.parent
		if parent == nil {
			break
		}

		absTop += win.rect.Top
		absLeft += win.rect.Left
		visible.Translate(win.rect.Top, win.rect.Left)

		for sib := parent.firstChild; sib != nil && sib != win; sib = sib.next {
			if sib.flags&flagVisible == 0 {
				continue
			}
			visible.Subtract(sib.rect)
		}

		win = parent
	}

	// The loop left win at the top of the tree, which is the window
	// embedded in the owning Root.
	root := win.root
	if root == nil {
		return false
	}

	pieces := append([]rect.Rect(nil), visible.All()...)

	result := true
	donePen := false
	for _, piece := range pieces {
		origPiece := piece.Translate(-absTop, -absLeft)

		if abs(downward) >= piece.Lines || abs(rightward) >= piece.Cols {
			// The shift would move every cell of this piece out of
			// itself; hardware scrolling gains nothing.
			orig.Expose(origPiece)
			result = false
			continue
		}

		root.rewriteDamageForScroll(piece, downward, rightward)

		root.trace(0, "term scrollrect %v by %+d,%+d", piece, downward, rightward)

		if !donePen {
			root.term.SetPen(workPen)
			donePen = true
		}

		if root.term.ScrollRect(piece, downward, rightward) {
			if downward > 0 {
				// Lines moved upward; the bottom strip needs redrawing.
				orig.Expose(rect.New(origPiece.Top+origPiece.Lines-downward, origPiece.Left, downward, piece.Cols))
			} else if downward < 0 {
				orig.Expose(rect.New(origPiece.Top, origPiece.Left, -downward, piece.Cols))
			}

			if rightward > 0 {
				// Columns moved leftward; the right strip needs redrawing.
				orig.Expose(rect.New(origPiece.Top, origPiece.Left+origPiece.Cols-rightward, piece.Lines, rightward))
			} else if rightward < 0 {
				orig.Expose(rect.New(origPiece.Top, origPiece.Left, piece.Lines, -rightward))
			}
		} else {
			orig.Expose(origPiece)
			result = false
		}
	}

	return result
}

// rewriteDamageForScroll keeps pending damage consistent with content
// the terminal is about to physically move: damage outside scrollRect
// is untouched, damage inside it travels with the content (clipped
// back to scrollRect so nothing escapes the scrolled region).
func (root *Root) rewriteDamageForScroll(scrollRect rect.Rect, downward, rightward int) {
	old := append([]rect.Rect(nil), root.damage.All()...)
	root.damage.Clear()

	var buf [4]rect.Rect
	for _, d := range old {
		overlap, ok := rect.Intersect(d, scrollRect)
		if !ok {
			root.damage.Add(d)
			continue
		}

		n := rect.Subtract(buf[:], d, scrollRect)
		for _, outside := range buf[:n] {
			root.damage.Add(outside)
		}

		if inside, ok := rect.Intersect(overlap.Translate(-downward, -rightward), scrollRect); ok {
			root.damage.Add(inside)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
