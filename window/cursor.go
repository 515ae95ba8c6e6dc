package window

// SetCursorPosition records where this window wants the terminal
// cursor drawn, in its own local coordinates. If the window holds
// focus the root re-places the cursor on the next Flush.
func (w *Window) SetCursorPosition(line, col int) {
	w.cursor.line = line
	w.cursor.col = col

	if w.isFocused {
		w.findRoot().requestRestore()
	}
}

// SetCursorVisibility controls whether this window wants the cursor
// drawn at all when it holds focus.
func (w *Window) SetCursorVisibility(visible bool) {
	w.cursor.visible = visible

	if w.isFocused {
		w.findRoot().requestRestore()
	}
}

// SetCursorShape controls which glyph the terminal cursor takes when
// this window holds focus.
func (w *Window) SetCursorShape(shape CursorShape) {
	w.cursor.shape = shape

	if w.isFocused {
		w.findRoot().requestRestore()
	}
}

// doRestore walks the focused_child chain from the root down to the
// window that actually wants the cursor, stopping early at the first
// invisible step. The cursor is shown only if that window holds
// focus, wants a visible cursor, and the cursor's cell is not
// occluded anywhere up the ancestor chain; otherwise the terminal
// cursor is hidden. Either way the terminal is flushed.
func (root *Root) doRestore() {
	win := &root.Window
	for win != nil {
		if win.flags&flagVisible == 0 {
			break
		}
		if win.focusedChild == nil {
			break
		}
		win = win.focusedChild
	}

	if win != nil && win.isFocused && win.cursor.visible &&
		cellVisible(win, win.cursor.line, win.cursor.col) {
		root.term.SetCursorVisible(true)
		abs := win.GetAbsGeometry()
		root.term.Goto(win.cursor.line+abs.Top, win.cursor.col+abs.Left)
		root.term.SetCursorShape(win.cursor.shape)
	} else {
		root.term.SetCursorVisible(false)
	}

	root.term.Flush()
}

// cellVisible reports whether the single cell at (line, col), given in
// win's local coordinates, stays visible all the way up to the root:
// at each level the cell must lie within the window's rect and must
// not be covered by any visible child in front of the one the walk
// arrived through. At the starting window every visible child counts
// as an occluder, since all of them draw over the window's own
// content.
func cellVisible(win *Window, line, col int) bool {
	var prev *Window
	for win != nil {
		if line < 0 || line >= win.rect.Lines || col < 0 || col >= win.rect.Cols {
			return false
		}

		for child := win.firstChild; child != nil; child = child.next {
			if prev != nil && child == prev {
				break
			}
			if child.flags&flagVisible == 0 {
				continue
			}
			if line < child.rect.Top || line >= child.rect.Bottom() {
				continue
			}
			if col < child.rect.Left || col >= child.rect.Right() {
				continue
			}
			return false
		}

		line += win.rect.Top
		col += win.rect.Left
		prev = win
		win = win.parent
	}
	return true
}
