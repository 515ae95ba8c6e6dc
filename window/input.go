package window

// dispatchKey implements the keyboard routing walk: an invisible
// window drops the event outright; otherwise a front child that
// stole input always gets first refusal regardless of focus, then
// the focused-child chain, then this window's own hooks, and only
// once none of those claimed the event do the remaining children get
// a look, front to back. A recursed-into window applies this same
// invisible check at its own entry, so a steal-input front child that
// happens to be hidden falls straight through to the next step rather
// than swallowing the event.
func (w *Window) dispatchKey(info *KeyInfo) bool {
	if w.flags&flagVisible == 0 {
		return false
	}

	if w.firstChild != nil && w.firstChild.flags&flagStealInput != 0 {
		if w.firstChild.dispatchKey(info) {
			return true
		}
	}

	if w.focusedChild != nil {
		if w.focusedChild.dispatchKey(info) {
			return true
		}
	}

	if w.hooks.RunEventWhileFalse(w, Key, info) != 0 {
		return true
	}

	// Last-ditch attempt to spread it around other children.
	for c := w.firstChild; c != nil; c = c.next {
		if c == w.focusedChild {
			continue
		}
		if c.dispatchKey(info) {
			return true
		}
	}
	return false
}

// handleMouse layers drag synthesis around the ordinary geometry
// dispatch: a press records where a drag might start; the first drag
// after a press fabricates MouseDragStart at the press location and
// remembers whichever window consumed it as the drag source; a
// release while dragging fabricates MouseDragDrop (dispatched from
// the root) then MouseDragStop (delivered to the drag source in its
// own frame). The raw event itself is always dispatched normally
// afterward, and a drag the source didn't consume additionally earns
// it a MouseDragOutside.
func (root *Root) handleMouse(info *MouseInfo) {
	switch {
	case info.Type == MousePress:
		root.mouseLastButton = info.Button
		root.mouseLastLine = info.Line
		root.mouseLastCol = info.Col

	case info.Type == MouseDrag && !root.mouseDragging:
		start := MouseInfo{
			Type:   MouseDragStart,
			Button: root.mouseLastButton,
			Line:   root.mouseLastLine,
			Col:    root.mouseLastCol,
		}
		if consumer := root.Window.dispatchMouse(start); consumer != nil {
			root.dragSource = takeDragHandle(consumer)
		} else {
			root.dragSource = dragHandle{}
		}
		root.mouseDragging = true

	case info.Type == MouseRelease && root.mouseDragging:
		drop := MouseInfo{
			Type:   MouseDragDrop,
			Button: info.Button,
			Line:   info.Line,
			Col:    info.Col,
		}
		root.Window.dispatchMouse(drop)

		if root.dragSource.Valid() {
			src := root.dragSource.win
			stop := localMouseInfo(src, MouseDragStop, info)
			src.dispatchMouse(stop)
		}

		root.mouseDragging = false
	}

	handled := root.Window.dispatchMouse(*info)

	if info.Type == MouseDrag && root.dragSource.Valid() && handled != root.dragSource.win {
		src := root.dragSource.win
		outside := localMouseInfo(src, MouseDragOutside, info)
		src.dispatchMouse(outside)
	}
}

// dispatchMouse implements the geometry hit-test walk: children are
// tried front to back with the coordinates translated into each one's
// local frame, a child with StealInput bypasses the containment test
// entirely, and the first window whose own hooks consume the event is
// returned. Returns nil if nothing along the walk consumed it.
func (w *Window) dispatchMouse(info MouseInfo) *Window {
	if w.flags&flagVisible == 0 {
		return nil
	}

	for c := w.firstChild; c != nil; c = c.next {
		childLine := info.Line - c.rect.Top
		childCol := info.Col - c.rect.Left

		if c.flags&flagStealInput == 0 {
			if childLine < 0 || childLine >= c.rect.Lines {
				continue
			}
			if childCol < 0 || childCol >= c.rect.Cols {
				continue
			}
		}

		childInfo := info
		childInfo.Line = childLine
		childInfo.Col = childCol

		if consumer := c.dispatchMouse(childInfo); consumer != nil {
			return consumer
		}
	}

	if w.hooks.RunEventWhileFalse(w, Mouse, &info) != 0 {
		return w
	}
	return nil
}

// dragHandle is a weak, generation-tagged reference to the window
// that started a drag. It never owns the window, so a drag in
// progress cannot keep a destroyed window's subtree alive; Valid
// reports false once the window's generation has moved on.
type dragHandle struct {
	win        *Window
	generation uint64
}

func (h dragHandle) Valid() bool {
	return h.win != nil && h.win.dragGeneration == h.generation
}

func takeDragHandle(w *Window) dragHandle {
	return dragHandle{win: w, generation: w.dragGeneration}
}

// localMouseInfo fabricates a synthetic mouse event of the given type
// at info's location, translated from root coordinates into win's
// local frame.
func localMouseInfo(win *Window, typ MouseEventType, info *MouseInfo) MouseInfo {
	abs := win.GetAbsGeometry()
	return MouseInfo{
		Type:   typ,
		Button: info.Button,
		Line:   info.Line - abs.Top,
		Col:    info.Col - abs.Left,
	}
}
