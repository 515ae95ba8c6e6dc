package window

import (
	"github.com/elvisnm/tuiwin/hook"
	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
)

type windowFlags uint16

const (
	flagVisible windowFlags = 1 << iota
	flagStealInput
	flagFocusChildNotify
)

// Window is one node of the drawing-region tree. The tree is a
// parent/first-child/next-sibling structure with no previous-sibling
// pointer: a window only ever needs to walk forward from its parent's
// first child to find itself.
type Window struct {
	root *Root // non-nil only on the Window embedded in a Root

	parent       *Window
	firstChild   *Window
	next         *Window
	focusedChild *Window

	rect  rect.Rect
	pen   *pen.Pen
	flags windowFlags

	hooks hook.List

	cursor cursorState

	// isFocused is true only for the single window at the end of the
	// root's focused_child chain; ancestors on the path hold focusedChild
	// but never isFocused themselves.
	isFocused bool

	// dragGeneration is bumped every time this window is destroyed, so
	// a dragHandle holding a stale *Window can recognise it no longer
	// refers to the window it was taken against.
	dragGeneration uint64
}

// New creates a child window of parent. If flags includes RootParent,
// rect (given relative to parent) is translated into root coordinates
// and the window is created directly under parent's owning root
// instead of under parent itself.
func New(parent *Window, r rect.Rect, flags Flags) *Window {
	if parent == nil {
		panic("window: New requires a non-nil parent")
	}

	root := parent.findRoot()

	effRect := r
	effParent := parent
	if flags&RootParent != 0 {
		abs := parent.absOrigin()
		effRect = r.Translate(abs.top, abs.left)
		effParent = &root.Window
	}

	w := &Window{
		parent: effParent,
		rect:   effRect,
		cursor: cursorState{shape: CursorBlock, visible: true},
	}
	if flags&Hidden == 0 {
		w.flags |= flagVisible
	}
	if flags&StealInput != 0 {
		w.flags |= flagStealInput
	}

	if flags&Lowest != 0 {
		effParent.appendChild(w)
	} else {
		effParent.prependChild(w)
	}

	effParent.Expose(w.rect)

	return w
}

type absOffset struct{ top, left int }

// absOrigin returns the absolute (root-relative) position of this
// window's own origin, by walking up through parents.
func (w *Window) absOrigin() absOffset {
	top, left := 0, 0
	for n := w; n.parent != nil; n = n.parent {
		top += n.rect.Top
		left += n.rect.Left
	}
	return absOffset{top, left}
}

func (w *Window) findRoot() *Root {
	n := w
	for n.parent != nil {
		n = n.parent
	}
	if n.root == nil {
		panic("window: tree has no root")
	}
	return n.root
}

// Root returns the Root owning this window's tree.
func (w *Window) Root() *Root {
	return w.findRoot()
}

func (w *Window) prependChild(child *Window) {
	child.next = w.firstChild
	w.firstChild = child
}

func (w *Window) appendChild(child *Window) {
	if w.firstChild == nil {
		w.firstChild = child
		return
	}
	n := w.firstChild
	for n.next != nil {
		n = n.next
	}
	n.next = child
}

// Parent returns the window's parent, or nil for a root.
func (w *Window) Parent() *Window { return w.parent }

// FirstChild returns the front-most child, or nil.
func (w *Window) FirstChild() *Window { return w.firstChild }

// NextSibling returns the next child behind this one in z-order.
func (w *Window) NextSibling() *Window { return w.next }

// Children returns the window's children, front to back.
func (w *Window) Children() []*Window {
	var out []*Window
	for c := w.firstChild; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// IsVisible reports whether Show/Hide currently has this window
// visible. It says nothing about ancestors.
func (w *Window) IsVisible() bool { return w.flags&flagVisible != 0 }

// StealsInput reports whether this window was created with the
// StealInput flag.
func (w *Window) StealsInput() bool { return w.flags&flagStealInput != 0 }

// Show makes the window visible, exposing the area it now occupies.
// If the parent has no focused child and this window is still on a
// focus path (it holds focus, or a descendant did when it was last
// hidden), it is promoted back to the parent's focused child.
func (w *Window) Show() {
	w.flags |= flagVisible
	if w.parent != nil && w.parent.focusedChild == nil && (w.isFocused || w.focusedChild != nil) {
		w.parent.focusedChild = w
	}
	w.Expose(rect.New(0, 0, w.rect.Lines, w.rect.Cols))
}

// Hide makes the window invisible. Focus clears down the window's own
// focus subtree leaf-first, the parent's focused_child slot is
// released if this window held it (never reassigned automatically),
// and the parent is exposed over the vacated area. The window keeps
// its own focusedChild pointer so a later Show can promote the same
// path again.
func (w *Window) Hide() {
	w.flags &^= flagVisible
	w.focusLost()
	if w.parent != nil {
		if w.parent.focusedChild == w {
			w.parent.focusedChild = nil
		}
		w.parent.Expose(w.rect)
	}
}

// GetGeometry returns the window's rect in its parent's coordinates.
func (w *Window) GetGeometry() rect.Rect { return w.rect }

// GetAbsGeometry returns the window's rect in root coordinates.
func (w *Window) GetAbsGeometry() rect.Rect {
	off := w.absOrigin()
	return rect.New(off.top, off.left, w.rect.Lines, w.rect.Cols)
}

// Bottom returns GetGeometry().Bottom().
func (w *Window) Bottom() int { return w.rect.Bottom() }

// Right returns GetGeometry().Right().
func (w *Window) Right() int { return w.rect.Right() }

// SetGeometry replaces the window's rect wholesale. A GeomChange event
// only fires if the rect actually changed.
func (w *Window) SetGeometry(r rect.Rect) {
	if w.rect == r {
		return
	}
	old := w.rect
	w.rect = r
	w.fireGeomChange(old)
}

// Resize changes only the window's size, keeping its origin.
func (w *Window) Resize(lines, cols int) {
	w.SetGeometry(rect.New(w.rect.Top, w.rect.Left, lines, cols))
}

// Reposition changes only the window's origin, keeping its size. A
// focused window moving also moves the on-screen cursor, so a cursor
// restore is requested.
func (w *Window) Reposition(top, left int) {
	w.SetGeometry(rect.New(top, left, w.rect.Lines, w.rect.Cols))

	if w.isFocused {
		w.findRoot().requestRestore()
	}
}

func (w *Window) fireGeomChange(old rect.Rect) {
	w.hooks.RunEvent(w, GeomChange, &GeomChangeInfo{Rect: w.rect, OldRect: old})
}

// GetPen returns the window's own pen, or nil if none was set.
func (w *Window) GetPen() *pen.Pen { return w.pen }

// SetPen replaces the window's pen, releasing the previous one and
// taking a reference on p.
func (w *Window) SetPen(p *pen.Pen) {
	if w.pen == p {
		return
	}
	old := w.pen
	w.pen = pen.Ref(p)
	pen.Unref(old)
}

// Bind registers fn against this window's own hook list, for the
// per-window GeomChange/Expose/Focus/Key/Mouse/Destroy subscriptions.
func (w *Window) Bind(mask EventType, flags BindFlags, fn hook.Func, data any) int {
	return w.hooks.Bind(mask, flags, fn, data)
}

// Unbind removes a previously bound hook by id.
func (w *Window) Unbind(id int) {
	w.hooks.UnbindByID(w, id)
}

// Destroy tears the window down: fires Unbind|Destroy on its hooks in
// reverse bind order, recursively destroys children front to back,
// purges any pending hierarchy-change records that still mention it,
// then unlinks it from its parent, releasing the parent's
// focused_child slot if this window held it.
func (w *Window) Destroy() {
	root := w.findRoot()

	w.hooks.UnbindAndDestroy(w)

	pen.Unref(w.pen)
	w.pen = nil

	for c := w.firstChild; c != nil; {
		next := c.next
		c.Destroy()
		c = next
	}

	root.purgeHierarchyChanges(w)

	if w.parent != nil {
		w.parent.unlinkChild(w)
		if w.parent.focusedChild == w {
			w.parent.focusedChild = nil
		}
		w.parent.Expose(w.rect)
	}

	w.dragGeneration++
	if root.dragSource.win == w {
		root.dragSource = dragHandle{}
	}
}

func (w *Window) unlinkChild(child *Window) {
	if w.firstChild == child {
		w.firstChild = child.next
		child.next = nil
		return
	}
	for n := w.firstChild; n != nil; n = n.next {
		if n.next == child {
			n.next = child.next
			child.next = nil
			return
		}
	}
}
