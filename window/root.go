package window

import (
	"github.com/elvisnm/tuiwin/hook"
	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/renderbuf"
)

// hierarchyOp is the kind of deferred restack requested via
// Raise/RaiseToFront/Lower/LowerToBack.
type hierarchyOp int

const (
	opRaise hierarchyOp = iota
	opRaiseToFront
	opLower
	opLowerToBack
)

type hierarchyChange struct {
	op  hierarchyOp
	win *Window
}

// Tracer receives one line per significant thing a Root does during
// flush and dispatch: hierarchy changes, damage, expose passes,
// cursor restores, key/mouse dispatch. depth is the expose
// recursion's current child nesting, for indentation; production
// callers normally leave this nil.
type Tracer func(depth int, format string, args ...any)

// Root is the top of a window tree: it owns the terminal, the pending
// damage set, the deferred hierarchy-change queue and the one cursor
// position visible on screen. A Root is itself a Window (its own
// parent is nil), so ordinary tree operations work uniformly whether
// or not a node happens to be the root.
type Root struct {
	Window

	term    Terminal
	eventID int

	damage       rect.Set
	needsExpose  bool
	needsRestore bool
	needsLater   bool

	hierarchyQueue []hierarchyChange

	mouseDragging   bool
	mouseLastButton int
	mouseLastLine   int
	mouseLastCol    int
	dragSource      dragHandle

	tracer Tracer
}

// NewRoot creates a Root sized to term's current dimensions,
// subscribes to its Resize/Key/Mouse events and exposes the whole
// screen. Destroying the root later unsubscribes automatically.
func NewRoot(term Terminal) *Root {
	lines, cols := term.Size()

	root := &Root{term: term}
	root.Window.root = root
	root.Window.rect = rect.New(0, 0, lines, cols)
	root.Window.flags |= flagVisible
	root.Window.cursor = cursorState{shape: CursorBlock, visible: true}

	root.eventID = term.BindEvent(Resize|Key|Mouse, 0, root.onTerm, nil)

	root.Expose(rect.New(0, 0, lines, cols))

	return root
}

// SetTracer installs (or clears, with nil) a debug tracer.
func (root *Root) SetTracer(t Tracer) { root.tracer = t }

func (root *Root) trace(depth int, format string, args ...any) {
	if root.tracer != nil {
		root.tracer(depth, format, args...)
	}
}

// Destroy tears down the whole tree and unsubscribes from the
// terminal.
func (root *Root) Destroy() {
	root.hooks.UnbindAndDestroy(&root.Window)

	for c := root.firstChild; c != nil; {
		next := c.next
		c.Destroy()
		c = next
	}

	root.hierarchyQueue = nil
	root.damage.Clear()
	root.term.UnbindEventID(root.eventID)
}

func (root *Root) requestLater() {
	root.needsLater = true
}

func (root *Root) requestRestore() {
	root.needsRestore = true
	root.requestLater()
}

func (root *Root) onTerm(owner any, ev hook.EventType, info any, data any) int {
	switch EventType(ev) {
	case Resize:
		ri := info.(*ResizeInfo)
		oldLines := root.rect.Lines
		oldCols := root.rect.Cols
		root.Window.Resize(ri.Lines, ri.Cols)
		root.trace(0, "resize to %dx%d", ri.Lines, ri.Cols)
		// Growth exposes only the newly revealed strips; shrink leaves
		// the surviving area's content valid as-is.
		if ri.Lines > oldLines {
			root.Expose(rect.New(oldLines, 0, ri.Lines-oldLines, ri.Cols))
		}
		if ri.Cols > oldCols {
			root.Expose(rect.New(0, oldCols, oldLines, ri.Cols-oldCols))
		}
	case Key:
		ki := info.(*KeyInfo)
		root.trace(0, "key event %d %q", ki.Type, ki.Str)
		root.Window.dispatchKey(ki)
	case Mouse:
		mi := info.(*MouseInfo)
		root.trace(0, "mouse event %d button %d @%d,%d", mi.Type, mi.Button, mi.Line, mi.Col)
		root.handleMouse(mi)
	}
	return 0
}

// Expose schedules r (in w's local coordinates) for repaint at the
// next Flush. If w is hidden, or is a descendant of a hidden window,
// the request is dropped: there is nothing valid to redraw there yet,
// and it will be re-exposed naturally once shown.
func (w *Window) Expose(r rect.Rect) {
	local := rect.New(0, 0, w.rect.Lines, w.rect.Cols)
	clipped, ok := rect.Intersect(local, r)
	if !ok {
		return
	}

	if w.flags&flagVisible == 0 {
		return
	}

	if w.parent != nil {
		w.parent.Expose(clipped.Translate(w.rect.Top, w.rect.Left))
		return
	}

	root := w.findRoot()
	if root.damage.Contains(clipped) {
		return
	}
	root.trace(0, "damage %v", clipped)
	root.damage.Add(clipped)
	root.needsExpose = true
	root.requestLater()
}

// Raise moves win one step toward the front of its parent's child
// list at the next Flush. Raising a root is a no-op.
func (win *Window) Raise() {
	win.requestHierarchyChange(hierarchyChange{op: opRaise, win: win})
}

// RaiseToFront moves win to the front of its parent's child list at
// the next Flush.
func (win *Window) RaiseToFront() {
	win.requestHierarchyChange(hierarchyChange{op: opRaiseToFront, win: win})
}

// Lower moves win one step back in its parent's child list at the
// next Flush. Lowering a root is a no-op.
func (win *Window) Lower() {
	win.requestHierarchyChange(hierarchyChange{op: opLower, win: win})
}

// LowerToBack moves win to the back of its parent's child list at the
// next Flush.
func (win *Window) LowerToBack() {
	win.requestHierarchyChange(hierarchyChange{op: opLowerToBack, win: win})
}

func (win *Window) requestHierarchyChange(c hierarchyChange) {
	if win.parent == nil {
		// Nothing restacks the root.
		return
	}
	root := win.findRoot()
	root.hierarchyQueue = append(root.hierarchyQueue, c)
	root.requestLater()
}

// purgeHierarchyChanges drops any queued hierarchy change mentioning
// win, called when win is destroyed before the queue was drained.
func (root *Root) purgeHierarchyChanges(win *Window) {
	if len(root.hierarchyQueue) == 0 {
		return
	}
	kept := root.hierarchyQueue[:0]
	for _, c := range root.hierarchyQueue {
		if c.win != win && c.win.parent != win {
			kept = append(kept, c)
		}
	}
	root.hierarchyQueue = kept
}

func (root *Root) drainHierarchyQueue() {
	queue := root.hierarchyQueue
	root.hierarchyQueue = nil

	for _, c := range queue {
		switch c.op {
		case opRaise:
			doRaise(c.win)
		case opRaiseToFront:
			doRaiseToFront(c.win)
		case opLower:
			doLower(c.win)
		case opLowerToBack:
			doLowerToBack(c.win)
		}
		// The restack can uncover or recover area at any sibling
		// boundary; expose the parent over win's own rect so stale
		// regions repaint regardless of which direction it moved.
		if c.win.parent != nil {
			c.win.parent.Expose(c.win.rect)
		}
	}
}

// doRaise moves win one step toward the front of parent.firstChild.
// If win is not found among its claimed parent's children (it was
// reparented or destroyed between the call and the flush), this is a
// silent no-op.
func doRaise(win *Window) {
	p := win.parent
	if p == nil || p.firstChild == win {
		return
	}
	var prev *Window
	for n := p.firstChild; n != nil; n = n.next {
		if n.next == win {
			prev = n
			break
		}
	}
	if prev == nil {
		return
	}
	prev.next = win.next
	win.next = prev
	relinkBefore(p, prev, win)
}

// relinkBefore places win immediately before prev in p's child list,
// used by doRaise after prev.next/win.next have already been spliced
// to point at each other.
func relinkBefore(p *Window, prev, win *Window) {
	if p.firstChild == prev {
		p.firstChild = win
		return
	}
	for n := p.firstChild; n != nil; n = n.next {
		if n.next == prev {
			n.next = win
			return
		}
	}
}

func doRaiseToFront(win *Window) {
	p := win.parent
	if p == nil || p.firstChild == win {
		return
	}
	p.unlinkChild(win)
	p.prependChild(win)
}

func doLower(win *Window) {
	p := win.parent
	if p == nil || win.next == nil {
		return
	}
	after := win.next
	p.unlinkChild(win)
	win.next = after.next
	after.next = win
}

func doLowerToBack(win *Window) {
	p := win.parent
	if p == nil {
		return
	}
	p.unlinkChild(win)
	p.appendChild(win)
}

// Flush is the single cooperative tick that applies queued hierarchy
// changes in FIFO order, repaints any damaged area into a fresh
// render buffer, and restores the terminal cursor to the focused
// window. With no pending work it returns immediately.
func (root *Root) Flush() {
	if !root.needsLater {
		return
	}
	root.needsLater = false

	if n := len(root.hierarchyQueue); n > 0 {
		root.trace(0, "flush: applying %d hierarchy change(s)", n)
	}
	root.drainHierarchyQueue()

	if root.needsExpose {
		root.needsExpose = false

		rects := append([]rect.Rect(nil), root.damage.All()...)
		root.damage.Clear()

		root.trace(0, "flush: expose pass over %d damage rect(s)", len(rects))
		rb := renderbuf.New(root.rect.Lines, root.rect.Cols)
		for _, r := range rects {
			rb.Save()
			rb.Clip(r)
			root.Window.doExpose(root, rb, r, 0)
			rb.Restore()
		}
		for _, r := range rects {
			rb.FlushRect(root.term, r)
		}

		root.needsRestore = true
	}

	if root.needsRestore {
		root.needsRestore = false
		root.trace(0, "flush: restore cursor")
		root.doRestore()
	}
}

// doExpose repaints r (in w's local coordinates) by applying w's own
// pen, recursing front-to-back into children, and finally firing
// Expose on w itself. Every visible child's rect is masked out of the
// buffer afterward so later siblings and w's own expose callback
// cannot overdraw the area that child already handled. depth only
// drives trace indentation.
func (w *Window) doExpose(root *Root, rb *renderbuf.Buffer, r rect.Rect, depth int) {
	root.trace(depth, "expose %v on window at %v", r, w.rect)

	if w.pen != nil {
		rb.SetPen(w.pen)
	}

	for c := w.firstChild; c != nil; c = c.next {
		if c.flags&flagVisible == 0 {
			continue
		}

		if exposed, ok := rect.Intersect(r, c.rect); ok {
			rb.Save()
			rb.Clip(exposed)
			rb.Translate(c.rect.Top, c.rect.Left)
			c.doExpose(root, rb, exposed.Translate(-c.rect.Top, -c.rect.Left), depth+1)
			rb.Restore()
		}

		rb.Mask(c.rect)
	}

	w.hooks.RunEvent(w, Expose, &ExposeInfo{Rect: r, RB: rb})
}
