// Package window implements a tree of rectangular drawing regions
// layered over a single terminal device, with z-ordered exposure,
// keyboard focus and input routing driven by damage accumulation and
// a cooperative flush tick.
package window

import (
	"github.com/elvisnm/tuiwin/hook"
	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/renderbuf"
)

// EventType is the bitmask of event kinds this core fires, shared by
// per-window hook lists and by the Terminal capability's own
// RESIZE/KEY/MOUSE subscription.
type EventType = hook.EventType

const (
	Unbind     EventType = EventType(hook.Unbind)
	Destroy    EventType = EventType(hook.Destroy)
	GeomChange EventType = 1 << 2
	Expose     EventType = 1 << 3
	Focus      EventType = 1 << 4
	Key        EventType = 1 << 5
	Mouse      EventType = 1 << 6
	// Resize is only ever bound by a Root against its Terminal; it is
	// never delivered to an ordinary window's own hook list.
	Resize EventType = 1 << 7
)

// BindFlags re-exports hook.BindFlags so callers never need to import
// the hook package directly just to pass BindFirst.
type BindFlags = hook.BindFlags

const BindFirst = hook.BindFirst

// Flags control window creation in New.
type Flags uint8

const (
	// RootParent walks up to the owning root, translating rect from
	// parent-relative into root-relative coordinates, and creates the
	// window under the root.
	RootParent Flags = 1 << iota
	// Hidden creates the window with IsVisible false.
	Hidden
	// Lowest appends the window at the back of its parent's child
	// list instead of the front.
	Lowest
	// StealInput marks the window to receive input regardless of
	// geometric hit test or focus path.
	StealInput
)

// CursorShape is the terminal cursor glyph a focused window requests.
type CursorShape int

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorLeftBar
)

// KeyEventType distinguishes a raw keypress from decoded text input.
type KeyEventType int

const (
	KeyPress KeyEventType = iota + 1
	KeyText
)

// Modifier is a bitmask of held modifier keys, shared by key and
// mouse events.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// KeyInfo is the info payload of a Key event.
type KeyInfo struct {
	Type KeyEventType
	Str  string
	Mod  Modifier
}

// MouseEventType enumerates the mouse event kinds a window may see,
// including the drag-synthesis events the root fabricates.
type MouseEventType int

const (
	MousePress MouseEventType = iota + 1
	MouseDrag
	MouseRelease
	MouseWheel
	MouseDragStart
	MouseDragDrop
	MouseDragStop
	MouseDragOutside
)

// MouseInfo is the info payload of a Mouse event. Line/Col are in the
// receiving window's local coordinates.
type MouseInfo struct {
	Type   MouseEventType
	Button int
	Line   int
	Col    int
	Mod    Modifier
}

// ResizeInfo is the info payload the Terminal delivers for a Resize
// event.
type ResizeInfo struct {
	Lines, Cols int
}

// GeomChangeInfo is the info payload of a GeomChange event.
type GeomChangeInfo struct {
	Rect    rect.Rect
	OldRect rect.Rect
}

// FocusEventType distinguishes focus gain from focus loss.
type FocusEventType int

const (
	FocusIn FocusEventType = iota + 1
	FocusOut
)

// FocusInfo is the info payload of a Focus event.
type FocusInfo struct {
	Type FocusEventType
	Win  *Window
}

// ExposeInfo is the info payload of an Expose event.
type ExposeInfo struct {
	Rect rect.Rect
	RB   *renderbuf.Buffer
}

// Terminal is the external terminal device capability the root drives
// during flush. Implementations live in package term.
type Terminal interface {
	Size() (lines, cols int)
	BindEvent(mask EventType, flags BindFlags, fn hook.Func, data any) int
	UnbindEventID(id int)
	SetCursorVisible(visible bool)
	SetCursorShape(shape CursorShape)
	Goto(line, col int)
	SetPen(p *pen.Pen)
	// WriteCell writes a single glyph at absolute (line, col) styled by
	// p. Flush calls this for each cell inside each repainted rect, after
	// the expose pass has finished drawing into the renderbuf.Buffer;
	// cells with empty text (double-width continuation cells and cells
	// nothing drew into) are skipped.
	WriteCell(line, col int, text string, p *pen.Pen)
	ScrollRect(r rect.Rect, downward, rightward int) bool
	Flush()
}

type cursorState struct {
	line, col int
	shape     CursorShape
	visible   bool
}
