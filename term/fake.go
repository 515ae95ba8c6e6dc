package term

import (
	"github.com/elvisnm/tuiwin/hook"
	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/window"
)

// FakeTerm is an in-memory window.Terminal double for tests outside
// package window itself: a fully in-memory collaborator a test can
// drive with Resize/Key/Mouse and then inspect via
// Cell/CursorPosition/ScrollCalls.
type FakeTerm struct {
	lines, cols int
	hooks       hook.List

	cells [][]string

	cursorLine, cursorCol int
	cursorVisible         bool
	cursorShape           window.CursorShape

	// ScrollCalls records every ScrollRect request, in order.
	ScrollCalls []ScrollCall
	// ScrollOK is returned by every ScrollRect call; set false to
	// exercise the fallback-to-full-expose path.
	ScrollOK bool
	// Flushes counts Flush calls.
	Flushes int
}

// ScrollCall records one ScrollRect request.
type ScrollCall struct {
	Rect        rect.Rect
	Down, Right int
}

// NewFake creates a FakeTerm of the given size. Scroll requests are
// accepted by default (ScrollOK true).
func NewFake(lines, cols int) *FakeTerm {
	return &FakeTerm{lines: lines, cols: cols, cells: newGrid(lines, cols), ScrollOK: true}
}

func newGrid(lines, cols int) [][]string {
	cells := make([][]string, lines)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return cells
}

// Size implements window.Terminal.
func (t *FakeTerm) Size() (int, int) { return t.lines, t.cols }

// BindEvent implements window.Terminal.
func (t *FakeTerm) BindEvent(mask window.EventType, flags window.BindFlags, fn hook.Func, data any) int {
	return t.hooks.Bind(mask, flags, fn, data)
}

// UnbindEventID implements window.Terminal.
func (t *FakeTerm) UnbindEventID(id int) { t.hooks.UnbindByID(t, id) }

// SetCursorVisible implements window.Terminal.
func (t *FakeTerm) SetCursorVisible(visible bool) { t.cursorVisible = visible }

// SetCursorShape implements window.Terminal.
func (t *FakeTerm) SetCursorShape(shape window.CursorShape) { t.cursorShape = shape }

// Goto implements window.Terminal.
func (t *FakeTerm) Goto(line, col int) { t.cursorLine, t.cursorCol = line, col }

// SetPen implements window.Terminal. FakeTerm does not render, so the
// pen is accepted and discarded.
func (t *FakeTerm) SetPen(p *pen.Pen) {}

// WriteCell implements window.Terminal.
func (t *FakeTerm) WriteCell(line, col int, text string, p *pen.Pen) {
	if line < 0 || line >= t.lines || col < 0 || col >= t.cols {
		return
	}
	t.cells[line][col] = text
}

// ScrollRect implements window.Terminal.
func (t *FakeTerm) ScrollRect(r rect.Rect, down, right int) bool {
	t.ScrollCalls = append(t.ScrollCalls, ScrollCall{Rect: r, Down: down, Right: right})
	return t.ScrollOK
}

// Flush implements window.Terminal.
func (t *FakeTerm) Flush() { t.Flushes++ }

// Resize fires a synthetic Resize event, as SIGWINCH would through a
// real terminal driver, and grows/shrinks the recorded cell grid to
// match.
func (t *FakeTerm) Resize(lines, cols int) {
	t.lines, t.cols = lines, cols
	t.cells = newGrid(lines, cols)
	t.hooks.RunEvent(t, window.Resize, &window.ResizeInfo{Lines: lines, Cols: cols})
}

// Key fires a synthetic text-input Key event.
func (t *FakeTerm) Key(str string) {
	t.hooks.RunEvent(t, window.Key, &window.KeyInfo{Type: window.KeyText, Str: str})
}

// Mouse fires a synthetic Mouse event at the given absolute position.
func (t *FakeTerm) Mouse(typ window.MouseEventType, button, line, col int) {
	t.hooks.RunEvent(t, window.Mouse, &window.MouseInfo{Type: typ, Button: button, Line: line, Col: col})
}

// Cell returns the glyph last written at (line, col), for assertions
// against what the core actually painted.
func (t *FakeTerm) Cell(line, col int) string { return t.cells[line][col] }

// CursorPosition reports where Goto last placed the cursor.
func (t *FakeTerm) CursorPosition() (line, col int) { return t.cursorLine, t.cursorCol }

// CursorVisible reports the terminal's last-set cursor visibility.
func (t *FakeTerm) CursorVisible() bool { return t.cursorVisible }

// CursorShape reports the terminal's last-set cursor shape.
func (t *FakeTerm) CursorShape() window.CursorShape { return t.cursorShape }
