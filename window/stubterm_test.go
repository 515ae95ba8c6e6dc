package window

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elvisnm/tuiwin/hook"
	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
)

func testPen() *pen.Pen {
	return pen.New(lipgloss.NewStyle().Bold(true))
}

// stubTerm is a minimal in-memory Terminal used only by this
// package's own tests, recording every call so assertions can inspect
// what the core asked of its terminal.
type stubTerm struct {
	lines, cols int
	hooks       hook.List

	cursorLine, cursorCol int
	cursorVisible         bool
	cursorShape           CursorShape

	scrollCalls []scrollCall
	scrollOK    bool
	flushes     int

	penSets    []*pen.Pen
	cellWrites []cellWrite
}

type scrollCall struct {
	r          rect.Rect
	down, left int
}

type cellWrite struct {
	line, col int
	text      string
}

func newStubTerm(lines, cols int) *stubTerm {
	return &stubTerm{lines: lines, cols: cols, scrollOK: true}
}

func (t *stubTerm) Size() (int, int) { return t.lines, t.cols }

func (t *stubTerm) BindEvent(mask EventType, flags BindFlags, fn hook.Func, data any) int {
	return t.hooks.Bind(mask, flags, fn, data)
}

func (t *stubTerm) UnbindEventID(id int) {
	t.hooks.UnbindByID(t, id)
}

func (t *stubTerm) SetCursorVisible(visible bool)    { t.cursorVisible = visible }
func (t *stubTerm) SetCursorShape(shape CursorShape) { t.cursorShape = shape }
func (t *stubTerm) Goto(line, col int) {
	t.cursorLine, t.cursorCol = line, col
}
func (t *stubTerm) SetPen(p *pen.Pen) {
	t.penSets = append(t.penSets, p)
}

func (t *stubTerm) WriteCell(line, col int, text string, p *pen.Pen) {
	t.cellWrites = append(t.cellWrites, cellWrite{line: line, col: col, text: text})
}

func (t *stubTerm) ScrollRect(r rect.Rect, downward, rightward int) bool {
	t.scrollCalls = append(t.scrollCalls, scrollCall{r: r, down: downward, left: rightward})
	return t.scrollOK
}

func (t *stubTerm) Flush() { t.flushes++ }

// resize fires a synthetic RESIZE event through the term's own hook
// list, exactly as a real terminal driver would on SIGWINCH.
func (t *stubTerm) resize(lines, cols int) {
	t.lines, t.cols = lines, cols
	t.hooks.RunEvent(t, Resize, &ResizeInfo{Lines: lines, Cols: cols})
}

func (t *stubTerm) key(str string) {
	t.hooks.RunEvent(t, Key, &KeyInfo{Type: KeyText, Str: str})
}

func (t *stubTerm) mouse(typ MouseEventType, button, line, col int) {
	t.hooks.RunEvent(t, Mouse, &MouseInfo{Type: typ, Button: button, Line: line, Col: col})
}
