// Package term implements the terminal device capability the window
// core drives during flush: a real ANSI/xterm implementation
// (ANSITerm) and an in-memory double for tests (FakeTerm).
package term

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
	xterm "github.com/charmbracelet/x/term"

	"github.com/elvisnm/tuiwin/hook"
	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/window"
)

// ANSITerm is a window.Terminal backed by a real terminal, written to
// through ANSI/xterm escape sequences. It does not run its own event
// loop: an enclosing bubbletea.Program supplies raw-mode lifecycle and
// delivers tea.WindowSizeMsg/tea.KeyMsg/tea.MouseMsg to Dispatch,
// which translates them into the Resize/Key/Mouse events a bound
// window.Root expects. bubbletea's own Elm-architecture model/update/
// view loop plays no part here; it is purely the OS-level terminal
// lifecycle manager.
type ANSITerm struct {
	out   io.Writer
	debug io.Writer

	lines, cols int
	hooks       hook.List

	// screen is the desired cell state WriteCell accumulates into;
	// front mirrors what has actually been emitted. Flush diffs the
	// two and only rewrites cells that differ.
	screen, front         *cellbuf.Buffer
	screenPens, frontPens [][]*pen.Pen

	scrollPen *pen.Pen

	cursorLine, cursorCol int
	cursorVisible         bool
	cursorShape           window.CursorShape
	cursorDirty           bool
}

// NewANSI creates an ANSITerm of the given initial size, writing
// escape sequences to out. debug, if non-nil, receives one line per
// notable action (scrolls, flush summaries); a nil debug writer
// disables the tracing, which is the default production behavior.
func NewANSI(out io.Writer, debug io.Writer, lines, cols int) *ANSITerm {
	t := &ANSITerm{
		out:           out,
		debug:         debug,
		cursorVisible: true,
	}
	t.alloc(lines, cols)
	return t
}

func (t *ANSITerm) alloc(lines, cols int) {
	t.lines, t.cols = lines, cols
	t.screen = cellbuf.NewBuffer(cols, lines)
	t.front = cellbuf.NewBuffer(cols, lines)
	t.screenPens = newPenGrid(lines, cols)
	t.frontPens = newPenGrid(lines, cols)
}

func newPenGrid(lines, cols int) [][]*pen.Pen {
	grid := make([][]*pen.Pen, lines)
	for i := range grid {
		grid[i] = make([]*pen.Pen, cols)
	}
	return grid
}

// SizeFromFd probes the real terminal size via the given file
// descriptor (ordinarily os.Stdout.Fd()), falling back to 80x24 if the
// probe fails (e.g. stdout is not a terminal).
func SizeFromFd(fd uintptr) (lines, cols int) {
	w, h, err := xterm.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 24, 80
	}
	return h, w
}

func (t *ANSITerm) tracef(format string, args ...any) {
	if t.debug != nil {
		io.WriteString(t.debug, fmt.Sprintf(format, args...)+"\n")
	}
}

// Size implements window.Terminal.
func (t *ANSITerm) Size() (int, int) { return t.lines, t.cols }

// BindEvent implements window.Terminal.
func (t *ANSITerm) BindEvent(mask window.EventType, flags window.BindFlags, fn hook.Func, data any) int {
	return t.hooks.Bind(mask, flags, fn, data)
}

// UnbindEventID implements window.Terminal.
func (t *ANSITerm) UnbindEventID(id int) { t.hooks.UnbindByID(t, id) }

// SetCursorVisible implements window.Terminal. The actual escape
// sequence is deferred to Flush so cursor state changes coalesce with
// the rest of the frame instead of flickering mid-paint.
func (t *ANSITerm) SetCursorVisible(visible bool) {
	t.cursorVisible = visible
	t.cursorDirty = true
}

// SetCursorShape implements window.Terminal.
func (t *ANSITerm) SetCursorShape(shape window.CursorShape) {
	t.cursorShape = shape
	t.cursorDirty = true
}

// Goto implements window.Terminal.
func (t *ANSITerm) Goto(line, col int) {
	t.cursorLine, t.cursorCol = line, col
	t.cursorDirty = true
}

// SetPen implements window.Terminal: the pen subsequently fills cells
// a ScrollRect uncovers.
func (t *ANSITerm) SetPen(p *pen.Pen) { t.scrollPen = p }

// WriteCell implements window.Terminal, buffering the glyph into the
// desired screen state. text may be empty for the continuation cell
// of a double-width glyph.
func (t *ANSITerm) WriteCell(line, col int, text string, p *pen.Pen) {
	if line < 0 || line >= t.lines || col < 0 || col >= t.cols {
		return
	}
	c := cellbuf.NewCellString(text)
	c.Width = 1
	c.Style = cellStyle(p)
	t.screen.SetCell(col, line, c)
	t.screenPens[line][col] = p
}

// ScrollRect implements window.Terminal using a DECSTBM scroll-region
// shift. Only a full-width vertical scroll can be expressed that way,
// so anything narrower, or any horizontal component, is refused and
// the core falls back to re-exposing the rect.
func (t *ANSITerm) ScrollRect(r rect.Rect, downward, rightward int) bool {
	if rightward != 0 || r.Left != 0 || r.Cols != t.cols {
		return false
	}
	if r.Top < 0 || r.Bottom() > t.lines {
		return false
	}
	if downward == 0 {
		return true
	}

	top, bottom := r.Top, r.Bottom()-1
	io.WriteString(t.out, ansi.SetTopBottomMargins(top+1, bottom+1))
	if downward > 0 {
		io.WriteString(t.out, ansi.ScrollUp(downward))
	} else {
		io.WriteString(t.out, ansi.ScrollDown(-downward))
	}
	io.WriteString(t.out, ansi.SetTopBottomMargins(1, t.lines))
	// DECSTBM homes the cursor; force a re-position on the next Flush.
	t.cursorDirty = true

	t.shiftModel(r, downward)
	t.tracef("scrollrect %v down=%d", r, downward)
	return true
}

// shiftModel applies the physical scroll to both the desired and
// emitted cell models so the next Flush diff doesn't fight content
// the terminal already moved. Vacated rows become blank cells filled
// with the scroll pen.
func (t *ANSITerm) shiftModel(r rect.Rect, downward int) {
	copyRow := func(dst, src int) {
		for x := 0; x < t.cols; x++ {
			sc := t.screen.Cell(x, src)
			fc := t.front.Cell(x, src)
			if sc != nil {
				t.screen.SetCell(x, dst, &cellbuf.Cell{Rune: sc.Rune, Comb: sc.Comb, Width: sc.Width, Style: sc.Style})
			}
			if fc != nil {
				t.front.SetCell(x, dst, &cellbuf.Cell{Rune: fc.Rune, Comb: fc.Comb, Width: fc.Width, Style: fc.Style})
			}
			t.screenPens[dst][x] = t.screenPens[src][x]
			t.frontPens[dst][x] = t.frontPens[src][x]
		}
	}
	blankRow := func(y int) {
		for x := 0; x < t.cols; x++ {
			blank := &cellbuf.Cell{Rune: ' ', Width: 1, Style: cellStyle(t.scrollPen)}
			t.screen.SetCell(x, y, blank)
			t.front.SetCell(x, y, &cellbuf.Cell{Rune: ' ', Width: 1, Style: cellStyle(t.scrollPen)})
			t.screenPens[y][x] = t.scrollPen
			t.frontPens[y][x] = t.scrollPen
		}
	}

	if downward > 0 {
		for y := r.Top; y < r.Bottom()-downward; y++ {
			copyRow(y, y+downward)
		}
		for y := r.Bottom() - downward; y < r.Bottom(); y++ {
			blankRow(y)
		}
	} else {
		up := -downward
		for y := r.Bottom() - 1; y >= r.Top+up; y-- {
			copyRow(y, y-up)
		}
		for y := r.Top; y < r.Top+up; y++ {
			blankRow(y)
		}
	}
}

// Flush implements window.Terminal: diffs the desired screen against
// what was last emitted, repositioning and rendering only the cells
// that changed, then applies any pending cursor state.
func (t *ANSITerm) Flush() {
	emitted := 0
	for y := 0; y < t.lines; y++ {
		for x := 0; x < t.cols; x++ {
			sc := t.screen.Cell(x, y)
			fc := t.front.Cell(x, y)
			if sc == nil {
				continue
			}
			samePen := t.screenPens[y][x] == t.frontPens[y][x]
			if fc != nil && fc.String() == sc.String() && samePen {
				continue
			}
			io.WriteString(t.out, ansi.CursorPosition(x+1, y+1))
			io.WriteString(t.out, renderCell(sc.String(), t.screenPens[y][x]))
			t.front.SetCell(x, y, &cellbuf.Cell{Rune: sc.Rune, Comb: sc.Comb, Width: sc.Width, Style: sc.Style})
			t.frontPens[y][x] = t.screenPens[y][x]
			emitted++
		}
	}

	if t.cursorDirty {
		io.WriteString(t.out, ansi.CursorPosition(t.cursorCol+1, t.cursorLine+1))
		if t.cursorVisible {
			io.WriteString(t.out, ansi.SetModeTextCursorEnable)
		} else {
			io.WriteString(t.out, ansi.ResetModeTextCursorEnable)
		}
		io.WriteString(t.out, ansi.SetCursorStyle(cursorStyleNumber(t.cursorShape)))
		t.cursorDirty = false
	}

	if emitted > 0 {
		t.tracef("flush: %d cell(s) emitted", emitted)
	}
}

// Dispatch translates a bubbletea message into the Resize/Key/Mouse
// event this ANSITerm fires to its bound hooks (ordinarily just a
// window.Root's own subscription): bubbletea supplies terminal
// lifecycle events, ANSITerm turns them into the core's vocabulary.
func (t *ANSITerm) Dispatch(msg tea.Msg) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		t.alloc(m.Height, m.Width)
		t.hooks.RunEvent(t, window.Resize, &window.ResizeInfo{Lines: m.Height, Cols: m.Width})
	case tea.KeyMsg:
		t.hooks.RunEvent(t, window.Key, translateKey(m))
	case tea.MouseMsg:
		if info := translateMouse(m); info != nil {
			t.hooks.RunEvent(t, window.Mouse, info)
		}
	}
}

func translateKey(m tea.KeyMsg) *window.KeyInfo {
	var mod window.Modifier
	if m.Alt {
		mod |= window.ModAlt
	}
	if m.Type == tea.KeyRunes && len(m.Runes) > 0 {
		return &window.KeyInfo{Type: window.KeyText, Str: string(m.Runes), Mod: mod}
	}
	return &window.KeyInfo{Type: window.KeyPress, Str: m.String(), Mod: mod}
}

func translateMouse(m tea.MouseMsg) *window.MouseInfo {
	var typ window.MouseEventType
	switch {
	case m.Button == tea.MouseButtonWheelUp, m.Button == tea.MouseButtonWheelDown,
		m.Button == tea.MouseButtonWheelLeft, m.Button == tea.MouseButtonWheelRight:
		typ = window.MouseWheel
	case m.Action == tea.MouseActionPress:
		typ = window.MousePress
	case m.Action == tea.MouseActionRelease:
		typ = window.MouseRelease
	case m.Action == tea.MouseActionMotion && m.Button != tea.MouseButtonNone:
		typ = window.MouseDrag
	default:
		// Buttonless hover motion has no equivalent event; swallowing
		// it here keeps drag synthesis keyed to a held button.
		return nil
	}

	var mod window.Modifier
	if m.Shift {
		mod |= window.ModShift
	}
	if m.Alt {
		mod |= window.ModAlt
	}
	if m.Ctrl {
		mod |= window.ModCtrl
	}

	return &window.MouseInfo{Type: typ, Button: int(m.Button), Line: m.Y, Col: m.X, Mod: mod}
}

// cursorStyleNumber maps a core cursor shape onto the DECSCUSR steady
// style numbers (2 block, 4 underline, 6 bar).
func cursorStyleNumber(shape window.CursorShape) int {
	switch shape {
	case window.CursorUnderline:
		return 4
	case window.CursorLeftBar:
		return 6
	default:
		return 2
	}
}

func renderCell(content string, p *pen.Pen) string {
	if content == "" {
		content = " "
	}
	if p == nil {
		return content
	}
	return p.Style().Render(content)
}

// cellStyle copies a pen's colors onto a cellbuf.Style so the cell
// grids carry styling alongside content; full attribute rendering
// happens through the pen itself at emission time.
func cellStyle(p *pen.Pen) cellbuf.Style {
	if p == nil {
		return cellbuf.Style{}
	}
	style := p.Style()
	return cellbuf.Style{
		Fg: style.GetForeground(),
		Bg: style.GetBackground(),
	}
}
