package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/renderbuf"
	"github.com/elvisnm/tuiwin/window"
)

// Pane is one bordered, scrollable content panel of the demo, backed
// by a single window.Window. It owns no state the core doesn't
// already model (geometry, focus, visibility) beyond the text it
// scrolls through and how far it has scrolled.
type Pane struct {
	win   *window.Window
	title string
	lines []string
	top   int // index into lines of the first visible content row
}

// NewPane creates a child window of parent covering r and binds its
// Expose/Key hooks. The pane starts with PanePen; TakeFocus swaps it
// to FocusPanePen so the focused pane reads visually distinct, the
// same visual cue a host application's PanelStyle border color gives.
func NewPane(parent *window.Window, r rect.Rect, title string, lines []string) *Pane {
	p := &Pane{title: title, lines: lines}
	p.win = window.New(parent, r, 0)
	p.win.SetPen(PanePen)

	p.win.Bind(window.Expose, 0, func(owner any, ev window.EventType, info any, data any) int {
		ei := info.(*window.ExposeInfo)
		p.draw(ei.RB)
		return 0
	}, nil)

	p.win.Bind(window.Focus, 0, func(owner any, ev window.EventType, info any, data any) int {
		fi := info.(*window.FocusInfo)
		if fi.Type == window.FocusIn {
			p.win.SetPen(FocusPanePen)
		} else {
			p.win.SetPen(PanePen)
		}
		p.win.Expose(rect.New(0, 0, p.win.GetGeometry().Lines, p.win.GetGeometry().Cols))
		return 0
	}, nil)

	p.win.Bind(window.Key, 0, func(owner any, ev window.EventType, info any, data any) int {
		return boolToInt(p.handleKey(info.(*window.KeyInfo)))
	}, nil)

	return p
}

// Window returns the pane's underlying window, for TakeFocus/Raise
// calls at the demo level.
func (p *Pane) Window() *window.Window { return p.win }

func (p *Pane) handleKey(info *window.KeyInfo) bool {
	switch {
	case matches(info.Str, Keys.Up):
		return p.scrollBy(-1)
	case matches(info.Str, Keys.Down):
		return p.scrollBy(1)
	}
	return false
}

// scrollBy moves the visible window over p.lines by delta rows,
// clamped to the content's extent, and asks the core to scroll the
// pane's interior on-screen (falling back to a plain re-expose when
// the terminal refuses, exactly as window.Window.Scroll documents).
func (p *Pane) scrollBy(delta int) bool {
	geom := p.win.GetGeometry()
	visible := geom.Lines - 2 // minus top/bottom border rows
	maxTop := len(p.lines) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	newTop := p.top + delta
	if newTop < 0 {
		newTop = 0
	}
	if newTop > maxTop {
		newTop = maxTop
	}
	if newTop == p.top {
		return false
	}
	shift := newTop - p.top
	p.top = newTop
	// Scroll only the interior, keeping the border rows and columns
	// pinned; a terminal refusal already falls back to a re-expose.
	p.win.ScrollRect(rect.New(1, 1, geom.Lines-2, geom.Cols-2), shift, 0, nil)
	return true
}

// draw paints the pane's rounded border, title, and the currently
// visible slice of lines starting at p.top.
func (p *Pane) draw(rb *renderbuf.Buffer) {
	geom := p.win.GetGeometry()
	lines, cols := geom.Lines, geom.Cols
	if lines < 2 || cols < 2 {
		return
	}

	rb.WriteText(0, 0, BorderRunes.TopLeft+repeat(BorderRunes.Top, cols-2)+BorderRunes.TopRight, nil)
	rb.WriteText(lines-1, 0, BorderRunes.BottomLeft+repeat(BorderRunes.Bottom, cols-2)+BorderRunes.BottomRight, nil)
	for y := 1; y < lines-1; y++ {
		rb.WriteText(y, 0, BorderRunes.Left, nil)
		rb.WriteText(y, cols-1, BorderRunes.Right, nil)
	}

	if p.title != "" {
		rb.WriteText(0, 2, " "+p.title+" ", nil)
	}

	visible := lines - 2
	for i := 0; i < visible; i++ {
		idx := p.top + i
		row := y2Blank(cols - 2)
		if idx < len(p.lines) {
			row = clipWidth(p.lines[idx], cols-2)
		}
		rb.WriteText(1+i, 1, row, nil)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// matches reports whether the key string a KeyInfo carries is one of
// the binding's keys, the bridge between the core's raw key payloads
// and a bubbles-style keymap.
func matches(str string, b key.Binding) bool {
	for _, k := range b.Keys() {
		if k == str {
			return true
		}
	}
	return false
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func y2Blank(n int) string { return repeat(" ", n) }

func clipWidth(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s + repeat(" ", n-len(r))
}
