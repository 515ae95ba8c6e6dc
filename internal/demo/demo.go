// Package demo is a small sample application exercising the window
// core end to end: a two-pane scrollable layout, a status bar, and a
// help popup toggled on top of it, all driven through window.Root's
// bind/show/hide/expose/flush protocol rather than any Elm-style
// model of its own.
package demo

import (
	"fmt"

	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/renderbuf"
	"github.com/elvisnm/tuiwin/window"
)

// Demo owns the window tree built over a single window.Root and the
// small bit of UI state (which pane is focused, whether help is
// shown) that isn't already tracked by the core itself.
type Demo struct {
	root *window.Root

	left  *Pane
	right *Pane
	focus int // 0 = left, 1 = right

	status *window.Window
	help   *window.Window
	helpOn bool

	Quit bool
}

// New builds the demo's window tree over term, sized to term's
// current dimensions, and gives the left pane initial focus.
func New(term window.Terminal) *Demo {
	root := window.NewRoot(term)
	d := &Demo{root: root}

	lines, cols := term.Size()
	d.layout(lines, cols)

	d.left.Window().TakeFocus()
	d.focus = 0

	d.root.Bind(window.Key, 0, func(owner any, ev window.EventType, info any, data any) int {
		return boolToInt(d.HandleKey(info.(*window.KeyInfo)))
	}, nil)

	d.root.Bind(window.GeomChange, 0, func(owner any, ev window.EventType, info any, data any) int {
		gi := info.(*window.GeomChangeInfo)
		d.Resize(gi.Rect.Lines, gi.Rect.Cols)
		return 0
	}, nil)

	return d
}

func (d *Demo) layout(lines, cols int) {
	contentLines := lines - 1 // reserve the bottom row for the status bar
	if contentLines < 1 {
		contentLines = 1
	}
	leftCols := cols / 2
	rightCols := cols - leftCols

	leftLines := sampleLines("left", 40)
	rightLines := sampleLines("right", 40)

	if d.left == nil {
		d.left = NewPane(&d.root.Window, rect.New(0, 0, contentLines, leftCols), "left", leftLines)
		d.right = NewPane(&d.root.Window, rect.New(0, leftCols, contentLines, rightCols), "right", rightLines)
		d.status = d.newStatusBar(lines-1, cols)
		d.help = d.newHelpPopup(lines, cols)
	} else {
		d.left.Window().SetGeometry(rect.New(0, 0, contentLines, leftCols))
		d.right.Window().SetGeometry(rect.New(0, leftCols, contentLines, rightCols))
		d.status.SetGeometry(rect.New(lines-1, 0, 1, cols))
		d.help.SetGeometry(helpRect(lines, cols))
	}
}

func sampleLines(label string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s content row %d", label, i)
	}
	return out
}

func (d *Demo) newStatusBar(row, cols int) *window.Window {
	w := window.New(&d.root.Window, rect.New(row, 0, 1, cols), 0)
	w.SetPen(StatusPen)
	w.Bind(window.Expose, 0, func(owner any, ev window.EventType, info any, data any) int {
		ei := info.(*window.ExposeInfo)
		hint := " tab: switch pane   ↑/↓: scroll   ?: help   q: quit "
		ei.RB.WriteText(0, 0, clipWidth(hint, cols), HintPen)
		return 0
	}, nil)
	return w
}

func helpRect(lines, cols int) rect.Rect {
	h, w := 7, 40
	if w > cols {
		w = cols
	}
	if h > lines {
		h = lines
	}
	return rect.New((lines-h)/2, (cols-w)/2, h, w)
}

func (d *Demo) newHelpPopup(lines, cols int) *window.Window {
	w := window.New(&d.root.Window, helpRect(lines, cols), window.Hidden|window.StealInput)
	w.SetPen(PopupPen)
	w.Bind(window.Expose, 0, func(owner any, ev window.EventType, info any, data any) int {
		ei := info.(*window.ExposeInfo)
		drawHelpBox(ei.RB, w.GetGeometry())
		return 0
	}, nil)
	w.Bind(window.Key, 0, func(owner any, ev window.EventType, info any, data any) int {
		ki := info.(*window.KeyInfo)
		if ki.Str == "?" || ki.Str == "esc" {
			d.toggleHelp()
			return 1
		}
		return 1 // swallow everything else: help is modal while open
	}, nil)
	return w
}

func drawHelpBox(rb *renderbuf.Buffer, geom rect.Rect) {
	lines, cols := geom.Lines, geom.Cols
	rb.WriteText(0, 0, BorderRunes.TopLeft+repeat(BorderRunes.Top, cols-2)+BorderRunes.TopRight, nil)
	rb.WriteText(lines-1, 0, BorderRunes.BottomLeft+repeat(BorderRunes.Bottom, cols-2)+BorderRunes.BottomRight, nil)
	for y := 1; y < lines-1; y++ {
		rb.WriteText(y, 0, BorderRunes.Left, nil)
		rb.WriteText(y, cols-1, BorderRunes.Right, nil)
	}
	body := []string{
		" help",
		"",
		" tab / shift+tab  switch pane",
		" up/down, j/k     scroll pane",
		" ?                close help",
	}
	for i, s := range body {
		if 1+i >= lines-1 {
			break
		}
		rb.WriteText(1+i, 1, clipWidth(s, cols-2), nil)
	}
}

func (d *Demo) toggleHelp() {
	d.helpOn = !d.helpOn
	if d.helpOn {
		d.help.Show()
		d.help.RaiseToFront()
		d.help.TakeFocus()
	} else {
		d.help.Hide()
		d.focusPane(d.focus)
	}
}

func (d *Demo) focusPane(idx int) {
	d.focus = idx
	if idx == 0 {
		d.left.Window().TakeFocus()
	} else {
		d.right.Window().TakeFocus()
	}
}

// HandleKey implements the demo's own chrome (pane switching, help
// toggle, quit) on top of whatever the focused pane's own Key hook
// left unconsumed. It is bound on the root itself so it only ever
// sees keys the input router's normal walk didn't already claim.
func (d *Demo) HandleKey(info *window.KeyInfo) bool {
	switch {
	case matches(info.Str, Keys.Quit):
		d.Quit = true
		return true
	case matches(info.Str, Keys.Help):
		if !d.helpOn {
			d.toggleHelp()
			return true
		}
	case matches(info.Str, Keys.Tab), matches(info.Str, Keys.ShiftTab):
		if !d.helpOn {
			d.focusPane(1 - d.focus)
			return true
		}
	}
	return false
}

// Resize re-lays the demo out to the terminal's new size and exposes
// the whole tree, called whenever the root's geometry changes.
func (d *Demo) Resize(lines, cols int) {
	d.layout(lines, cols)
	d.root.Expose(rect.New(0, 0, lines, cols))
}

// Flush drains the root's pending work: applied hierarchy changes,
// damaged-region repaint, and cursor restore.
func (d *Demo) Flush() { d.root.Flush() }

// Root returns the underlying window.Root.
func (d *Demo) Root() *window.Root { return d.root }
