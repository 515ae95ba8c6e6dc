// Package renderbuf implements the per-flush drawing surface the
// window core paints into: a cell grid with a save/restore stack for
// clipping, translation and pen state, plus child-masking so a
// window's own expose callback cannot redraw over a child already
// handled.
package renderbuf

import (
	"github.com/mattn/go-runewidth"

	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
)

// Cell is one terminal cell: a single glyph (which may be the empty
// string for a skipped/masked cell) plus the pen that styles it.
type Cell struct {
	Text string
	Pen  *pen.Pen
}

// frame is one entry on the save/restore stack.
type frame struct {
	clip      rect.Rect
	transTop  int
	transLeft int
	pen       *pen.Pen
}

// Buffer is a lines x cols grid of Cell, addressed in the root
// window's coordinate frame. Drawing methods apply the current
// translate/clip/pen state from the top of the save stack.
type Buffer struct {
	lines, cols int
	grid        [][]Cell
	masked      [][]bool

	stack []frame
}

// New allocates a Buffer covering lines x cols cells, matching the
// root window's current size.
func New(lines, cols int) *Buffer {
	grid := make([][]Cell, lines)
	masked := make([][]bool, lines)
	for i := range grid {
		grid[i] = make([]Cell, cols)
		masked[i] = make([]bool, cols)
	}

	return &Buffer{
		lines:  lines,
		cols:   cols,
		grid:   grid,
		masked: masked,
		stack:  []frame{{clip: rect.New(0, 0, lines, cols)}},
	}
}

// Lines reports the buffer's height.
func (b *Buffer) Lines() int { return b.lines }

// Cols reports the buffer's width.
func (b *Buffer) Cols() int { return b.cols }

func (b *Buffer) top() frame {
	return b.stack[len(b.stack)-1]
}

// Save pushes a copy of the current clip/translate/pen state.
func (b *Buffer) Save() {
	b.stack = append(b.stack, b.top())
}

// Restore pops back to the previously saved state. Restoring past the
// initial frame is a no-op, matching a render buffer that is never
// over-restored by well-behaved expose code.
func (b *Buffer) Restore() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Clip intersects the current clip region (in the buffer's absolute
// frame) with r translated by the current offset.
func (b *Buffer) Clip(r rect.Rect) {
	f := b.top()
	abs := r.Translate(f.transTop, f.transLeft)
	if clipped, ok := rect.Intersect(f.clip, abs); ok {
		f.clip = clipped
	} else {
		f.clip = rect.Rect{}
	}
	b.stack[len(b.stack)-1] = f
}

// Translate shifts the local-to-absolute offset used by subsequent
// drawing and clip calls.
func (b *Buffer) Translate(dy, dx int) {
	f := b.top()
	f.transTop += dy
	f.transLeft += dx
	b.stack[len(b.stack)-1] = f
}

// SetPen sets the pen subsequent writes use when none is supplied
// explicitly.
func (b *Buffer) SetPen(p *pen.Pen) {
	f := b.top()
	f.pen = p
	b.stack[len(b.stack)-1] = f
}

// Mask marks r (in local coordinates) as already painted by a
// front-of-z-order child, so later writes at the same window level
// skip those cells. r is translated and clipped the same way Clip is.
func (b *Buffer) Mask(r rect.Rect) {
	f := b.top()
	abs := r.Translate(f.transTop, f.transLeft)
	clipped, ok := rect.Intersect(f.clip, abs)
	if !ok {
		return
	}
	for y := clipped.Top; y < clipped.Bottom(); y++ {
		for x := clipped.Left; x < clipped.Right(); x++ {
			b.masked[y][x] = true
		}
	}
}

// WriteText draws s starting at local (line, col), honoring the
// current clip, translate and pen, and accounting for double-width
// runes via go-runewidth so column math stays correct.
func (b *Buffer) WriteText(line, col int, s string, p *pen.Pen) {
	f := b.top()
	if p == nil {
		p = f.pen
	}

	y := line + f.transTop
	x := col + f.transLeft

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if b.inClip(f.clip, y, x) && !b.masked[y][x] {
			b.grid[y][x] = Cell{Text: string(r), Pen: p}
			for fill := 1; fill < w; fill++ {
				if b.inClip(f.clip, y, x+fill) {
					b.grid[y][x+fill] = Cell{Text: "", Pen: p}
				}
			}
		}
		x += w
	}
}

// Erase clears r (local coordinates) to blank cells styled with p.
func (b *Buffer) Erase(r rect.Rect, p *pen.Pen) {
	f := b.top()
	abs := r.Translate(f.transTop, f.transLeft)
	clipped, ok := rect.Intersect(f.clip, abs)
	if !ok {
		return
	}
	for y := clipped.Top; y < clipped.Bottom(); y++ {
		for x := clipped.Left; x < clipped.Right(); x++ {
			if !b.masked[y][x] {
				b.grid[y][x] = Cell{Text: " ", Pen: p}
			}
		}
	}
}

func (b *Buffer) inClip(clip rect.Rect, y, x int) bool {
	if y < 0 || y >= b.lines || x < 0 || x >= b.cols {
		return false
	}
	return y >= clip.Top && y < clip.Bottom() && x >= clip.Left && x < clip.Right()
}

// Cell returns the cell at absolute (line, col), ignoring clip state.
func (b *Buffer) Cell(line, col int) Cell {
	return b.grid[line][col]
}

// CellWriter is the terminal-side capability FlushRect needs: writing
// one styled glyph at an absolute cell. window.Terminal satisfies this
// structurally, without renderbuf importing window.
type CellWriter interface {
	WriteCell(line, col int, text string, p *pen.Pen)
}

// FlushRect writes every cell of r (absolute coordinates, already
// clamped to the buffer by the caller) to w, row-major, skipping
// double-width continuation cells (their Text is the empty string —
// the glyph before them already covered that column).
func (b *Buffer) FlushRect(w CellWriter, r rect.Rect) {
	top, left := max(r.Top, 0), max(r.Left, 0)
	bottom, right := min(r.Bottom(), b.lines), min(r.Right(), b.cols)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			c := b.grid[y][x]
			if c.Text == "" {
				continue
			}
			w.WriteCell(y, x, c.Text, c.Pen)
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
