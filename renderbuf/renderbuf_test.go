package renderbuf

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/elvisnm/tuiwin/pen"
	"github.com/elvisnm/tuiwin/rect"
)

func TestWriteTextWithinClip(t *testing.T) {
	b := New(5, 10)
	p := pen.New(lipgloss.NewStyle())

	b.WriteText(0, 0, "hi", p)

	if b.Cell(0, 0).Text != "h" {
		t.Fatalf("Cell(0,0) = %q, want %q", b.Cell(0, 0).Text, "h")
	}
	if b.Cell(0, 1).Text != "i" {
		t.Fatalf("Cell(0,1) = %q, want %q", b.Cell(0, 1).Text, "i")
	}
}

func TestClipRestrictsWrites(t *testing.T) {
	b := New(5, 10)
	p := pen.New(lipgloss.NewStyle())

	b.Save()
	b.Clip(rect.New(0, 0, 5, 2)) // only columns 0-1 are writable
	b.WriteText(0, 0, "hello", p)
	b.Restore()

	if b.Cell(0, 0).Text != "h" || b.Cell(0, 1).Text != "e" {
		t.Fatal("expected first two columns written")
	}
	if b.Cell(0, 2).Text != "" {
		t.Fatalf("Cell(0,2) = %q, want empty (outside clip)", b.Cell(0, 2).Text)
	}
}

func TestTranslateOffsetsWrites(t *testing.T) {
	b := New(5, 10)
	p := pen.New(lipgloss.NewStyle())

	b.Save()
	b.Translate(2, 3)
	b.WriteText(0, 0, "x", p)
	b.Restore()

	if b.Cell(2, 3).Text != "x" {
		t.Fatalf("Cell(2,3) = %q, want %q", b.Cell(2, 3).Text, "x")
	}
}

func TestMaskPreventsOverdraw(t *testing.T) {
	b := New(5, 10)
	p := pen.New(lipgloss.NewStyle())

	b.Mask(rect.New(0, 0, 1, 5))
	b.WriteText(0, 0, "blocked", p)

	if b.Cell(0, 0).Text != "" {
		t.Fatalf("Cell(0,0) = %q, want empty (masked)", b.Cell(0, 0).Text)
	}
}

func TestSaveRestoreIsolatesState(t *testing.T) {
	b := New(5, 10)
	p1 := pen.New(lipgloss.NewStyle().Bold(true))
	p2 := pen.New(lipgloss.NewStyle().Italic(true))

	b.SetPen(p1)
	b.Save()
	b.SetPen(p2)
	b.Translate(1, 1)
	b.Restore()

	b.WriteText(0, 0, "z", nil) // should use p1, no translate
	if b.Cell(0, 0).Pen != p1 {
		t.Fatal("expected restored pen to be p1")
	}
}
