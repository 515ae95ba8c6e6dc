package window

import (
	"testing"

	"github.com/elvisnm/tuiwin/rect"
)

func TestRestoreHidesCursorWhenNothingFocused(t *testing.T) {
	term := newStubTerm(10, 10)
	root := NewRoot(term)
	New(&root.Window, rect.New(0, 0, 5, 5), 0)

	root.Flush()

	if term.cursorVisible {
		t.Fatal("with no focused window the terminal cursor should be hidden")
	}
}

func TestRestorePlacesCursorAtFocusedWindowCell(t *testing.T) {
	term := newStubTerm(10, 10)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(2, 3, 4, 4), 0)

	win.SetCursorPosition(1, 2)
	win.TakeFocus()
	root.Flush()

	if !term.cursorVisible {
		t.Fatal("focused window with a visible cursor should show the terminal cursor")
	}
	if term.cursorLine != 3 || term.cursorCol != 5 {
		t.Fatalf("cursor at %d,%d, want 3,5", term.cursorLine, term.cursorCol)
	}
}

func TestRestoreHidesCursorWhenCellOccludedBySibling(t *testing.T) {
	term := newStubTerm(10, 10)
	root := NewRoot(term)
	back := New(&root.Window, rect.New(0, 0, 5, 5), 0)
	New(&root.Window, rect.New(0, 0, 2, 2), 0) // front sibling over back's (0..1, 0..1)

	back.SetCursorPosition(1, 1)
	back.TakeFocus()
	root.Flush()

	if term.cursorVisible {
		t.Fatal("a cursor cell under a front sibling should hide the terminal cursor")
	}
}

func TestRestoreHidesCursorWhenCellUnderOwnChild(t *testing.T) {
	term := newStubTerm(10, 10)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(0, 0, 5, 5), 0)
	New(win, rect.New(0, 0, 2, 2), 0)

	win.SetCursorPosition(1, 1)
	win.TakeFocus()
	root.Flush()

	if term.cursorVisible {
		t.Fatal("a cursor cell under the window's own child should hide the terminal cursor")
	}
}

func TestRestoreHidesCursorWhenCursorMarkedInvisible(t *testing.T) {
	term := newStubTerm(10, 10)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(0, 0, 5, 5), 0)

	win.TakeFocus()
	win.SetCursorVisibility(false)
	root.Flush()

	if term.cursorVisible {
		t.Fatal("a window that marked its cursor invisible should hide the terminal cursor")
	}
}

func TestRepositionOfFocusedWindowMovesCursor(t *testing.T) {
	term := newStubTerm(20, 20)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(2, 2, 4, 4), 0)

	win.SetCursorPosition(0, 0)
	win.TakeFocus()
	root.Flush()

	win.Reposition(5, 6)
	root.Flush()

	if term.cursorLine != 5 || term.cursorCol != 6 {
		t.Fatalf("cursor after reposition at %d,%d, want 5,6", term.cursorLine, term.cursorCol)
	}
}
