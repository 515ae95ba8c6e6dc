package term

import (
	"testing"

	"github.com/elvisnm/tuiwin/rect"
	"github.com/elvisnm/tuiwin/window"
)

func TestFakeTermSizeAndResizeFiresRootGeomChange(t *testing.T) {
	ft := NewFake(24, 80)
	root := window.NewRoot(ft)

	if l, c := ft.Size(); l != 24 || c != 80 {
		t.Fatalf("Size = %d,%d, want 24,80", l, c)
	}

	var got rect.Rect
	root.Bind(window.GeomChange, 0, func(owner any, ev window.EventType, info any, data any) int {
		got = info.(*window.GeomChangeInfo).Rect
		return 0
	}, nil)

	ft.Resize(30, 100)
	if got != rect.New(0, 0, 30, 100) {
		t.Fatalf("root rect after resize = %+v, want 0,0,30,100", got)
	}
	if l, c := ft.Size(); l != 30 || c != 100 {
		t.Fatalf("Size after resize = %d,%d, want 30,100", l, c)
	}
}

func TestFakeTermWriteCellAndFlushViaExpose(t *testing.T) {
	ft := NewFake(10, 10)
	root := window.NewRoot(ft)

	win := window.New(&root.Window, rect.New(1, 1, 3, 3), 0)
	win.Bind(window.Expose, 0, func(owner any, ev window.EventType, info any, data any) int {
		ei := info.(*window.ExposeInfo)
		ei.RB.WriteText(0, 0, "x", nil)
		return 0
	}, nil)

	root.Flush()

	if got := ft.Cell(1, 1); got != "x" {
		t.Fatalf("Cell(1,1) = %q, want %q", got, "x")
	}
	if ft.Flushes != 1 {
		t.Fatalf("Flushes = %d, want 1", ft.Flushes)
	}
}

func TestFakeTermCursorRestore(t *testing.T) {
	ft := NewFake(10, 10)
	root := window.NewRoot(ft)

	win := window.New(&root.Window, rect.New(2, 2, 3, 3), 0)
	win.SetCursorPosition(1, 1)
	win.SetCursorVisibility(true)
	win.TakeFocus()

	root.Flush()

	line, col := ft.CursorPosition()
	if line != 3 || col != 3 {
		t.Fatalf("cursor position = %d,%d, want 3,3", line, col)
	}
	if !ft.CursorVisible() {
		t.Fatalf("cursor should be visible")
	}
}

func TestFakeTermScrollRectRecordsCallAndHonorsScrollOK(t *testing.T) {
	ft := NewFake(10, 10)
	ft.ScrollOK = false

	r := rect.New(0, 0, 5, 5)
	ok := ft.ScrollRect(r, 1, 0)
	if ok {
		t.Fatalf("ScrollRect should report failure when ScrollOK is false")
	}
	if len(ft.ScrollCalls) != 1 || ft.ScrollCalls[0].Rect != r {
		t.Fatalf("ScrollCalls = %+v, want one call recording %+v", ft.ScrollCalls, r)
	}
}

func TestFakeTermKeyAndMouseDispatch(t *testing.T) {
	ft := NewFake(10, 10)
	root := window.NewRoot(ft)

	win := window.New(&root.Window, rect.New(0, 0, 10, 10), 0)
	win.TakeFocus()

	var gotKey string
	win.Bind(window.Key, 0, func(owner any, ev window.EventType, info any, data any) int {
		gotKey = info.(*window.KeyInfo).Str
		return 1
	}, nil)

	ft.Key("q")
	if gotKey != "q" {
		t.Fatalf("key delivered = %q, want %q", gotKey, "q")
	}

	var gotMouse window.MouseEventType
	win.Bind(window.Mouse, 0, func(owner any, ev window.EventType, info any, data any) int {
		gotMouse = info.(*window.MouseInfo).Type
		return 1
	}, nil)

	ft.Mouse(window.MousePress, 1, 3, 3)
	if gotMouse != window.MousePress {
		t.Fatalf("mouse event delivered = %v, want MousePress", gotMouse)
	}
}
