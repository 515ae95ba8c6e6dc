package window

import (
	"testing"

	"github.com/elvisnm/tuiwin/rect"
)

func TestNewRootGeometry(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)

	got := root.GetGeometry()
	want := rect.New(0, 0, 24, 80)
	if got != want {
		t.Fatalf("root geometry = %+v, want %+v", got, want)
	}
	if root.Bottom() != 24 || root.Right() != 80 {
		t.Fatalf("Bottom/Right = %d/%d, want 24/80", root.Bottom(), root.Right())
	}
}

func TestNewChildGeometryAndAbs(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)

	outer := New(&root.Window, rect.New(3, 10, 4, 20), 0)
	if outer.Bottom() != 7 || outer.Right() != 30 {
		t.Fatalf("outer Bottom/Right = %d/%d, want 7/30", outer.Bottom(), outer.Right())
	}

	inner := New(outer, rect.New(2, 1, 1, 10), 0)
	abs := inner.GetAbsGeometry()
	want := rect.New(5, 11, 1, 10)
	if abs != want {
		t.Fatalf("inner abs geometry = %+v, want %+v", abs, want)
	}
}

func TestSetGeometryFiresGeomChangeOnlyWhenChanged(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(0, 0, 4, 15), 0)

	var fired []GeomChangeInfo
	win.Bind(GeomChange, 0, func(owner any, ev EventType, info any, data any) int {
		fired = append(fired, *info.(*GeomChangeInfo))
		return 0
	}, nil)

	win.Resize(4, 15) // no-op, same geometry
	if len(fired) != 0 {
		t.Fatalf("Resize to identical geometry fired %d events, want 0", len(fired))
	}

	win.Resize(5, 15)
	win.Reposition(5, 15)
	if len(fired) != 2 {
		t.Fatalf("got %d GeomChange events, want 2", len(fired))
	}
	if fired[0].OldRect != rect.New(0, 0, 4, 15) || fired[0].Rect != rect.New(0, 0, 5, 15) {
		t.Fatalf("first GeomChange = %+v", fired[0])
	}
	if fired[1].OldRect != rect.New(0, 0, 5, 15) || fired[1].Rect != rect.New(5, 15, 5, 15) {
		t.Fatalf("second GeomChange = %+v", fired[1])
	}
}

func TestShowHideTogglesVisible(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(0, 0, 5, 5), Hidden)

	if win.IsVisible() {
		t.Fatal("window created with Hidden flag should not be visible")
	}
	win.Show()
	if !win.IsVisible() {
		t.Fatal("Show() should make the window visible")
	}
	win.Hide()
	if win.IsVisible() {
		t.Fatal("Hide() should make the window invisible")
	}
}

func TestDestroyFiresInReverseBindOrder(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	win := New(&root.Window, rect.New(0, 0, 5, 5), 0)

	var order []int
	win.Bind(Destroy, 0, func(owner any, ev EventType, info any, data any) int {
		order = append(order, 1)
		return 0
	}, nil)
	win.Bind(Destroy, 0, func(owner any, ev EventType, info any, data any) int {
		order = append(order, 2)
		return 0
	}, nil)

	win.Destroy()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Fatalf("destroy order = %v, want [2 1]", order)
	}
}

func TestDestroyUnlinksFromParent(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 5, 5), 0)
	b := New(&root.Window, rect.New(0, 0, 5, 5), 0)

	a.Destroy()

	if len(root.Children()) != 1 || root.Children()[0] != b {
		t.Fatalf("expected only b to remain, got %v", root.Children())
	}
}

func TestChildrenFrontToBackOrder(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	b := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	c := New(&root.Window, rect.New(0, 0, 1, 1), Lowest)

	kids := root.Children()
	if len(kids) != 3 || kids[0] != b || kids[1] != a || kids[2] != c {
		t.Fatalf("unexpected child order: %v (a=%p b=%p c=%p)", kids, a, b, c)
	}
}

func TestRootParentFlagReinterpretsRect(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	outer := New(&root.Window, rect.New(5, 5, 10, 10), 0)

	popup := New(outer, rect.New(2, 2, 3, 3), RootParent)
	if popup.Parent() != &root.Window {
		t.Fatal("RootParent window should be parented to the root, not its nominal parent")
	}
	want := rect.New(7, 7, 3, 3)
	if popup.GetGeometry() != want {
		t.Fatalf("RootParent geometry = %+v, want %+v", popup.GetGeometry(), want)
	}
}
