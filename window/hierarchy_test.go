package window

import (
	"testing"

	"github.com/elvisnm/tuiwin/rect"
)

func TestRaiseToFrontAppliesAtFlush(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	b := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	c := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	// order is c, b, a (most recently created in front)

	a.RaiseToFront()
	if root.Children()[0] != c {
		t.Fatal("hierarchy change must not apply before Flush")
	}

	root.Flush()
	kids := root.Children()
	if kids[0] != a || kids[1] != c || kids[2] != b {
		t.Fatalf("after RaiseToFront, order = %v, want [a c b]", kids)
	}
}

func TestLowerToBackAppliesAtFlush(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	b := New(&root.Window, rect.New(0, 0, 1, 1), 0)

	b.LowerToBack()
	root.Flush()

	kids := root.Children()
	if kids[0] != a || kids[1] != b {
		t.Fatalf("after LowerToBack, order = %v, want [a b]", kids)
	}
}

func TestRaiseOneStep(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	b := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	c := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	// order: c, b, a

	a.Raise()
	root.Flush()

	kids := root.Children()
	if kids[0] != c || kids[1] != a || kids[2] != b {
		t.Fatalf("after one Raise, order = %v, want [c a b]", kids)
	}
}

func TestDestroyedWindowPurgedFromHierarchyQueue(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 1, 1), 0)
	New(&root.Window, rect.New(0, 0, 1, 1), 0)

	a.RaiseToFront()
	a.Destroy()

	// Must not panic touching a destroyed/unlinked window during flush.
	root.Flush()

	if len(root.Children()) != 1 {
		t.Fatalf("expected 1 surviving child, got %d", len(root.Children()))
	}
}

func TestRestackExposesParentOverWindowRect(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 5, 5), 0)
	b := New(&root.Window, rect.New(2, 2, 5, 5), 0)
	root.Flush() // drain the initial show-time expose

	var got []rect.Rect
	root.Bind(Expose, 0, func(owner any, ev EventType, info any, data any) int {
		got = append(got, info.(*ExposeInfo).Rect)
		return 0
	}, nil)

	b.RaiseToFront()
	root.Flush()

	found := false
	for _, r := range got {
		if r == b.rect {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Expose covering b's rect %v after RaiseToFront, got %v", b.rect, got)
	}

	got = nil
	a.Lower()
	root.Flush()
	found = false
	for _, r := range got {
		if r == a.rect {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Expose covering a's rect %v after Lower, got %v", a.rect, got)
	}
}

func TestExposeCallbacksFireInZOrderAfterRestack(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	// Creation order back-to-front: C, B, A (A ends up front-most).
	c := New(&root.Window, rect.New(0, 0, 4, 4), 0)
	b := New(&root.Window, rect.New(0, 0, 4, 4), 0)
	a := New(&root.Window, rect.New(0, 0, 4, 4), 0)
	root.Flush()

	var order []string
	record := func(name string, w *Window) {
		w.Bind(Expose, 0, func(owner any, ev EventType, info any, data any) int {
			order = append(order, name)
			return 0
		}, nil)
	}
	record("a", a)
	record("b", b)
	record("c", c)
	record("root", &root.Window)

	c.RaiseToFront()
	root.Expose(rect.New(0, 0, 24, 80))
	root.Flush()

	want := []string{"c", "a", "b", "root"}
	if len(order) != len(want) {
		t.Fatalf("expose order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expose order = %v, want %v", order, want)
		}
	}
}

func TestRaiseWithNoPriorSiblingIsNoop(t *testing.T) {
	term := newStubTerm(24, 80)
	root := NewRoot(term)
	a := New(&root.Window, rect.New(0, 0, 1, 1), 0)

	a.Raise()
	root.Flush()

	if root.Children()[0] != a {
		t.Fatal("raising the only child should be a no-op")
	}
}
