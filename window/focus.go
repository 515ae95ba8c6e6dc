package window

// TakeFocus makes w the single focused window in its tree. Focus gain
// cascades upward: every ancestor's focusedChild slot is pointed at
// the next step down, the previous holder of each reassigned slot is
// told it lost focus first, and w itself ends up with isFocused set
// and a FocusIn fired on it.
func (w *Window) TakeFocus() {
	w.focusGained(nil)
}

// focusGained walks up the tree installing the new focus path. child
// is the window one step below w on the new path, or nil when w is
// the window actually taking focus.
func (w *Window) focusGained(child *Window) {
	if w.focusedChild != nil && w.focusedChild != child {
		w.focusedChild.focusLost()
	}

	if w.parent != nil {
		if w.flags&flagVisible != 0 {
			w.parent.focusGained(w)
		}
	} else {
		w.findRoot().requestRestore()
	}

	if child == nil {
		w.isFocused = true
		w.hooks.RunEvent(w, Focus, &FocusInfo{Type: FocusIn, Win: w})
	} else if w.flags&flagFocusChildNotify != 0 {
		w.hooks.RunEvent(w, Focus, &FocusInfo{Type: FocusIn, Win: child})
	}

	w.focusedChild = child
}

// focusLost tears down the focus path below and including w,
// leaf-first: the deepest window's FocusOut fires before its
// ancestors see anything. A window with FocusChildNotify set
// additionally hears about the child slot it is losing.
func (w *Window) focusLost() {
	if w.focusedChild != nil {
		w.focusedChild.focusLost()

		if w.flags&flagFocusChildNotify != 0 {
			w.hooks.RunEvent(w, Focus, &FocusInfo{Type: FocusOut, Win: w.focusedChild})
		}
	}

	if w.isFocused {
		w.isFocused = false
		w.hooks.RunEvent(w, Focus, &FocusInfo{Type: FocusOut, Win: w})
	}
}

// IsFocused reports whether w is the single window in the tree holding
// focus. Before any TakeFocus call, no window does. Ancestors along
// the focus path hold a focusedChild pointer but are not themselves
// focused.
func (w *Window) IsFocused() bool {
	return w.isFocused
}

// SetFocusChildNotify controls whether this window's own hooks hear
// FocusIn/FocusOut for its focusedChild slot being assigned or torn
// down. It is off by default: most container windows don't care which
// of their children currently has focus.
func (w *Window) SetFocusChildNotify(notify bool) {
	if notify {
		w.flags |= flagFocusChildNotify
	} else {
		w.flags &^= flagFocusChildNotify
	}
}
