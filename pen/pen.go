// Package pen implements the reference-counted styling object the
// window core shares between windows without knowing anything about
// how it renders.
package pen

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Pen wraps an immutable lipgloss.Style behind reference counting, so
// a window replacing its pen can drop its reference without affecting
// siblings still sharing the same styling. Callers never mutate a
// Pen's style in place; Blend and Copy return a new one.
type Pen struct {
	style lipgloss.Style
	refs  *int
}

// New creates a Pen with a fresh reference count of one.
func New(style lipgloss.Style) *Pen {
	refs := 1
	return &Pen{style: style, refs: &refs}
}

// Ref increments the reference count and returns the same Pen, making
// it convenient to write `win.pen = pen.Ref(other)`.
func Ref(p *Pen) *Pen {
	if p == nil {
		return nil
	}
	*p.refs++
	return p
}

// Unref decrements the reference count. Once it reaches zero nothing
// further is required of the caller (the pen has no finalizer); the
// count only exists so callers can assert a pen was fully released in
// tests.
func Unref(p *Pen) {
	if p == nil {
		return
	}
	*p.refs--
}

// RefCount reports the current reference count, for tests.
func (p *Pen) RefCount() int {
	if p == nil {
		return 0
	}
	return *p.refs
}

// Copy returns an independent Pen (a fresh reference count of one)
// with src's style. With onlyUnset and a non-nil dst, the result keeps
// dst's style and takes from src only the attributes dst leaves unset.
// A nil src returns dst itself.
func Copy(dst, src *Pen, onlyUnset bool) *Pen {
	if src == nil {
		return dst
	}
	if dst == nil || !onlyUnset {
		return New(src.style)
	}

	merged := dst.style.Inherit(src.style)
	return New(merged)
}

// Style returns the underlying lipgloss.Style for rendering.
func (p *Pen) Style() lipgloss.Style {
	if p == nil {
		return lipgloss.NewStyle()
	}
	return p.style
}

// Blend interpolates between two pens' foreground colors in Luv space
// (through go-colorful), producing a third pen useful for transient
// visual states such as a pressed or partially-spun indicator.
func Blend(a, b *Pen, t float64) *Pen {
	ac, aok := colorful.MakeColor(a.Style().GetForeground())
	bc, bok := colorful.MakeColor(b.Style().GetForeground())
	if !aok || !bok {
		return New(a.Style())
	}

	blended := ac.BlendLuv(bc, t)
	return New(a.Style().Foreground(lipgloss.Color(blended.Hex())))
}
