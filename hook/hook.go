// Package hook implements the small ordered event-subscription list
// shared by terminal devices and window nodes.
package hook

// EventType is a bitmask identifying the kind of event a hook fires on.
type EventType uint32

const (
	Unbind EventType = 1 << iota
	Destroy
)

// Func is the callback signature invoked for a matching hook. owner is
// whatever object the List belongs to (a *window.Window, a terminal,
// etc); info carries event-specific data, or nil for Unbind/Destroy.
// The return value is only meaningful to RunEventWhileFalse.
type Func func(owner any, ev EventType, info any, data any) int

// BindFlags controls where Bind inserts a new record.
type BindFlags uint8

const (
	// BindFirst prepends the hook instead of appending it.
	BindFirst BindFlags = 1 << iota
)

type record struct {
	id   int
	mask EventType
	fn   Func
	data any
}

// List is an ordered collection of hook records. The zero value is an
// empty, ready-to-use list.
type List struct {
	records []record
}

// Bind registers fn for events matching mask and returns its id, one
// greater than the largest id currently in the list (or 1 if empty).
// BindFirst in flags inserts at the head; otherwise the hook is
// appended.
func (l *List) Bind(mask EventType, flags BindFlags, fn Func, data any) int {
	maxID := 0
	for _, r := range l.records {
		if r.id > maxID {
			maxID = r.id
		}
	}

	r := record{id: maxID + 1, mask: mask, fn: fn, data: data}

	if flags&BindFirst != 0 {
		l.records = append([]record{r}, l.records...)
	} else {
		l.records = append(l.records, r)
	}

	return r.id
}

// UnbindByID removes the record with the given id. If its mask
// includes Unbind, the callback fires once with kind Unbind and nil
// info before the record is discarded.
func (l *List) UnbindByID(owner any, id int) {
	for i, r := range l.records {
		if r.id != id {
			continue
		}
		if r.mask&Unbind != 0 {
			r.fn(owner, Unbind, nil, r.data)
		}
		l.records = append(l.records[:i], l.records[i+1:]...)
		return
	}
}

// RunEvent invokes every hook whose mask intersects ev, in list order.
// Callback return values are ignored.
func (l *List) RunEvent(owner any, ev EventType, info any) {
	for _, r := range l.records {
		if r.mask&ev != 0 {
			r.fn(owner, ev, info, r.data)
		}
	}
}

// RunEventWhileFalse invokes hooks in list order and stops at the
// first truthy (non-zero) return, which it returns. If none match or
// all return zero, it returns 0.
func (l *List) RunEventWhileFalse(owner any, ev EventType, info any) int {
	for _, r := range l.records {
		if r.mask&ev == 0 {
			continue
		}
		if ret := r.fn(owner, ev, info, r.data); ret != 0 {
			return ret
		}
	}
	return 0
}

// UnbindAndDestroy fires Unbind|Destroy on every hook whose mask
// matches either, in reverse bind order, then discards the whole
// list. The most recently bound hook hears about the teardown first.
func (l *List) UnbindAndDestroy(owner any) {
	for i := len(l.records) - 1; i >= 0; i-- {
		r := l.records[i]
		if r.mask&(Unbind|Destroy) != 0 {
			r.fn(owner, Unbind|Destroy, nil, r.data)
		}
	}
	l.records = nil
}
