package testing

import "github.com/go-drift/headless/pkg/dom"

type listener struct {
	typ     dom.EventType
	handler dom.Handler
	capture bool
	removed bool
}

// Document is an in-memory dom.Document. It owns a root node, dispatches
// events to listeners in registration order, and moves focus synchronously,
// emitting a FocusIn event for every focus change the way a browser does.
type Document struct {
	root      *Node
	active    dom.Element
	listeners []*listener
}

// NewDocument returns a document with an empty, connected root node.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Node{doc: d, Label: "root"}
	return d
}

// Root returns the document's root node.
func (d *Document) Root() *Node { return d.root }

// AddListener implements dom.EventTarget.
func (d *Document) AddListener(t dom.EventType, h dom.Handler, opts dom.ListenerOptions) (remove func()) {
	l := &listener{typ: t, handler: h, capture: opts.Capture}
	d.listeners = append(d.listeners, l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		for i, existing := range d.listeners {
			if existing == l {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// ActiveElement implements dom.Document.
func (d *Document) ActiveElement() dom.Element { return d.active }

// ListenerCount returns the number of live listeners for t. Tests use it to
// assert that primitives leave no idle listeners behind.
func (d *Document) ListenerCount(t dom.EventType) int {
	n := 0
	for _, l := range d.listeners {
		if l.typ == t {
			n++
		}
	}
	return n
}

// Dispatch delivers an event to every listener of its type, in registration
// order, against a snapshot of the listener list so handlers may register
// and unregister freely while the event propagates.
func (d *Document) Dispatch(e *dom.Event) {
	snapshot := make([]*listener, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, l := range snapshot {
		if l.removed || l.typ != e.Type {
			continue
		}
		l.handler(e)
	}
}

// PressKey dispatches a KeyDown event for the named key and returns it so
// tests can inspect DefaultPrevented.
func (d *Document) PressKey(key string, shift bool) *dom.Event {
	e := &dom.Event{Type: dom.KeyDown, Target: d.active, Key: key, ShiftKey: shift}
	d.Dispatch(e)
	return e
}

// PointerDown dispatches a PointerDown event targeting the given node.
func (d *Document) PointerDown(target *Node) *dom.Event {
	e := &dom.Event{Type: dom.PointerDown, Target: target}
	d.Dispatch(e)
	return e
}

// setFocus moves focus to n and emits FocusIn. Focusing the already-active
// element is a no-op, matching host behavior and keeping forced focus
// returns from looping.
func (d *Document) setFocus(n *Node) {
	if d.active == dom.Element(n) {
		return
	}
	d.active = n
	d.Dispatch(&dom.Event{Type: dom.FocusIn, Target: n})
}
