// Package focustrap contains keyboard focus within an active surface.
//
// Traps form an explicit stack with the same discipline as the escape
// dismissal stack: only the top frame responds to Tab wrapping and
// focus-return enforcement, so nested surfaces keep inner containment
// authoritative even when their boundaries are portaled elsewhere in the
// rendered tree.
package focustrap

import (
	stderrors "errors"

	"github.com/go-drift/headless/pkg/dom"
	"github.com/go-drift/headless/pkg/errors"
)

var errNoFocusable = stderrors.New("container has no focusable descendants")

// Manager owns the trap stack and the document-level subscriptions shared
// by every trap it activates. Subscriptions exist only while the stack is
// non-empty.
type Manager struct {
	doc         dom.Document
	stack       []*Trap
	removeKey   func()
	removeFocus func()
}

// NewManager returns a manager bound to the given document.
func NewManager(doc dom.Document) *Manager {
	return &Manager{doc: doc}
}

// Trap is one activation frame: the boundary element, a weak reference to
// the element focused before activation, and a lazily recomputed,
// document-order list of focusable descendants.
type Trap struct {
	m          *Manager
	container  dom.Element
	returnTo   dom.Element // validated via Connected before use, never owned
	focusables []dom.Element
	dirty      bool
	active     bool
}

// Activate pushes a new trap frame for container, records the currently
// focused element as the return target, and moves focus into the container:
// to its first focusable descendant, or to the container itself when none
// exist (reported as a recoverable warning, never fatal).
//
// Activating a container that already has an active trap is programmer
// misuse and panics; deactivate the existing trap first.
func (m *Manager) Activate(container dom.Element) *Trap {
	for _, existing := range m.stack {
		if existing.container == container {
			panic("focustrap: container already trapped; deactivate first")
		}
	}
	t := &Trap{
		m:         m,
		container: container,
		returnTo:  m.doc.ActiveElement(),
		dirty:     true,
		active:    true,
	}
	m.stack = append(m.stack, t)
	if len(m.stack) == 1 {
		opts := dom.ListenerOptions{Capture: true}
		m.removeKey = m.doc.AddListener(dom.KeyDown, m.handleKey, opts)
		m.removeFocus = m.doc.AddListener(dom.FocusIn, m.handleFocusIn, opts)
	}
	t.focusInitial()
	return t
}

// Deactivate pops the trap's frame from wherever it sits in the stack and
// restores focus to the element focused before activation, provided that
// element is still attached to the document; when it is not, restoration is
// silently skipped. Deactivating an already-inactive trap is a no-op.
func (t *Trap) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	m := t.m
	for i, existing := range m.stack {
		if existing == t {
			m.stack = append(m.stack[:i], m.stack[i+1:]...)
			break
		}
	}
	if len(m.stack) == 0 {
		if m.removeKey != nil {
			m.removeKey()
			m.removeKey = nil
		}
		if m.removeFocus != nil {
			m.removeFocus()
			m.removeFocus = nil
		}
	}
	t.restoreFocus()
}

// restoreFocus is best-effort: a host whose return target misbehaves during
// teardown must not take the surface down with it.
func (t *Trap) restoreFocus() {
	defer errors.Recover("focustrap.Deactivate")
	if t.returnTo != nil && t.returnTo.Connected() {
		t.returnTo.Focus()
	}
}

// Active reports whether the trap currently holds a frame on the stack.
func (t *Trap) Active() bool { return t.active }

// Invalidate marks the focusable list stale after a boundary mutation.
// Recomputation is deferred until the list is next needed.
func (t *Trap) Invalidate() { t.dirty = true }

// list returns the focusable descendants in document order, recomputing
// after an Invalidate.
func (t *Trap) list() []dom.Element {
	if t.dirty {
		t.focusables = collectFocusable(t.container)
		t.dirty = false
	}
	return t.focusables
}

func (t *Trap) focusInitial() {
	if list := t.list(); len(list) > 0 {
		list[0].Focus()
		return
	}
	errors.Report(&errors.HeadlessError{
		Op:   "focustrap.Activate",
		Kind: errors.KindFocus,
		Err:  errNoFocusable,
	})
	t.container.Focus()
}

func (m *Manager) top() *Trap {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// handleKey implements Tab wrapping for the top frame only. Tab presses in
// the middle of the focusable list are left to the host's normal traversal.
func (m *Manager) handleKey(e *dom.Event) {
	top := m.top()
	if top == nil || e.Key != dom.KeyTab {
		return
	}
	list := top.list()
	if len(list) == 0 {
		// Nothing to traverse; keep focus pinned on the container.
		e.PreventDefault()
		top.container.Focus()
		return
	}
	active := m.doc.ActiveElement()
	if e.ShiftKey {
		if active == list[0] {
			e.PreventDefault()
			list[len(list)-1].Focus()
		}
		return
	}
	if active == list[len(list)-1] {
		e.PreventDefault()
		list[0].Focus()
	}
}

// handleFocusIn forces focus back into the top frame's container whenever it
// lands outside by any means, including programmatic focus moves.
func (m *Manager) handleFocusIn(e *dom.Event) {
	top := m.top()
	if top == nil {
		return
	}
	if e.Target != nil && top.container.Contains(e.Target) {
		return
	}
	if list := top.list(); len(list) > 0 {
		list[0].Focus()
		return
	}
	top.container.Focus()
}

// Focusable reports whether el participates in sequential focus: zero or
// positive tab order, not disabled, not hidden.
func Focusable(el dom.Element) bool {
	return el != nil && el.TabIndex() >= 0 && !el.Disabled() && !el.Hidden()
}

// collectFocusable returns the focusable descendants of root in document
// order (pre-order traversal). The root itself is not included; hidden
// subtrees are skipped entirely.
func collectFocusable(root dom.Element) []dom.Element {
	var out []dom.Element
	var walk func(el dom.Element)
	walk = func(el dom.Element) {
		for _, child := range el.Children() {
			if child.Hidden() {
				continue
			}
			if Focusable(child) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(root)
	return out
}
