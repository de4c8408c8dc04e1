// Package state provides controllable-state synchronization and
// previous-value tracking for widget-owned values.
package state

// Controllable bridges an externally supplied ("controlled") value with an
// internally owned fallback.
//
// Authority is re-derived on every access from the presence of the external
// value; it is never cached as a separate flag that could drift out of sync
// with the owner.
//
// Controllable is not thread-safe. Like every primitive in this module it
// must only be touched from the host's event-loop thread.
type Controllable[T any] struct {
	controlled func() (T, bool)
	fallback   T
	onChange   func(T)
	notifying  bool
}

// NewControllable builds a controllable value.
//
// controlled reports the externally owned value when one is present. It is
// consulted on every access, so an owner that starts or stops supplying a
// value changes authority immediately. Nil means the value is never
// controlled. defaultValue seeds the internal fallback. onChange observes
// every requested change and may be nil.
func NewControllable[T any](controlled func() (T, bool), defaultValue T, onChange func(T)) *Controllable[T] {
	return &Controllable[T]{
		controlled: controlled,
		fallback:   defaultValue,
		onChange:   onChange,
	}
}

// Value returns the controlled value when one is present, otherwise the
// internal fallback.
func (c *Controllable[T]) Value() T {
	if c.controlled != nil {
		if v, ok := c.controlled(); ok {
			return v
		}
	}
	return c.fallback
}

// Request proposes a new value.
//
// onChange is invoked with the proposed value exactly once, synchronously.
// When uncontrolled the fallback advances first, so Value reflects the
// proposal from inside the callback. When controlled the fallback is left
// untouched: the owner decides by re-supplying (or not) a new controlled
// value.
//
// A Request made from within onChange's own synchronous execution still
// advances the uncontrolled fallback but never fires a nested callback,
// guarding against feedback loops.
func (c *Controllable[T]) Request(value T) {
	if !c.isControlled() {
		c.fallback = value
	}
	if c.onChange == nil || c.notifying {
		return
	}
	c.notifying = true
	defer func() { c.notifying = false }()
	c.onChange(value)
}

func (c *Controllable[T]) isControlled() bool {
	if c.controlled == nil {
		return false
	}
	_, ok := c.controlled()
	return ok
}
