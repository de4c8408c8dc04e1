// Package surface composes the interaction primitives into layered UI
// surfaces: a dialog is a dismissable, focus-contained, scroll-locking
// layer; a popover is usually a dismissable layer alone.
//
// The primitives stay agnostic to widget identity. Widgets declare the
// capabilities they need through Config and the controller wires the
// corresponding primitives; nested surfaces inherit the stack discipline of
// the underlying primitives, so only the innermost open surface reacts to
// Escape and Tab.
package surface

import (
	"github.com/go-drift/headless/pkg/dismiss"
	"github.com/go-drift/headless/pkg/dom"
	"github.com/go-drift/headless/pkg/focustrap"
	"github.com/go-drift/headless/pkg/outside"
	"github.com/go-drift/headless/pkg/scrolllock"
)

// Config declares which capabilities a surface needs.
type Config struct {
	// Modal surfaces lock background scrolling while open.
	Modal bool

	// TrapFocus contains keyboard focus within the surface's container.
	TrapFocus bool

	// OnDismiss is invoked when the surface is dismissed by Escape or by an
	// interaction outside its container. Nil leaves dismissal unwired; the
	// surface then closes only through Close.
	OnDismiss func()
}

// Controller wires surfaces against one document's shared primitive state.
// Every surface opened through the same controller shares the same escape
// stack, trap stack, and scroll lock, which is what gives nested surfaces
// their innermost-first behavior.
type Controller struct {
	Traps   *focustrap.Manager
	Escapes *dismiss.Stack
	Outside *outside.Detector
	Scroll  *scrolllock.Lock
}

// NewController builds a controller with freshly wired primitives.
func NewController(doc dom.Document, sched dom.Scheduler, scroll dom.ScrollContainer) *Controller {
	return &Controller{
		Traps:   focustrap.NewManager(doc),
		Escapes: dismiss.NewStack(doc),
		Outside: outside.NewDetector(doc, sched),
		Scroll:  scrolllock.NewLock(scroll),
	}
}

// Surface is one open layer. Close releases everything the surface
// acquired, in reverse acquisition order, exactly once.
type Surface struct {
	closers []func()
	closed  bool
}

// Open activates the configured capabilities against container.
//
// Acquisition order: scroll lock, escape registration, outside-interaction
// registration, focus trap. OnDismiss only reports the dismissal trigger;
// the owner decides whether to Close, matching the controllable-state
// contract where the owner stays authoritative.
func (c *Controller) Open(container dom.Element, cfg Config) *Surface {
	s := &Surface{}
	if cfg.Modal {
		tok := c.Scroll.Acquire()
		s.closers = append(s.closers, func() { c.Scroll.Release(tok) })
	}
	if cfg.OnDismiss != nil {
		s.closers = append(s.closers, c.Escapes.Register(cfg.OnDismiss))
		s.closers = append(s.closers, c.Outside.Register(container, func(*dom.Event) {
			cfg.OnDismiss()
		}))
	}
	if cfg.TrapFocus {
		trap := c.Traps.Activate(container)
		s.closers = append(s.closers, trap.Deactivate)
	}
	return s
}

// Close releases the surface's acquisitions in reverse order. Calling Close
// more than once is a safe no-op; after the first call returns, none of the
// surface's callbacks can fire again.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Closed reports whether Close has run.
func (s *Surface) Closed() bool { return s.closed }
