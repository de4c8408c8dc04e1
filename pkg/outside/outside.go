// Package outside detects pointer and touch activity outside a registered
// boundary element.
package outside

import "github.com/go-drift/headless/pkg/dom"

// Detector watches document-level pointer-down and touch-start activity in
// the capture phase and reports interactions that land outside a boundary.
type Detector struct {
	doc   dom.EventTarget
	sched dom.Scheduler
}

// NewDetector returns a detector bound to the given document-level event
// target and scheduler.
func NewDetector(doc dom.EventTarget, sched dom.Scheduler) *Detector {
	return &Detector{doc: doc, sched: sched}
}

// Register watches for interactions outside boundary and returns an
// unregister func.
//
// The document-level subscription is attached one event-loop tick after the
// call (the grace tick), so the interaction that opened a surface is never
// observed by the listener that surface just installed. Each registration
// is evaluated independently: overlapping boundaries may all fire for a
// single outside event.
//
// onOutside fires when the event target is neither the boundary nor a
// logical descendant of it (see dom.Element.Contains). The absence of an
// outside interaction is simply the absence of a callback, never an error.
//
// Unregister cancels a still-pending attach, removes live listeners
// synchronously, and is safe to call more than once.
func (d *Detector) Register(boundary dom.Element, onOutside func(*dom.Event)) (unregister func()) {
	reg := &registration{boundary: boundary, onOutside: onOutside}
	d.sched.NextTick(func() {
		if reg.cancelled {
			return
		}
		opts := dom.ListenerOptions{Capture: true}
		reg.removers = append(reg.removers,
			d.doc.AddListener(dom.PointerDown, reg.handle, opts),
			d.doc.AddListener(dom.TouchStart, reg.handle, opts),
		)
	})
	return reg.cancel
}

type registration struct {
	boundary  dom.Element
	onOutside func(*dom.Event)
	removers  []func()
	cancelled bool
}

func (r *registration) handle(e *dom.Event) {
	if r.cancelled {
		return
	}
	if e.Target != nil && r.boundary != nil && r.boundary.Contains(e.Target) {
		return
	}
	if r.onOutside != nil {
		r.onOutside(e)
	}
}

func (r *registration) cancel() {
	if r.cancelled {
		return
	}
	r.cancelled = true
	for _, remove := range r.removers {
		remove()
	}
	r.removers = nil
}
