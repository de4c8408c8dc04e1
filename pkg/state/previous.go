package state

import "github.com/go-drift/headless/pkg/dom"

// Tracker retains the value observed in the prior update cycle.
//
// Ordering is commit-after-read: every Track call within one event-loop turn
// returns the pre-turn value, and the advance to the newest tracked value is
// committed on the next tick, visible from then on. Readers in the current
// cycle therefore always see the previous cycle's value, never the one they
// just passed in.
type Tracker[T any] struct {
	sched   dom.Scheduler
	prev    T
	next    T
	pending bool
}

// NewTracker returns a tracker whose Track reports initial until the first
// commit.
func NewTracker[T any](sched dom.Scheduler, initial T) *Tracker[T] {
	return &Tracker[T]{sched: sched, prev: initial, next: initial}
}

// Track records value for the next cycle and returns the previous cycle's
// value. When Track is called several times in one cycle the last value
// recorded wins the commit.
func (t *Tracker[T]) Track(value T) T {
	t.next = value
	if !t.pending {
		t.pending = true
		t.sched.NextTick(func() {
			t.pending = false
			t.prev = t.next
		})
	}
	return t.prev
}
