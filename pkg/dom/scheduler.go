package dom

// Scheduler defers work to the next turn of the host event loop.
//
// Primitives use it for grace ticks, never for parallelism: scheduled
// callbacks run on the same single thread that dispatches events.
type Scheduler interface {
	// NextTick runs callback on a later event-loop turn, after the
	// currently dispatching event (if any) has finished propagating.
	NextTick(callback func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(callback func())

// NextTick calls f(callback).
func (f SchedulerFunc) NextTick(callback func()) { f(callback) }
