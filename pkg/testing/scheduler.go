package testing

// Scheduler is a manual dom.Scheduler: queued callbacks run only when Flush
// is called, so each Flush emulates one turn of the host event loop.
type Scheduler struct {
	queue []func()
}

// NextTick implements dom.Scheduler.
func (s *Scheduler) NextTick(callback func()) {
	s.queue = append(s.queue, callback)
}

// Flush runs the callbacks queued so far, in order. Callbacks queued while
// flushing run on the next Flush, preserving one-turn-per-Flush semantics.
func (s *Scheduler) Flush() {
	queued := s.queue
	s.queue = nil
	for _, callback := range queued {
		callback()
	}
}

// Pending returns the number of callbacks waiting for the next Flush.
func (s *Scheduler) Pending() int { return len(s.queue) }
