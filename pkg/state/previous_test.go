package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	htesting "github.com/go-drift/headless/pkg/testing"
)

func TestTracker_ReturnsPriorCycleValue(t *testing.T) {
	sched := &htesting.Scheduler{}
	tr := NewTracker(sched, 0)

	assert.Equal(t, 0, tr.Track(1), "first cycle reads the initial value")
	sched.Flush()
	assert.Equal(t, 1, tr.Track(2))
	sched.Flush()
	assert.Equal(t, 2, tr.Track(3))
}

func TestTracker_CommitAfterRead(t *testing.T) {
	sched := &htesting.Scheduler{}
	tr := NewTracker(sched, 0)

	// All reads within one cycle see the pre-cycle value, never the value
	// passed in the same cycle.
	assert.Equal(t, 0, tr.Track(1))
	assert.Equal(t, 0, tr.Track(2))
	assert.Equal(t, 0, tr.Track(3))

	sched.Flush()

	// The last value recorded in the cycle wins the commit.
	assert.Equal(t, 3, tr.Track(4))
}

func TestTracker_OneCommitPerCycle(t *testing.T) {
	sched := &htesting.Scheduler{}
	tr := NewTracker(sched, 0)

	tr.Track(1)
	tr.Track(2)
	assert.Equal(t, 1, sched.Pending(), "repeated tracks share one queued commit")
}

func TestTracker_IdleCyclesKeepValue(t *testing.T) {
	sched := &htesting.Scheduler{}
	tr := NewTracker(sched, "a")

	tr.Track("b")
	sched.Flush()
	sched.Flush() // cycle with no Track calls
	assert.Equal(t, "b", tr.Track("c"))
}
