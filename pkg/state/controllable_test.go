package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllable_UncontrolledRequestAdvancesValue(t *testing.T) {
	var calls []int
	c := NewControllable[int](nil, 1, func(v int) { calls = append(calls, v) })

	require.Equal(t, 1, c.Value())
	c.Request(5)

	assert.Equal(t, []int{5}, calls, "onChange fires exactly once per request")
	assert.Equal(t, 5, c.Value())
}

func TestControllable_ControlledNeverSelfMutates(t *testing.T) {
	external := 5
	var calls []int
	c := NewControllable(
		func() (int, bool) { return external, true },
		0,
		func(v int) { calls = append(calls, v) },
	)

	c.Request(6)

	assert.Equal(t, []int{6}, calls)
	assert.Equal(t, 5, c.Value(), "accessor must keep reflecting the controlled value")

	// The owner accepts the proposal by re-supplying a new controlled value.
	external = 6
	assert.Equal(t, 6, c.Value())
}

func TestControllable_AuthorityRederivedPerAccess(t *testing.T) {
	controlled := true
	external := 10
	c := NewControllable(
		func() (int, bool) { return external, controlled },
		1,
		nil,
	)

	assert.Equal(t, 10, c.Value())

	// Owner stops controlling: the fallback becomes authoritative at once.
	controlled = false
	assert.Equal(t, 1, c.Value())

	c.Request(2)
	assert.Equal(t, 2, c.Value())

	// Owner resumes control.
	controlled = true
	assert.Equal(t, 10, c.Value())
}

func TestControllable_ReentrantRequestFiresNoNestedCallback(t *testing.T) {
	calls := 0
	var c *Controllable[int]
	c = NewControllable[int](nil, 0, func(v int) {
		calls++
		if v == 1 {
			c.Request(2) // re-entrant: must not fire a nested callback
		}
	})

	c.Request(1)

	assert.Equal(t, 1, calls, "re-entrant request must not cascade")
	assert.Equal(t, 2, c.Value(), "re-entrant request still advances the fallback")
}

func TestControllable_ValueVisibleInsideCallback(t *testing.T) {
	var seen int
	var c *Controllable[int]
	c = NewControllable[int](nil, 0, func(int) { seen = c.Value() })

	c.Request(7)

	assert.Equal(t, 7, seen, "uncontrolled fallback advances before onChange runs")
}

func TestControllable_NilOnChange(t *testing.T) {
	c := NewControllable[string](nil, "closed", nil)
	assert.NotPanics(t, func() { c.Request("open") })
	assert.Equal(t, "open", c.Value())
}
