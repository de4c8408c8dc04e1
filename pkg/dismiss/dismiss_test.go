package dismiss

import (
	"testing"

	"github.com/go-drift/headless/pkg/dom"
	htesting "github.com/go-drift/headless/pkg/testing"
)

// TestStack_TopFrameOnly verifies that Escape reaches only the most recently
// registered listener, then the next one after the inner frame unregisters.
func TestStack_TopFrameOnly(t *testing.T) {
	doc := htesting.NewDocument()
	s := NewStack(doc)

	outer, inner := 0, 0
	unregOuter := s.Register(func() { outer++ })
	unregInner := s.Register(func() { inner++ })

	doc.PressKey(dom.KeyEscape, false)
	if inner != 1 {
		t.Errorf("inner should have been dismissed, got %d calls", inner)
	}
	if outer != 0 {
		t.Errorf("outer should not see Escape while inner is active, got %d calls", outer)
	}

	unregInner()
	doc.PressKey(dom.KeyEscape, false)
	if outer != 1 {
		t.Errorf("outer should be dismissed after inner unregisters, got %d calls", outer)
	}

	unregOuter()
}

// TestStack_SingleSharedSubscription verifies that all frames share one
// document-level key listener.
func TestStack_SingleSharedSubscription(t *testing.T) {
	doc := htesting.NewDocument()
	s := NewStack(doc)

	unreg1 := s.Register(func() {})
	unreg2 := s.Register(func() {})

	if got := doc.ListenerCount(dom.KeyDown); got != 1 {
		t.Errorf("expected 1 shared keydown listener, got %d", got)
	}

	unreg1()
	if got := doc.ListenerCount(dom.KeyDown); got != 1 {
		t.Errorf("listener should remain while a frame is registered, got %d", got)
	}

	unreg2()
	if got := doc.ListenerCount(dom.KeyDown); got != 0 {
		t.Errorf("no idle listener may outlive the last registration, got %d", got)
	}
}

// TestStack_UnregisterMiddleFrame verifies that a frame can be removed from
// the middle of the stack without disturbing the top.
func TestStack_UnregisterMiddleFrame(t *testing.T) {
	doc := htesting.NewDocument()
	s := NewStack(doc)

	var fired []string
	s.Register(func() { fired = append(fired, "a") })
	unregB := s.Register(func() { fired = append(fired, "b") })
	s.Register(func() { fired = append(fired, "c") })

	unregB()
	doc.PressKey(dom.KeyEscape, false)

	if len(fired) != 1 || fired[0] != "c" {
		t.Errorf("expected only top frame c to fire, got %v", fired)
	}
	if s.Depth() != 2 {
		t.Errorf("expected depth 2 after removing middle frame, got %d", s.Depth())
	}
}

// TestStack_UnregisterIdempotent verifies that calling unregister twice is a
// safe no-op.
func TestStack_UnregisterIdempotent(t *testing.T) {
	doc := htesting.NewDocument()
	s := NewStack(doc)

	s.Register(func() {})
	unreg := s.Register(func() {})

	unreg()
	unreg()

	if s.Depth() != 1 {
		t.Errorf("double unregister must remove exactly one frame, depth = %d", s.Depth())
	}
}

// TestStack_NoCallbackAfterUnregister verifies teardown is total: once
// unregister returns, the frame's callback can no longer fire.
func TestStack_NoCallbackAfterUnregister(t *testing.T) {
	doc := htesting.NewDocument()
	s := NewStack(doc)

	calls := 0
	unreg := s.Register(func() { calls++ })
	unreg()

	doc.PressKey(dom.KeyEscape, false)
	if calls != 0 {
		t.Errorf("callback fired after unregister: %d calls", calls)
	}
}

// TestStack_IgnoresOtherKeys verifies that non-Escape keys never dispatch.
func TestStack_IgnoresOtherKeys(t *testing.T) {
	doc := htesting.NewDocument()
	s := NewStack(doc)

	calls := 0
	s.Register(func() { calls++ })

	doc.PressKey(dom.KeyTab, false)
	doc.PressKey("Enter", false)

	if calls != 0 {
		t.Errorf("non-Escape keys must not dismiss, got %d calls", calls)
	}
}
