// Package dismiss provides a stack-aware escape-key dismissal channel.
//
// Registrations form an explicit stack: only the top frame is notified when
// Escape is pressed, so nested overlays dismiss innermost-first regardless
// of where their boundaries sit in the rendered tree. Event-bubbling order
// is never consulted, since it does not match logical nesting when content
// is portaled elsewhere.
package dismiss

import "github.com/go-drift/headless/pkg/dom"

type frame struct {
	onEscape func()
}

// Stack dispatches Escape key presses to the most recently registered
// listener. Use NewStack; the zero value has no document to listen on.
type Stack struct {
	doc    dom.EventTarget
	frames []*frame
	remove func()
}

// NewStack returns a stack bound to the given document-level event target.
func NewStack(doc dom.EventTarget) *Stack {
	return &Stack{doc: doc}
}

// Register pushes onEscape onto the stack and returns its unregister func.
//
// A single document-level capture-phase key subscription backs the whole
// stack. It is installed when the stack becomes non-empty and removed as
// soon as it empties again, so no idle listener outlives the last
// registration. Unregister removes the frame from wherever it sits in the
// stack and is safe to call more than once; after it returns the frame's
// callback can no longer fire.
func (s *Stack) Register(onEscape func()) (unregister func()) {
	f := &frame{onEscape: onEscape}
	s.frames = append(s.frames, f)
	if s.remove == nil {
		s.remove = s.doc.AddListener(dom.KeyDown, s.handleKey, dom.ListenerOptions{Capture: true})
	}
	return func() { s.unregister(f) }
}

// Depth returns the number of registered frames.
func (s *Stack) Depth() int { return len(s.frames) }

func (s *Stack) unregister(f *frame) {
	for i, existing := range s.frames {
		if existing == f {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			break
		}
	}
	if len(s.frames) == 0 && s.remove != nil {
		s.remove()
		s.remove = nil
	}
}

func (s *Stack) handleKey(e *dom.Event) {
	if e.Key != dom.KeyEscape || len(s.frames) == 0 {
		return
	}
	top := s.frames[len(s.frames)-1]
	if top.onEscape != nil {
		top.onEscape()
	}
}
