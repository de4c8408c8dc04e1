package dom

// EventType identifies a document-level event channel.
type EventType string

const (
	// KeyDown is dispatched for key presses.
	KeyDown EventType = "keydown"

	// PointerDown is dispatched when a pointer interaction begins.
	PointerDown EventType = "pointerdown"

	// TouchStart is dispatched when a touch interaction begins, on hosts
	// that deliver touch events instead of pointer events.
	TouchStart EventType = "touchstart"

	// FocusIn is dispatched after an element receives focus.
	FocusIn EventType = "focusin"
)

// Key names used by the primitives.
const (
	KeyEscape = "Escape"
	KeyTab    = "Tab"
)

// Event carries one document-level event occurrence.
type Event struct {
	Type   EventType
	Target Element

	// Key is the key name for KeyDown events, empty otherwise.
	Key string

	// ShiftKey reports whether a shift modifier was held.
	ShiftKey bool

	defaultPrevented bool
}

// PreventDefault marks the event's default host action as suppressed.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Handler receives dispatched events.
type Handler func(*Event)

// ListenerOptions control listener attachment.
type ListenerOptions struct {
	// Capture attaches the listener to the capture phase so it observes
	// events before bubbling targets do.
	Capture bool
}

// EventTarget is a document-level event subscription surface.
type EventTarget interface {
	// AddListener subscribes h to events of type t and returns the removal
	// func. Calling the removal func more than once is a safe no-op.
	AddListener(t EventType, h Handler, opts ListenerOptions) (remove func())
}
