// Package dom defines the minimal rendering-host surface the interaction
// primitives consume: element handles, document-level event subscription,
// scroll containers, and an event-loop scheduler.
//
// The package renders nothing itself. A rendering layer (browser bridge,
// native host, or the in-memory document in pkg/testing) implements these
// interfaces and mounts the primitives against them.
package dom

// Element is a non-owning handle to a rendered node.
//
// Contains answers logical widget ownership, not raw tree position: a host
// that portals part of a widget's subtree elsewhere must still report the
// portaled nodes as contained by their logical owner.
type Element interface {
	// Focus moves keyboard focus to the element.
	Focus()

	// Connected reports whether the element is attached to the document.
	Connected() bool

	// Contains reports whether other is this element or a logical descendant.
	Contains(other Element) bool

	// TabIndex returns the element's tab order. Negative values exclude the
	// element from sequential focus.
	TabIndex() int

	// Disabled reports whether the element is disabled.
	Disabled() bool

	// Hidden reports whether the element is hidden from presentation.
	Hidden() bool

	// Children returns the element's children in document order.
	Children() []Element
}

// Document is the top-level event surface plus focus introspection.
type Document interface {
	EventTarget

	// ActiveElement returns the currently focused element, or nil when
	// nothing holds focus.
	ActiveElement() Element
}

// ScrollContainer exposes the inline scroll-related style of a scrolling
// root so it can be captured, suppressed, and later restored verbatim.
type ScrollContainer interface {
	// OverflowStyle returns the container's current inline overflow style.
	OverflowStyle() string

	// SetOverflowStyle replaces the container's inline overflow style.
	SetOverflowStyle(style string)
}
