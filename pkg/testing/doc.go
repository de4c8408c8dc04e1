// Package testing provides an in-memory document implementation for
// exercising the interaction primitives without a rendering host.
//
// The harness mirrors the surface the primitives consume: a Document that
// dispatches events to capture-phase listeners and tracks the active
// element, Nodes forming a tree with focusability knobs, a manual Scheduler
// whose ticks advance only when Flush is called, and a ScrollArea standing
// in for the page's scroll container.
//
// Import it aliased to avoid shadowing the standard library:
//
//	htesting "github.com/go-drift/headless/pkg/testing"
package testing
