// Package errors provides structured error handling for the headless
// interaction primitives.
//
// Two severities exist. Expected-absence conditions (a trap container with
// no focusable descendants, teardown against a detached element) are
// recoverable: they are reported through the global handler and execution
// continues. Programmer misuse (double-activating a trap, composing a ref
// with zero consumers) panics immediately at the call site and never reaches
// this package.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindFocus indicates a focus containment condition.
	KindFocus
	// KindDismiss indicates an escape-dismissal condition.
	KindDismiss
	// KindOutside indicates an outside-interaction condition.
	KindOutside
	// KindScroll indicates a scroll lock condition.
	KindScroll
	// KindState indicates a controllable-state condition.
	KindState
)

func (k ErrorKind) String() string {
	switch k {
	case KindFocus:
		return "focus"
	case KindDismiss:
		return "dismiss"
	case KindOutside:
		return "outside"
	case KindScroll:
		return "scroll"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// HeadlessError represents a structured, recoverable error in the
// primitives layer.
type HeadlessError struct {
	// Op is the operation that failed (e.g., "focustrap.Activate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HeadlessError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HeadlessError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scrolllock.Release").
	Op string
	// Value is the value passed to panic().
	Value any
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the primitives.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *HeadlessError)
	// HandlePanic is called when a panic is recovered during teardown.
	HandlePanic(err *PanicError)
}
