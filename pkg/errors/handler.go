package errors

import (
	"sync"
	"time"
)

var (
	// defaultHandler is the global error handler.
	defaultHandler ErrorHandler = NewLogHandler()

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default log handler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = NewLogHandler()
	} else {
		defaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// Report sends a recoverable error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *HeadlessError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover is a helper for deferred panic containment on teardown paths,
// where restoration is best-effort and must never throw.
// Usage: defer errors.Recover("scrolllock.Release")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:        op,
			Value:     r,
			Timestamp: time.Now(),
		})
	}
}
