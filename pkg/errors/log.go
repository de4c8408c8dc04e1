package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that logs through charmbracelet/log.
// Recoverable errors are logged at Warn level, recovered panics at Error.
type LogHandler struct {
	logger *log.Logger
}

// NewLogHandler returns a handler logging to stderr.
func NewLogHandler() *LogHandler {
	return &LogHandler{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "headless",
		}),
	}
}

// NewLogHandlerWithLogger returns a handler logging through logger.
func NewLogHandlerWithLogger(logger *log.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// HandleError logs a recoverable error at Warn level.
func (h *LogHandler) HandleError(err *HeadlessError) {
	if err == nil {
		return
	}
	h.logger.Warn(err.Err.Error(), "op", err.Op, "kind", err.Kind.String())
}

// HandlePanic logs a recovered panic at Error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.logger.Error("recovered panic", "op", err.Op, "value", err.Value)
}
