package errors

import (
	"fmt"
	"os"
	"time"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including kind and timestamp.
	Verbose bool
}

// HandleError logs a TraversalError to stderr.
func (h *LogHandler) HandleError(err *TraversalError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[nursery error] %s [%s] at %s: %v\n",
			err.Op, err.Kind, err.Timestamp.Format(time.RFC3339), err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[nursery error] %s: %v\n", err.Op, err.Err)
	}
}
