// Package errors provides structured error reporting for widget
// traversals.
//
// Traversal errors never propagate through the widget tree and never fail
// a traversal. Widgets report anomalies to a Handler and carry on; the
// host decides whether to log, collect, or surface them.
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
	// KindLayout indicates an anomaly during a layout pass.
	KindLayout
	// KindEvent indicates an anomaly during event routing.
	KindEvent
	// KindPaint indicates an anomaly during painting.
	KindPaint
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindEvent:
		return "event"
	case KindPaint:
		return "paint"
	default:
		return "unknown"
	}
}

// TraversalError represents an anomaly reported during a widget traversal.
type TraversalError struct {
	// Op is the operation that reported the error
	// (e.g., "widgets.AspectRatioBox.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported during widget traversals.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *TraversalError)
}
