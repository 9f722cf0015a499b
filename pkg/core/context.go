package core

import (
	"time"

	"github.com/arthmis/widget-nursery/pkg/errors"
)

// TraversalState is the per-traversal state shared by every context type.
// The host creates one state per traversal, wraps it in the context type
// matching the operation, and reads the invalidation flags after the walk
// completes.
type TraversalState struct {
	handler     errors.Handler
	needsLayout bool
	needsPaint  bool
}

// NewTraversalState creates traversal state reporting to the given
// handler. A nil handler routes reports to the errors package's global
// handler.
func NewTraversalState(handler errors.Handler) *TraversalState {
	return &TraversalState{handler: handler}
}

// NeedsLayout reports whether any widget requested a layout pass.
func (s *TraversalState) NeedsLayout() bool {
	return s.needsLayout
}

// NeedsPaint reports whether any widget requested a paint pass.
func (s *TraversalState) NeedsPaint() bool {
	return s.needsPaint
}

func (s *TraversalState) report(err *errors.TraversalError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if s.handler != nil {
		s.handler.HandleError(err)
		return
	}
	errors.Report(err)
}

// EventContext is handed to Widget.Event.
type EventContext struct {
	state   *TraversalState
	handled bool
}

// NewEventContext creates the context for one event dispatch.
func NewEventContext(state *TraversalState) *EventContext {
	return &EventContext{state: state}
}

// SetHandled marks the event as consumed.
func (c *EventContext) SetHandled() {
	c.handled = true
}

// Handled reports whether a widget consumed the event.
func (c *EventContext) Handled() bool {
	return c.handled
}

// RequestLayout asks the host for a layout pass after the traversal.
func (c *EventContext) RequestLayout() {
	c.state.needsLayout = true
}

// RequestPaint asks the host for a paint pass after the traversal.
func (c *EventContext) RequestPaint() {
	c.state.needsPaint = true
}

// LifecycleContext is handed to Widget.Lifecycle.
type LifecycleContext struct {
	state *TraversalState
}

// NewLifecycleContext creates the context for one lifecycle notification.
func NewLifecycleContext(state *TraversalState) *LifecycleContext {
	return &LifecycleContext{state: state}
}

// RequestLayout asks the host for a layout pass after the traversal.
func (c *LifecycleContext) RequestLayout() {
	c.state.needsLayout = true
}

// UpdateContext is handed to Widget.Update.
type UpdateContext struct {
	state *TraversalState
}

// NewUpdateContext creates the context for one data-update pass.
func NewUpdateContext(state *TraversalState) *UpdateContext {
	return &UpdateContext{state: state}
}

// RequestLayout asks the host for a layout pass after the traversal.
func (c *UpdateContext) RequestLayout() {
	c.state.needsLayout = true
}

// RequestPaint asks the host for a paint pass after the traversal.
func (c *UpdateContext) RequestPaint() {
	c.state.needsPaint = true
}

// LayoutContext is handed to Widget.Layout.
type LayoutContext struct {
	state *TraversalState
}

// NewLayoutContext creates the context for one layout pass.
func NewLayoutContext(state *TraversalState) *LayoutContext {
	return &LayoutContext{state: state}
}

// ReportError reports a non-fatal layout anomaly. The traversal
// continues; the error reaches the traversal's handler, or the global
// handler when none was configured.
func (c *LayoutContext) ReportError(op string, err error) {
	c.state.report(&errors.TraversalError{
		Op:   op,
		Kind: errors.KindLayout,
		Err:  err,
	})
}

// PaintContext is handed to Widget.Paint.
type PaintContext struct {
	state *TraversalState
}

// NewPaintContext creates the context for one paint pass.
func NewPaintContext(state *TraversalState) *PaintContext {
	return &PaintContext{state: state}
}
