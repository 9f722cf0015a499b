// Package core defines the capability contract every node in the widget
// tree implements, together with the per-traversal contexts handed to
// each operation.
//
// The contract is deliberately small. A widget participates in event
// routing, lifecycle notification, data-update diffing, layout, and
// paint, and may expose a stable identity. Containers own their children
// exclusively and forward each traversal to them; the host shell owns the
// traversal order and scheduling.
package core

import (
	"sync/atomic"

	"github.com/arthmis/widget-nursery/pkg/graphics"
	"github.com/arthmis/widget-nursery/pkg/layout"
)

// WidgetID identifies a widget within a tree. The zero value is never
// produced by NextWidgetID and stands for "no identity".
type WidgetID uint64

var lastWidgetID atomic.Uint64

// NextWidgetID allocates a fresh widget identity.
func NextWidgetID() WidgetID {
	return WidgetID(lastWidgetID.Add(1))
}

// Widget is the capability set every tree node supports.
//
// T is the application data type threaded through the host's data-diffing
// protocol; the traversal passes it down unchanged and containers carry
// no semantic use of it.
type Widget[T any] interface {
	// Event routes an input event. Data is mutable during event handling.
	Event(ctx *EventContext, event Event, data *T)

	// Lifecycle delivers a tree lifecycle notification.
	Lifecycle(ctx *LifecycleContext, event LifecycleEvent, data T)

	// Update notifies the widget that the application data changed.
	Update(ctx *UpdateContext, oldData, newData T)

	// Layout sizes the widget within the parent's constraints and returns
	// the measured size.
	Layout(ctx *LayoutContext, constraints layout.Constraints, data T) graphics.Size

	// Paint records the widget's visual output.
	Paint(ctx *PaintContext, data T)

	// ID returns the widget's identity, if it has one.
	ID() (WidgetID, bool)
}
