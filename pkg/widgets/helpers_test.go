package widgets

import (
	"math"

	"github.com/arthmis/widget-nursery/pkg/core"
	"github.com/arthmis/widget-nursery/pkg/errors"
	"github.com/arthmis/widget-nursery/pkg/graphics"
	"github.com/arthmis/widget-nursery/pkg/layout"
)

// mockChildWidget records every traversal forwarded to it and reports a
// configurable size from layout. The default layout response is the
// constraints' maximum.
type mockChildWidget struct {
	id         core.WidgetID
	hasID      bool
	events     []core.Event
	lifecycles []core.LifecycleEvent
	updates    int
	paints     int
	layouts    []layout.Constraints
	layoutSize func(constraints layout.Constraints) graphics.Size
	onEvent    func(data *string)
}

func (m *mockChildWidget) Event(ctx *core.EventContext, event core.Event, data *string) {
	m.events = append(m.events, event)
	if m.onEvent != nil {
		m.onEvent(data)
	}
}

func (m *mockChildWidget) Lifecycle(ctx *core.LifecycleContext, event core.LifecycleEvent, data string) {
	m.lifecycles = append(m.lifecycles, event)
}

func (m *mockChildWidget) Update(ctx *core.UpdateContext, oldData, newData string) {
	m.updates++
}

func (m *mockChildWidget) Layout(ctx *core.LayoutContext, constraints layout.Constraints, data string) graphics.Size {
	m.layouts = append(m.layouts, constraints)
	if m.layoutSize != nil {
		return m.layoutSize(constraints)
	}
	return constraints.Max()
}

func (m *mockChildWidget) Paint(ctx *core.PaintContext, data string) {
	m.paints++
}

func (m *mockChildWidget) ID() (core.WidgetID, bool) {
	return m.id, m.hasID
}

// newLayoutContext returns a layout context reporting to the given
// handler. A nil handler routes reports to the global default.
func newLayoutContext(handler errors.Handler) *core.LayoutContext {
	return core.NewLayoutContext(core.NewTraversalState(handler))
}

// captureHandler records every reported traversal error.
type captureHandler struct {
	reported []*errors.TraversalError
}

func (h *captureHandler) HandleError(err *errors.TraversalError) {
	h.reported = append(h.reported, err)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}
