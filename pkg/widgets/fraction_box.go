package widgets

import (
	"math"

	"github.com/arthmis/widget-nursery/pkg/core"
	"github.com/arthmis/widget-nursery/pkg/graphics"
	"github.com/arthmis/widget-nursery/pkg/layout"
)

// FractionBox sizes its child as a fraction of the parent's maximum
// constraints.
//
// Each axis with a fraction set is forced tight at fraction times the
// parent's maximum on that axis; axes without a fraction pass the
// parent's constraints through unchanged. Without a child the box sizes
// itself to the set fractions, treating unset axes as zero.
type FractionBox[T any] struct {
	child          core.Widget[T]
	widthFraction  *float64
	heightFraction *float64
}

// NewFractionBox creates the container with a child and no fractions set.
func NewFractionBox[T any](child core.Widget[T]) *FractionBox[T] {
	return &FractionBox[T]{child: child}
}

// WithWidthFraction sets the width fraction and returns the box for
// chaining. The fraction is clamped to [0, 1].
func (b *FractionBox[T]) WithWidthFraction(fraction float64) *FractionBox[T] {
	fraction = math.Min(math.Max(fraction, 0), 1)
	b.widthFraction = &fraction
	return b
}

// WithHeightFraction sets the height fraction and returns the box for
// chaining. The fraction is clamped to [0, 1].
func (b *FractionBox[T]) WithHeightFraction(fraction float64) *FractionBox[T] {
	fraction = math.Min(math.Max(fraction, 0), 1)
	b.heightFraction = &fraction
	return b
}

// Event forwards the event to the child.
func (b *FractionBox[T]) Event(ctx *core.EventContext, event core.Event, data *T) {
	if b.child != nil {
		b.child.Event(ctx, event, data)
	}
}

// Lifecycle forwards the notification to the child.
func (b *FractionBox[T]) Lifecycle(ctx *core.LifecycleContext, event core.LifecycleEvent, data T) {
	if b.child != nil {
		b.child.Lifecycle(ctx, event, data)
	}
}

// Update forwards the data change to the child.
func (b *FractionBox[T]) Update(ctx *core.UpdateContext, oldData, newData T) {
	if b.child != nil {
		b.child.Update(ctx, oldData, newData)
	}
}

// Layout forces each fractional axis tight at its share of the parent's
// maximum and passes the remaining axes through.
func (b *FractionBox[T]) Layout(ctx *core.LayoutContext, constraints layout.Constraints, data T) graphics.Size {
	constraints.DebugCheck("FractionBox")

	inner := b.innerConstraints(constraints)
	if b.child != nil {
		return b.child.Layout(ctx, inner, data)
	}

	var size graphics.Size
	if b.widthFraction != nil {
		size.Width = inner.MaxWidth
	}
	if b.heightFraction != nil {
		size.Height = inner.MaxHeight
	}
	return size
}

// innerConstraints derives the child constraints from the set fractions.
func (b *FractionBox[T]) innerConstraints(constraints layout.Constraints) layout.Constraints {
	minWidth, maxWidth := constraints.MinWidth, constraints.MaxWidth
	if b.widthFraction != nil {
		w := *b.widthFraction * constraints.MaxWidth
		minWidth, maxWidth = w, w
	}

	minHeight, maxHeight := constraints.MinHeight, constraints.MaxHeight
	if b.heightFraction != nil {
		h := *b.heightFraction * constraints.MaxHeight
		minHeight, maxHeight = h, h
	}

	return layout.Constraints{
		MinWidth:  minWidth,
		MaxWidth:  maxWidth,
		MinHeight: minHeight,
		MaxHeight: maxHeight,
	}
}

// Paint forwards painting to the child.
func (b *FractionBox[T]) Paint(ctx *core.PaintContext, data T) {
	if b.child != nil {
		b.child.Paint(ctx, data)
	}
}

// ID returns the child's identity, if any.
func (b *FractionBox[T]) ID() (core.WidgetID, bool) {
	if b.child != nil {
		return b.child.ID()
	}
	return 0, false
}
