package widgets

import (
	"fmt"
	"log"
	"math"

	"github.com/arthmis/widget-nursery/pkg/core"
	"github.com/arthmis/widget-nursery/pkg/graphics"
	"github.com/arthmis/widget-nursery/pkg/layout"
)

// AspectRatioBox constrains its child to a fixed width:height ratio.
//
// During layout the box resolves the parent's maximum size and its stored
// ratio into a tight constraint, the largest box satisfying the ratio
// that fits the parent's offer, and lays the child out with it. The box
// reports whatever size the child returns; without a child it reports the
// tight constraint's size directly.
//
// The ratio is width divided by height: below 1 produces a box taller
// than wide, above 1 wider than tall, exactly 1 a square.
type AspectRatioBox[T any] struct {
	child core.Widget[T]
	ratio float64
}

// NewAspectRatioBox creates the container with a child.
//
// The ratio is stored as given, without validation or clamping. This is
// the only path to a ratio above 1; SetRatio and WithRatio clamp.
func NewAspectRatioBox[T any](child core.Widget[T], ratio float64) *AspectRatioBox[T] {
	return &AspectRatioBox[T]{child: child, ratio: ratio}
}

// newEmptyAspectRatioBox creates a childless box with a square ratio.
func newEmptyAspectRatioBox[T any]() *AspectRatioBox[T] {
	return &AspectRatioBox[T]{ratio: 1}
}

// WithRatio sets the ratio and returns the box for chaining.
//
// The ratio has to be a value between 0 and 1, excluding 0. It is clamped
// to those bounds; a clamped value of 0 becomes 1.
func (b *AspectRatioBox[T]) WithRatio(ratio float64) *AspectRatioBox[T] {
	b.SetRatio(ratio)
	return b
}

// SetRatio sets the ratio of the box, taking effect on the next layout
// pass.
//
// The ratio has to be a value between 0 and 1, excluding 0. It is clamped
// to those bounds; a clamped value of 0 becomes 1.
func (b *AspectRatioBox[T]) SetRatio(ratio float64) {
	ratio = math.Min(math.Max(ratio, 0), 1)
	if ratio == 0 {
		ratio = 1
	}
	b.ratio = ratio
}

// Ratio returns the stored ratio.
func (b *AspectRatioBox[T]) Ratio() float64 {
	return b.ratio
}

// Event forwards the event to the child.
func (b *AspectRatioBox[T]) Event(ctx *core.EventContext, event core.Event, data *T) {
	if b.child != nil {
		b.child.Event(ctx, event, data)
	}
}

// Lifecycle forwards the notification to the child.
func (b *AspectRatioBox[T]) Lifecycle(ctx *core.LifecycleContext, event core.LifecycleEvent, data T) {
	if b.child != nil {
		b.child.Lifecycle(ctx, event, data)
	}
}

// Update forwards the data change to the child.
func (b *AspectRatioBox[T]) Update(ctx *core.UpdateContext, oldData, newData T) {
	if b.child != nil {
		b.child.Update(ctx, oldData, newData)
	}
}

// Layout resolves the parent's constraints and the ratio into a tight
// constraint and lays the child out with it once. The child could, in
// principle, disobey the tight constraint; the box still reports the
// child's returned size unmodified.
func (b *AspectRatioBox[T]) Layout(ctx *core.LayoutContext, constraints layout.Constraints, data T) graphics.Size {
	constraints.DebugCheck("AspectRatioBox")

	ratio := b.ratio
	if ratio <= 0 {
		ctx.ReportError("widgets.AspectRatioBox.Layout",
			fmt.Errorf("non-positive ratio %g, using 1", ratio))
		ratio = 1
	}

	tight := tightConstraintsForRatio(ratio, constraints)

	var size graphics.Size
	if b.child != nil {
		size = b.child.Layout(ctx, tight, data)
	} else {
		size = tight.Max()
	}

	if math.IsInf(size.Width, 1) {
		log.Printf("WARNING: AspectRatioBox is returning an infinite width.")
	}
	if math.IsInf(size.Height, 1) {
		log.Printf("WARNING: AspectRatioBox is returning an infinite height.")
	}

	return size
}

// tightConstraintsForRatio resolves the offered maximums and the ratio
// into a tight constraint.
//
// The larger offered dimension drives and the other is derived from the
// ratio, except where the derived value would exceed the offer on the
// other axis; those boundary cases swap the driving dimension. An offer
// that is square on both axes with a ratio above 1 falls through both
// branches and stays unchanged.
func tightConstraintsForRatio(ratio float64, constraints layout.Constraints) layout.Constraints {
	width := constraints.MaxWidth
	height := constraints.MaxHeight

	switch {
	case ratio < 1:
		// Height is the larger dimension; width derives from the ratio
		// unless that would overshoot the offered width.
		if (height >= width && height*ratio <= width) || width > height {
			width = height * ratio
		} else if height >= width && height*ratio > width {
			height = width / ratio
		}
	case ratio > 1:
		// Width is the larger dimension; the derivation mirrors the
		// taller-than-wide case with the axes swapped.
		if width > height && height*ratio < width {
			width = height * ratio
		} else if (width > height && height*ratio > width) || height > width {
			height = width / ratio
		}
	default:
		// Square: bounded by the smaller of the two offered maximums.
		m := math.Min(width, height)
		width = m
		height = m
	}

	return layout.Tight(graphics.Size{Width: width, Height: height})
}

// Paint forwards painting to the child.
func (b *AspectRatioBox[T]) Paint(ctx *core.PaintContext, data T) {
	if b.child != nil {
		b.child.Paint(ctx, data)
	}
}

// ID returns the child's identity, if any.
func (b *AspectRatioBox[T]) ID() (core.WidgetID, bool) {
	if b.child != nil {
		return b.child.ID()
	}
	return 0, false
}
