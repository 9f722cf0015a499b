// Package layout provides the box-constraint model of the widget tree.
//
// A Constraints value is the parent's offer to a child during layout: the
// child must size itself between Min and Max on each axis. A tight
// constraint (min equals max on both axes) forces an exact size. An axis
// with no upper limit carries positive infinity as its maximum.
package layout

import (
	"log"
	"math"

	"github.com/arthmis/widget-nursery/pkg/graphics"
)

// Constraints is a parent-supplied pair of minimum and maximum sizes that
// a child layout must respect.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with zero minimums and no upper limits.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Min returns the smallest size satisfying the constraints.
func (c Constraints) Min() graphics.Size {
	return graphics.Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Max returns the largest size satisfying the constraints.
func (c Constraints) Max() graphics.Size {
	return graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width axis has an upper limit.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether the height axis has an upper limit.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps the given size into the constraints on each axis.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  math.Min(math.Max(size.Width, c.MinWidth), c.MaxWidth),
		Height: math.Min(math.Max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// DebugCheck logs a warning when the constraints are malformed: negative
// or infinite minimums, or minimums exceeding maximums. The check never
// fails the traversal; layout proceeds with the values as given. The name
// identifies the widget performing the check.
func (c Constraints) DebugCheck(name string) {
	if c.MinWidth < 0 || c.MinHeight < 0 ||
		math.IsInf(c.MinWidth, 1) || math.IsInf(c.MinHeight, 1) ||
		c.MinWidth > c.MaxWidth || c.MinHeight > c.MaxHeight {
		log.Printf("WARNING: %s received malformed constraints: min %gx%g, max %gx%g",
			name, c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight)
	}
}
