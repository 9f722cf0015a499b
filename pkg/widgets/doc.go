// Package widgets provides container widgets for the widget tree.
//
// The containers here own no visual output of their own; they shape the
// constraints handed to their child and forward every traversal to it.
// AspectRatioBox constrains its child to a fixed width:height ratio,
// FractionBox sizes its child as a fraction of the parent's offer.
package widgets
