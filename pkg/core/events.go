package core

import "github.com/arthmis/widget-nursery/pkg/graphics"

// Event is an input event routed down the widget tree during the event
// traversal. Containers forward events to their children without
// inspecting them.
type Event interface {
	isEvent()
}

// PointerKind identifies the phase of a pointer interaction.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

// PointerEvent is a pointer interaction at a position in the widget's
// coordinate space.
type PointerEvent struct {
	Position graphics.Offset
	Kind     PointerKind
}

func (PointerEvent) isEvent() {}

// KeyEvent is a keyboard interaction.
type KeyEvent struct {
	Rune    rune
	Pressed bool
}

func (KeyEvent) isEvent() {}

// LifecycleEvent identifies a tree lifecycle notification.
type LifecycleEvent int

const (
	// LifecycleMounted is delivered when the widget joins the tree.
	LifecycleMounted LifecycleEvent = iota
	// LifecycleUnmounted is delivered when the widget leaves the tree.
	LifecycleUnmounted
	// LifecycleFocusChanged is delivered when focus moves into or out of
	// the widget's subtree.
	LifecycleFocusChanged
)
