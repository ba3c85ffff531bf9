package ui

import "github.com/OpticalFlyer/grog/geom"

// MouseResponder handles mouse events. Each method returns true when the
// event was consumed and must not be offered to anyone else.
type MouseResponder interface {
	RespondButton(ev MouseButtonEvent) bool
	RespondMotion(ev MouseMotionEvent) bool
}

// MouseUnresponder ignores every event.
type MouseUnresponder struct{}

func (MouseUnresponder) RespondButton(MouseButtonEvent) bool { return false }
func (MouseUnresponder) RespondMotion(MouseMotionEvent) bool { return false }

// DelegatedMouseResponder forwards events to Delegate. A nil delegate
// consumes nothing.
type DelegatedMouseResponder struct {
	Delegate MouseResponder
}

func (r DelegatedMouseResponder) RespondButton(ev MouseButtonEvent) bool {
	if r.Delegate == nil {
		return false
	}
	return r.Delegate.RespondButton(ev)
}

func (r DelegatedMouseResponder) RespondMotion(ev MouseMotionEvent) bool {
	if r.Delegate == nil {
		return false
	}
	return r.Delegate.RespondMotion(ev)
}

// ContextAwareMouseResponder is a responder that needs a context value of
// type C, such as the layout it works on, to handle an event.
type ContextAwareMouseResponder[C any] interface {
	RespondButton(ctx C, ev MouseButtonEvent) bool
	RespondMotion(ctx C, ev MouseMotionEvent) bool
}

// ContextResponder adapts a ContextAwareMouseResponder into a
// MouseResponder, obtaining the context from a provider on every event.
type ContextResponder[C any] struct {
	provide  func() C
	delegate ContextAwareMouseResponder[C]
}

// WithContext binds delegate to the context returned by provide.
func WithContext[C any](provide func() C, delegate ContextAwareMouseResponder[C]) *ContextResponder[C] {
	return &ContextResponder[C]{provide: provide, delegate: delegate}
}

func (r *ContextResponder[C]) RespondButton(ev MouseButtonEvent) bool {
	if r.delegate == nil {
		return false
	}
	return r.delegate.RespondButton(r.provide(), ev)
}

func (r *ContextResponder[C]) RespondMotion(ev MouseMotionEvent) bool {
	if r.delegate == nil {
		return false
	}
	return r.delegate.RespondMotion(r.provide(), ev)
}

// LayoutResponder routes events to the topmost visible widget of a layout
// under the cursor, translated into that widget's coordinates.
type LayoutResponder struct{}

var _ ContextAwareMouseResponder[Layout] = LayoutResponder{}

func (LayoutResponder) RespondButton(layout Layout, ev MouseButtonEvent) bool {
	child, ok := layout.Find(OnVisiblePosition(ev.Pos))
	if !ok || !child.Widget.Enabled() {
		return false
	}
	ev.Pos = ev.Pos.Sub(child.Region.Position())
	return child.Widget.RespondButton(ev)
}

func (LayoutResponder) RespondMotion(layout Layout, ev MouseMotionEvent) bool {
	child, ok := layout.Find(OnVisiblePosition(ev.Pos))
	if !ok || !child.Widget.Enabled() {
		return false
	}
	ev.Pos = ev.Pos.Sub(child.Region.Position())
	return child.Widget.RespondMotion(ev)
}

// SingleClickResponder detects a left button press followed by its
// release. Any other button event resets it, so a release lost to focus
// changes never leaves it stuck in the pressed state.
type SingleClickResponder struct {
	OnPress func(pos geom.Vector2[int])
	OnClick func(pos geom.Vector2[int])

	pressed bool
}

// NewSingleClickResponder returns an idle responder calling onPress and
// onClick. Either may be nil.
func NewSingleClickResponder(onPress, onClick func(pos geom.Vector2[int])) *SingleClickResponder {
	return &SingleClickResponder{OnPress: onPress, OnClick: onClick}
}

// Pressed reports whether a press is waiting for its release.
func (r *SingleClickResponder) Pressed() bool {
	return r.pressed
}

func (r *SingleClickResponder) RespondButton(ev MouseButtonEvent) bool {
	if ev.Button == LeftMouseButton {
		switch {
		case ev.State == MouseButtonPressed:
			r.pressed = true
			if r.OnPress != nil {
				r.OnPress(ev.Pos)
			}
			return true
		case ev.State == MouseButtonReleased && r.pressed:
			r.pressed = false
			if r.OnClick != nil {
				r.OnClick(ev.Pos)
			}
			return true
		}
	}
	r.pressed = false
	return false
}

func (r *SingleClickResponder) RespondMotion(MouseMotionEvent) bool {
	return false
}

type (
	// DragHandler is called for every motion of a drag. pos is where the
	// cursor was before the motion and mov the motion itself.
	DragHandler func(w Widget, pos, mov geom.Vector2[int])

	// DropHandler is called when a drag ends, with the positions where it
	// started and ended.
	DropHandler func(w Widget, from, to geom.Vector2[int])
)

// DragAndDropResponder drags the widgets of a layout with the left
// button.
type DragAndDropResponder struct {
	OnDrag DragHandler
	OnDrop DropHandler

	dragging     Widget
	draggingFrom geom.Vector2[int]
}

var _ ContextAwareMouseResponder[Layout] = (*DragAndDropResponder)(nil)

// NewDragAndDropResponder returns a responder with no drag in progress.
func NewDragAndDropResponder(onDrag DragHandler, onDrop DropHandler) *DragAndDropResponder {
	return &DragAndDropResponder{OnDrag: onDrag, OnDrop: onDrop}
}

// Dragging returns the widget being dragged, or nil.
func (r *DragAndDropResponder) Dragging() Widget {
	return r.dragging
}

func (r *DragAndDropResponder) RespondButton(layout Layout, ev MouseButtonEvent) bool {
	if ev.Button != LeftMouseButton {
		return false
	}
	switch ev.State {
	case MouseButtonPressed:
		w, ok := layout.FindWidget(OnVisiblePosition(ev.Pos))
		if !ok {
			r.dragging = nil
			return false
		}
		r.dragging = w
		r.draggingFrom = ev.Pos
		return true
	case MouseButtonReleased:
		if r.dragging == nil {
			return false
		}
		w := r.dragging
		r.dragging = nil
		if r.OnDrop != nil {
			r.OnDrop(w, r.draggingFrom, ev.Pos)
		}
		return true
	}
	return false
}

func (r *DragAndDropResponder) RespondMotion(layout Layout, ev MouseMotionEvent) bool {
	if r.dragging == nil {
		return false
	}
	if r.OnDrag != nil {
		r.OnDrag(r.dragging, ev.Pos.Sub(ev.Rel), ev.Rel)
	}
	return true
}

// MouseResponderChain offers events to its responders in order until one
// consumes it.
type MouseResponderChain struct {
	responders []MouseResponder
}

// NewMouseResponderChain returns a chain of the given responders.
func NewMouseResponderChain(responders ...MouseResponder) *MouseResponderChain {
	return &MouseResponderChain{responders: responders}
}

// Add appends r to the end of the chain.
func (c *MouseResponderChain) Add(r MouseResponder) *MouseResponderChain {
	c.responders = append(c.responders, r)
	return c
}

func (c *MouseResponderChain) RespondButton(ev MouseButtonEvent) bool {
	for _, r := range c.responders {
		if r.RespondButton(ev) {
			return true
		}
	}
	return false
}

func (c *MouseResponderChain) RespondMotion(ev MouseMotionEvent) bool {
	for _, r := range c.responders {
		if r.RespondMotion(ev) {
			return true
		}
	}
	return false
}
