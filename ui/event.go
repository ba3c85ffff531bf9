package ui

import (
	"github.com/OpticalFlyer/grog/geom"
	"github.com/OpticalFlyer/grog/native"
)

// MouseButton identifies a mouse button. The zero value is
// UnknownMouseButton.
type MouseButton int

const (
	UnknownMouseButton MouseButton = iota
	LeftMouseButton
	RightMouseButton
	MiddleMouseButton
	WheelUpMouseButton
	WheelDownMouseButton
)

var mouseButtonNames = [...]string{
	UnknownMouseButton:   "unknown",
	LeftMouseButton:      "left",
	RightMouseButton:     "right",
	MiddleMouseButton:    "middle",
	WheelUpMouseButton:   "wheel up",
	WheelDownMouseButton: "wheel down",
}

func (b MouseButton) String() string {
	if b < 0 || int(b) >= len(mouseButtonNames) {
		return "unknown"
	}
	return mouseButtonNames[b]
}

// MouseButtonState is the state a mouse button transitioned to. The zero
// value is UnknownMouseState.
type MouseButtonState int

const (
	UnknownMouseState MouseButtonState = iota
	MouseButtonPressed
	MouseButtonReleased
)

func (s MouseButtonState) String() string {
	switch s {
	case MouseButtonPressed:
		return "pressed"
	case MouseButtonReleased:
		return "released"
	default:
		return "unknown"
	}
}

// MouseMotionEvent reports the cursor at Pos, Rel away from where the
// previous motion event left it.
type MouseMotionEvent struct {
	Pos geom.Vector2[int]
	Rel geom.Vector2[int]
}

// MouseButtonEvent reports a button changing state with the cursor at Pos.
type MouseButtonEvent struct {
	Button MouseButton
	State  MouseButtonState
	Pos    geom.Vector2[int]
}

type (
	MouseMotionHandler func(ev MouseMotionEvent) error
	MouseButtonHandler func(ev MouseButtonEvent) error
)

// EventProducer is implemented by anything mouse handlers can be
// registered on.
type EventProducer interface {
	RegisterMouseMotionHandler(h MouseMotionHandler)
	RegisterMouseButtonHandler(h MouseButtonHandler)
}

// handlers keeps the registered handlers of an EventProducer and
// broadcasts events to them in registration order.
type handlers struct {
	motion []MouseMotionHandler
	button []MouseButtonHandler
}

func (h *handlers) RegisterMouseMotionHandler(fn MouseMotionHandler) {
	h.motion = append(h.motion, fn)
}

func (h *handlers) RegisterMouseButtonHandler(fn MouseButtonHandler) {
	h.button = append(h.button, fn)
}

func (h *handlers) handleMotion(ev MouseMotionEvent) error {
	for _, fn := range h.motion {
		if err := fn(ev); err != nil {
			return err
		}
	}
	return nil
}

func (h *handlers) handleButton(ev MouseButtonEvent) error {
	for _, fn := range h.button {
		if err := fn(ev); err != nil {
			return err
		}
	}
	return nil
}

func toMouseButton(code native.ButtonCode) MouseButton {
	switch code {
	case native.ButtonLeft:
		return LeftMouseButton
	case native.ButtonRight:
		return RightMouseButton
	case native.ButtonMiddle:
		return MiddleMouseButton
	case native.ButtonWheelUp:
		return WheelUpMouseButton
	case native.ButtonWheelDown:
		return WheelDownMouseButton
	default:
		return UnknownMouseButton
	}
}

func toMouseButtonState(state native.ButtonState) MouseButtonState {
	switch state {
	case native.Pressed:
		return MouseButtonPressed
	case native.Released:
		return MouseButtonReleased
	default:
		return UnknownMouseState
	}
}

func toButtonEvent(ev native.Button) MouseButtonEvent {
	return MouseButtonEvent{
		Button: toMouseButton(ev.Button),
		State:  toMouseButtonState(ev.State),
		Pos:    geom.Vec(ev.X, ev.Y),
	}
}

// consolidateMotion merges first and the motion events queued behind it
// into a single event at the last position with the summed delta.
func consolidateMotion(first native.Motion, rest []native.Motion) MouseMotionEvent {
	ev := MouseMotionEvent{
		Pos: geom.Vec(first.X, first.Y),
		Rel: geom.Vec(first.RelX, first.RelY),
	}
	for _, m := range rest {
		ev.Pos = geom.Vec(m.X, m.Y)
		ev.Rel = ev.Rel.Add(geom.Vec(m.RelX, m.RelY))
	}
	return ev
}
