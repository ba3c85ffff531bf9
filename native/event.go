// Package native defines the events a backend feeds into the application
// loop and a queue to carry them.
package native

// Event is one of Motion, Button, Quit or WorkPending.
type Event interface {
	isEvent()
}

// ButtonCode identifies a mouse button as reported by a backend.
type ButtonCode uint8

const (
	ButtonLeft ButtonCode = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

// ButtonState is the state a mouse button transitioned to.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

// Motion reports the cursor moving to (X, Y), (RelX, RelY) away from the
// previously reported position.
type Motion struct {
	X, Y       int
	RelX, RelY int
}

// Button reports a mouse button changing state at (X, Y).
type Button struct {
	Button ButtonCode
	State  ButtonState
	X, Y   int
}

// Quit asks the application loop to stop.
type Quit struct{}

// WorkPending tells the application loop a work unit is waiting.
type WorkPending struct{}

func (Motion) isEvent()      {}
func (Button) isEvent()      {}
func (Quit) isEvent()        {}
func (WorkPending) isEvent() {}
