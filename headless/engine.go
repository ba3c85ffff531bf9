package headless

import (
	"github.com/OpticalFlyer/grog/native"
	"github.com/OpticalFlyer/grog/ui"
)

// Engine runs the application loop on the calling goroutine. Input is
// whatever is pushed to Queue.
type Engine struct {
	Queue  *native.Queue
	screen *Screen
}

// NewEngine creates an engine with an empty queue and a screen of the
// given size.
func NewEngine(width, height int) *Engine {
	return &Engine{
		Queue:  native.NewQueue(),
		screen: NewScreen(width, height),
	}
}

func (e *Engine) Source() ui.EventSource { return e.Queue }

func (e *Engine) Screen() ui.Screen { return e.screen }

// HeadlessScreen returns the screen with its inspection methods.
func (e *Engine) HeadlessScreen() *Screen { return e.screen }

// Run calls loop and returns its error.
func (e *Engine) Run(loop func() error) error {
	return loop()
}
