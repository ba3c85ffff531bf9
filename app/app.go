// Package app bootstraps grog applications: it reads properties, starts
// the engine they select and runs the application loop on it.
package app

import (
	"fmt"
	"log"
	"os"

	"github.com/OpticalFlyer/grog/desktop"
	"github.com/OpticalFlyer/grog/headless"
	"github.com/OpticalFlyer/grog/ui"
)

// Engine provides the native side of an application: where events come
// from, where frames go, and how the loop is driven.
type Engine interface {
	Source() ui.EventSource
	Screen() ui.Screen

	// Run drives loop until it returns.
	Run(loop func() error) error
}

// Application is a configured engine with its loop and context.
type Application struct {
	props  Properties
	engine Engine
	loop   *ui.Loop
	ctx    *ui.DefaultContext
}

// New initializes an application from props. Properties not given take
// their default value.
func New(props Properties) (*Application, error) {
	props = props.WithDefaults()
	for name := range props {
		if !known(name) {
			log.Printf("ignoring unknown property %s", name)
		}
	}

	engine, err := newEngine(props)
	if err != nil {
		return nil, err
	}
	a := NewWithEngine(engine)
	a.props = props
	return a, nil
}

// NewWithEngine creates an application running on engine.
func NewWithEngine(engine Engine) *Application {
	loop := ui.NewLoop(engine.Source())
	return &Application{
		props:  DefaultProperties(),
		engine: engine,
		loop:   loop,
		ctx:    ui.NewContext(loop, engine.Screen()),
	}
}

func newEngine(props Properties) (Engine, error) {
	width, err := ParseUint(PropScreenWidth, props[PropScreenWidth])
	if err != nil {
		return nil, err
	}
	height, err := ParseUint(PropScreenHeight, props[PropScreenHeight])
	if err != nil {
		return nil, err
	}
	depth, err := ParseUint(PropScreenDepth, props[PropScreenDepth])
	if err != nil {
		return nil, err
	}
	doubleBuffer, err := ParseBool(PropScreenDoubleBuffer, props[PropScreenDoubleBuffer])
	if err != nil {
		return nil, err
	}
	debug, err := ParseBool(PropScreenDebug, props[PropScreenDebug])
	if err != nil {
		return nil, err
	}

	switch name := props[PropAppEngine]; name {
	case EngineEbiten:
		engine, err := desktop.NewEngine(desktop.Config{
			Width:        int(width),
			Height:       int(height),
			Depth:        int(depth),
			Title:        props[PropScreenTitle],
			DoubleBuffer: doubleBuffer,
			Debug:        debug,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInit, err)
		}
		return engine, nil
	case EngineHeadless:
		return headless.NewEngine(int(width), int(height)), nil
	default:
		return nil, &PropertyError{
			Name:     PropAppEngine,
			Value:    name,
			Expected: fmt.Sprintf("one of [%s %s]", EngineEbiten, EngineHeadless),
			Kind:     ErrInvalidConfig,
		}
	}
}

// Properties returns the properties the application was created with,
// defaults included.
func (a *Application) Properties() Properties { return a.props }

func (a *Application) Engine() Engine { return a.engine }

func (a *Application) Loop() *ui.Loop { return a.loop }

func (a *Application) Context() *ui.DefaultContext { return a.ctx }

// NewWindow creates a window and shows it.
func (a *Application) NewWindow() *ui.Window {
	win := ui.NewWindow(a.ctx)
	a.ctx.SetWindow(win)
	return win
}

// Run runs the application loop on the engine until it stops.
func (a *Application) Run() error {
	return a.engine.Run(a.loop.Run)
}

// Main runs entry with the command line arguments. If entry fails, the
// error is logged and the process exits with status 1.
func Main(entry func(args []string) error) {
	if err := entry(os.Args); err != nil {
		log.Printf("application execution failed: %v", err)
		os.Exit(1)
	}
}
