// Package desktop implements an engine that shows the application in a
// desktop window using ebiten.
//
// ebiten owns the main goroutine, so the application loop runs on a second
// goroutine. The two only share the event queue and the last flushed
// frame.
package desktop

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/OpticalFlyer/grog/native"
	"github.com/OpticalFlyer/grog/ui"
)

// Config describes the window of an Engine.
type Config struct {
	Width, Height int
	Depth         int
	Title         string
	// DoubleBuffer synchronizes presenting frames with the display.
	DoubleBuffer bool
	// Debug shows an FPS/TPS overlay.
	Debug bool
}

// Engine is an ebiten window feeding an application loop.
type Engine struct {
	cfg    Config
	queue  *native.Queue
	screen *Screen
}

// NewEngine checks cfg and creates an engine. The window is not opened
// until Run.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid screen size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Depth != 24 && cfg.Depth != 32 {
		return nil, fmt.Errorf("unsupported screen depth %d, want 24 or 32", cfg.Depth)
	}
	return &Engine{
		cfg:    cfg,
		queue:  native.NewQueue(),
		screen: newScreen(cfg.Width, cfg.Height),
	}, nil
}

func (e *Engine) Source() ui.EventSource { return e.queue }

func (e *Engine) Screen() ui.Screen { return e.screen }

// Run opens the window and runs loop next to it until either the loop
// returns or the window is closed. It must be called from the main
// goroutine.
func (e *Engine) Run(loop func() error) error {
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetVsyncEnabled(e.cfg.DoubleBuffer)
	ebiten.SetWindowClosingHandled(true)

	g := newGame(e.cfg, e.queue, e.screen)

	var group errgroup.Group
	group.Go(func() error {
		defer close(g.done)
		return loop()
	})

	runErr := ebiten.RunGame(g)
	// Make sure the loop returns if ebiten stopped first.
	e.queue.PushEvent(native.Quit{})
	if err := group.Wait(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("ebiten: %w", runErr)
	}
	return nil
}
