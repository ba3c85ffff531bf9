package ui

import "github.com/OpticalFlyer/grog/geom"

// ApplicationContext ties together the loop, the screen and the window
// being shown.
type ApplicationContext interface {
	Loop() ApplicationLoop
	Screen() Screen

	// Window returns the current window, or nil.
	Window() *Window

	// SetWindow makes w the current window and requests a redisplay.
	SetWindow(w *Window)

	// PostRedisplay requests the window to be redrawn. Requests made
	// before the redraw runs are coalesced into one.
	PostRedisplay()

	// Fail records an error raised while the window handled a mouse
	// event. The loop returns it from Run once the event is handled.
	Fail(err error)
}

// DefaultContext is the ApplicationContext used by applications.
type DefaultContext struct {
	loop   ApplicationLoop
	screen Screen
	window *Window

	redisplayPending bool
	redisplays       int

	err error
}

var _ ApplicationContext = (*DefaultContext)(nil)

// NewContext creates a context over loop and screen. Mouse events produced
// by loop are forwarded to the current window.
func NewContext(loop ApplicationLoop, screen Screen) *DefaultContext {
	ctx := &DefaultContext{
		loop:   loop,
		screen: screen,
	}
	loop.RegisterMouseMotionHandler(func(ev MouseMotionEvent) error {
		if win := ctx.window; win != nil {
			win.RespondMotion(ev)
		}
		return ctx.takeError()
	})
	loop.RegisterMouseButtonHandler(func(ev MouseButtonEvent) error {
		if win := ctx.window; win != nil {
			win.RespondButton(ev)
		}
		return ctx.takeError()
	})
	return ctx
}

func (c *DefaultContext) Loop() ApplicationLoop { return c.loop }

func (c *DefaultContext) Screen() Screen { return c.screen }

func (c *DefaultContext) Window() *Window { return c.window }

func (c *DefaultContext) SetWindow(w *Window) {
	c.window = w
	c.PostRedisplay()
}

// PostRedisplay queues a one-shot redraw unless one is already queued.
// The pending flag is cleared only after the redraw ran, so a request made
// while the redraw is queued is served by it and none is dropped.
func (c *DefaultContext) PostRedisplay() {
	if c.redisplayPending {
		return
	}
	c.redisplayPending = true
	c.loop.AddWorkUnit(func() (bool, error) {
		c.screen.Clear()
		if win := c.window; win != nil {
			win.Draw(geom.RectAt(geom.Vector2[int]{}, c.screen.Size()))
		}
		c.screen.Flush()

		c.redisplays++
		c.redisplayPending = false
		return false, nil
	})
}

// Fail keeps the first error reported while an event is handled.
func (c *DefaultContext) Fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *DefaultContext) takeError() error {
	err := c.err
	c.err = nil
	return err
}

// Redisplays returns how many redraws have run.
func (c *DefaultContext) Redisplays() int {
	return c.redisplays
}
