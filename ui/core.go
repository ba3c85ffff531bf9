package ui

import "github.com/OpticalFlyer/grog/geom"

// Widget is the basic building block of the UI: something that draws
// itself into a region and responds to mouse events expressed relative to
// that region.
//
// Layouts tell widgets apart with ==, so implementations should be
// pointers. A widget whose dynamic type is not comparable can be placed
// and drawn but never found by identity, so it cannot be moved, raised,
// removed or dragged.
type Widget interface {
	Drawable
	MouseResponder

	Enabled() bool
	Locked() bool
	Visible() bool
}

// Base holds the state common to all widgets. Embed it to implement
// Widget. The zero flags mean enabled, unlocked and visible.
type Base struct {
	ctx      ApplicationContext
	disabled bool
	locked   bool
	hidden   bool
}

// NewBase returns a Base bound to ctx.
func NewBase(ctx ApplicationContext) Base {
	return Base{ctx: ctx}
}

// Context returns the application context the widget belongs to.
func (b *Base) Context() ApplicationContext { return b.ctx }

func (b *Base) Enabled() bool { return !b.disabled }

func (b *Base) SetEnabled(enabled bool) { b.disabled = !enabled }

// Locked reports whether the widget is pinned in place within its layout.
func (b *Base) Locked() bool { return b.locked }

func (b *Base) SetLocked(locked bool) { b.locked = locked }

func (b *Base) Visible() bool { return !b.hidden }

func (b *Base) SetVisible(visible bool) {
	if b.hidden == !visible {
		return
	}
	b.hidden = !visible
	b.PostRedisplay()
}

// PostRedisplay requests a redraw of the window through the widget's
// context.
func (b *Base) PostRedisplay() {
	if b.ctx != nil {
		b.ctx.PostRedisplay()
	}
}

// Fail reports err through the widget's context, making the application
// loop stop with it.
func (b *Base) Fail(err error) {
	if b.ctx != nil {
		b.ctx.Fail(err)
	}
}

// ShapeFactory returns the shape factory of the context's screen.
func (b *Base) ShapeFactory() ShapeFactory {
	return b.ctx.Screen().ShapeFactory()
}

// Window is the root widget shown by an application context. It wraps a
// single child that fills the whole screen.
type Window struct {
	Base
	child Widget
}

var _ Widget = (*Window)(nil)

// NewWindow creates an empty window. It is not shown until passed to the
// context's SetWindow.
func NewWindow(ctx ApplicationContext) *Window {
	return &Window{Base: NewBase(ctx)}
}

func (w *Window) Child() Widget { return w.child }

// SetChild replaces the window content.
func (w *Window) SetChild(child Widget) {
	w.child = child
	w.PostRedisplay()
}

// SetChild sets child as the content of win and returns it, for chaining
// calls on the concrete child type.
func SetChild[W Widget](win *Window, child W) W {
	win.SetChild(child)
	return child
}

func (w *Window) Draw(region geom.Rect2[int]) {
	if w.child != nil && w.child.Visible() {
		w.child.Draw(region)
	}
}

// RespondButton forwards ev to the child unless it is hidden.
func (w *Window) RespondButton(ev MouseButtonEvent) bool {
	if w.child == nil || !w.child.Visible() {
		return false
	}
	return w.child.RespondButton(ev)
}

func (w *Window) RespondMotion(ev MouseMotionEvent) bool {
	if w.child == nil || !w.child.Visible() {
		return false
	}
	return w.child.RespondMotion(ev)
}
