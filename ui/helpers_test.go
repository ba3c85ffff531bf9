package ui

import (
	"image/color"
	"io"
	"log"

	"github.com/OpticalFlyer/grog/geom"
	"github.com/OpticalFlyer/grog/native"
)

type drawCall struct {
	color  color.Color
	region geom.Rect2[int]
}

type testScreen struct {
	size    geom.Vector2[int]
	clears  int
	flushes int
	draws   []drawCall
}

func newTestScreen() *testScreen {
	return &testScreen{size: geom.Vec(640, 480)}
}

func (s *testScreen) Size() geom.Vector2[int]    { return s.size }
func (s *testScreen) Clear()                     { s.clears++; s.draws = nil }
func (s *testScreen) Flush()                     { s.flushes++ }
func (s *testScreen) ShapeFactory() ShapeFactory { return s }

func (s *testScreen) CreateRectangle(c color.Color) Rectangle {
	return testRect{screen: s, color: c}
}

type testRect struct {
	screen *testScreen
	color  color.Color
}

func (r testRect) Draw(region geom.Rect2[int]) {
	r.screen.draws = append(r.screen.draws, drawCall{color: r.color, region: region})
}

// fakeContext counts redisplay requests instead of scheduling them.
type fakeContext struct {
	screen *testScreen
	window *Window
	posts  int
	errs   []error
}

func newFakeContext() *fakeContext {
	return &fakeContext{screen: newTestScreen()}
}

func (c *fakeContext) Loop() ApplicationLoop { return nil }
func (c *fakeContext) Screen() Screen        { return c.screen }
func (c *fakeContext) Window() *Window       { return c.window }
func (c *fakeContext) SetWindow(w *Window)   { c.window = w; c.posts++ }
func (c *fakeContext) PostRedisplay()        { c.posts++ }
func (c *fakeContext) Fail(err error)        { c.errs = append(c.errs, err) }

// testWidget records what it is asked to draw and the events it receives.
type testWidget struct {
	Base
	name    string
	log     *[]string
	regions []geom.Rect2[int]
	buttons []MouseButtonEvent
	motions []MouseMotionEvent
	consume bool
}

func newTestWidget(ctx ApplicationContext, name string, log *[]string) *testWidget {
	return &testWidget{Base: NewBase(ctx), name: name, log: log}
}

func (w *testWidget) Draw(region geom.Rect2[int]) {
	w.regions = append(w.regions, region)
	if w.log != nil {
		*w.log = append(*w.log, w.name)
	}
}

func (w *testWidget) RespondButton(ev MouseButtonEvent) bool {
	w.buttons = append(w.buttons, ev)
	return w.consume
}

func (w *testWidget) RespondMotion(ev MouseMotionEvent) bool {
	w.motions = append(w.motions, ev)
	return w.consume
}

func newTestLoop() (*Loop, *native.Queue) {
	q := native.NewQueue()
	l := NewLoop(q)
	l.SetLogger(log.New(io.Discard, "", 0))
	return l, q
}

func press(x, y int) MouseButtonEvent {
	return MouseButtonEvent{Button: LeftMouseButton, State: MouseButtonPressed, Pos: geom.Vec(x, y)}
}

func release(x, y int) MouseButtonEvent {
	return MouseButtonEvent{Button: LeftMouseButton, State: MouseButtonReleased, Pos: geom.Vec(x, y)}
}

func motion(x, y, dx, dy int) MouseMotionEvent {
	return MouseMotionEvent{Pos: geom.Vec(x, y), Rel: geom.Vec(dx, dy)}
}
