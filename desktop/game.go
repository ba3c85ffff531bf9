package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/grog/native"
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	code   native.ButtonCode
}{
	{ebiten.MouseButtonLeft, native.ButtonLeft},
	{ebiten.MouseButtonRight, native.ButtonRight},
	{ebiten.MouseButtonMiddle, native.ButtonMiddle},
}

// game implements ebiten.Game. Update turns ebiten's polled input state
// into native events; Draw presents the last flushed frame.
type game struct {
	cfg    Config
	queue  *native.Queue
	screen *Screen
	done   chan struct{}

	quitSent bool

	// Last position reported to the loop, by the mouse or a touch.
	posKnown     bool
	lastX, lastY int

	cursorKnown      bool
	cursorX, cursorY int

	touch touchState
}

var _ ebiten.Game = (*game)(nil)

func newGame(cfg Config, queue *native.Queue, screen *Screen) *game {
	return &game{
		cfg:    cfg,
		queue:  queue,
		screen: screen,
		done:   make(chan struct{}),
	}
}

func (g *game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() && !g.quitSent {
		g.queue.PushEvent(native.Quit{})
		g.quitSent = true
	}

	g.pollMouse()
	g.pollTouch()
	return nil
}

func (g *game) pollMouse() {
	x, y := ebiten.CursorPosition()
	cursorMoved := !g.cursorKnown || x != g.cursorX || y != g.cursorY
	g.cursorKnown = true
	g.cursorX, g.cursorY = x, y
	if cursorMoved && !g.touch.active {
		g.moveTo(x, y)
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			g.queue.PushEvent(native.Button{Button: b.code, State: native.Pressed, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			g.queue.PushEvent(native.Button{Button: b.code, State: native.Released, X: x, Y: y})
		}
	}

	// Wheel steps are reported as a press immediately followed by a
	// release, like SDL does.
	_, wheelY := ebiten.Wheel()
	switch {
	case wheelY > 0:
		g.click(native.ButtonWheelUp, x, y)
	case wheelY < 0:
		g.click(native.ButtonWheelDown, x, y)
	}
}

// moveTo reports a motion to (x, y) if the pointer is somewhere else.
func (g *game) moveTo(x, y int) {
	if !g.posKnown {
		g.lastX, g.lastY = x, y
		g.posKnown = true
		return
	}
	if x == g.lastX && y == g.lastY {
		return
	}
	g.queue.PushEvent(native.Motion{X: x, Y: y, RelX: x - g.lastX, RelY: y - g.lastY})
	g.lastX, g.lastY = x, y
}

func (g *game) click(code native.ButtonCode, x, y int) {
	g.queue.PushEvent(native.Button{Button: code, State: native.Pressed, X: x, Y: y})
	g.queue.PushEvent(native.Button{Button: code, State: native.Released, X: x, Y: y})
}

func (g *game) Draw(screen *ebiten.Image) {
	flushes := g.screen.present(screen)

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f Frames: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), flushes))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
