package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/grog/native"
)

// touchState follows the first finger touching the screen, which is
// reported as the left mouse button. Other fingers are ignored.
type touchState struct {
	active bool
	id     ebiten.TouchID
	ids    []ebiten.TouchID
}

func (g *game) pollTouch() {
	t := &g.touch

	if !t.active {
		t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
		if len(t.ids) == 0 {
			return
		}
		t.id = t.ids[0]
		t.active = true
		x, y := ebiten.TouchPosition(t.id)
		g.moveTo(x, y)
		g.queue.PushEvent(native.Button{Button: native.ButtonLeft, State: native.Pressed, X: x, Y: y})
		return
	}

	if inpututil.IsTouchJustReleased(t.id) {
		x, y := inpututil.TouchPositionInPreviousTick(t.id)
		g.moveTo(x, y)
		g.queue.PushEvent(native.Button{Button: native.ButtonLeft, State: native.Released, X: x, Y: y})
		t.active = false
		return
	}

	x, y := ebiten.TouchPosition(t.id)
	g.moveTo(x, y)
}
