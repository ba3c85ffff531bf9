package desktop

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/grog/geom"
	"github.com/OpticalFlyer/grog/ui"
)

type rectOp struct {
	region geom.Rect2[int]
	color  color.RGBA
}

// Screen collects the rectangles drawn by the application loop and hands
// each flushed frame to ebiten, which keeps presenting it until the next
// Flush.
type Screen struct {
	size geom.Vector2[int]

	// Only touched by the application loop goroutine.
	pending []rectOp

	mu      sync.Mutex
	front   []rectOp
	flushes int
}

var _ ui.Screen = (*Screen)(nil)

func newScreen(width, height int) *Screen {
	return &Screen{size: geom.Vec(width, height)}
}

func (s *Screen) Size() geom.Vector2[int] { return s.size }

func (s *Screen) Clear() {
	s.pending = s.pending[:0]
}

func (s *Screen) Flush() {
	frame := make([]rectOp, len(s.pending))
	copy(frame, s.pending)

	s.mu.Lock()
	s.front = frame
	s.flushes++
	s.mu.Unlock()
}

func (s *Screen) ShapeFactory() ui.ShapeFactory { return s }

// CreateRectangle returns a filled rectangle of color c.
func (s *Screen) CreateRectangle(c color.Color) ui.Rectangle {
	return rectangle{screen: s, color: color.RGBAModel.Convert(c).(color.RGBA)}
}

// present draws the last flushed frame to dst. It is called on ebiten's
// goroutine.
func (s *Screen) present(dst *ebiten.Image) (flushes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst.Fill(color.Black)
	for _, op := range s.front {
		vector.DrawFilledRect(dst,
			float32(op.region.X), float32(op.region.Y),
			float32(op.region.W), float32(op.region.H),
			op.color, false)
	}
	return s.flushes
}

type rectangle struct {
	screen *Screen
	color  color.RGBA
}

func (r rectangle) Draw(region geom.Rect2[int]) {
	r.screen.pending = append(r.screen.pending, rectOp{region: region, color: r.color})
}
