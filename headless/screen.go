// Package headless implements an engine with no window: events are pushed
// by the caller and frames are kept in memory.
package headless

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/OpticalFlyer/grog/geom"
	"github.com/OpticalFlyer/grog/ui"
)

// Op is a filled rectangle drawn on a Screen.
type Op struct {
	Region geom.Rect2[int]
	Color  color.RGBA
}

// Screen records the rectangles drawn between Clear and Flush. Each Flush
// appends a frame.
type Screen struct {
	size    geom.Vector2[int]
	pending []Op
	frames  [][]Op
}

var _ ui.Screen = (*Screen)(nil)

// NewScreen creates a screen of the given size in pixels.
func NewScreen(width, height int) *Screen {
	return &Screen{size: geom.Vec(width, height)}
}

func (s *Screen) Size() geom.Vector2[int] { return s.size }

func (s *Screen) Clear() {
	s.pending = s.pending[:0]
}

func (s *Screen) Flush() {
	frame := make([]Op, len(s.pending))
	copy(frame, s.pending)
	s.frames = append(s.frames, frame)
}

func (s *Screen) ShapeFactory() ui.ShapeFactory { return s }

// CreateRectangle returns a rectangle drawing on s.
func (s *Screen) CreateRectangle(c color.Color) ui.Rectangle {
	return rectangle{screen: s, color: color.RGBAModel.Convert(c).(color.RGBA)}
}

// Frames returns the number of flushed frames.
func (s *Screen) Frames() int {
	return len(s.frames)
}

// LastFrame returns the ops of the last flushed frame, in drawing order.
func (s *Screen) LastFrame() []Op {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Snapshot rasterizes the last flushed frame over a black background.
func (s *Screen) Snapshot() *image.RGBA {
	bounds := image.Rect(0, 0, s.size.X, s.size.Y)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)
	for _, op := range s.LastFrame() {
		r := image.Rect(op.Region.X, op.Region.Y, op.Region.X+op.Region.W, op.Region.Y+op.Region.H)
		draw.Draw(img, r.Intersect(bounds), image.NewUniform(op.Color), image.Point{}, draw.Over)
	}
	return img
}

type rectangle struct {
	screen *Screen
	color  color.RGBA
}

func (r rectangle) Draw(region geom.Rect2[int]) {
	r.screen.pending = append(r.screen.pending, Op{Region: region, Color: r.color})
}
