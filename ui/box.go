package ui

import (
	"image/color"

	"github.com/OpticalFlyer/grog/geom"
)

// ColorBox is a rectangle filled with a single color. It ignores mouse
// events, so inside a FixedLayout it can be dragged around.
type ColorBox struct {
	Base
	MouseUnresponder
	rect Rectangle
}

var _ Widget = (*ColorBox)(nil)

// NewColorBox creates a box of color c.
func NewColorBox(ctx ApplicationContext, c color.Color) *ColorBox {
	b := &ColorBox{Base: NewBase(ctx)}
	b.rect = b.ShapeFactory().CreateRectangle(c)
	return b
}

func (b *ColorBox) Draw(region geom.Rect2[int]) {
	b.rect.Draw(region)
}
