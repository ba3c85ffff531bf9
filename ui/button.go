package ui

import (
	"fmt"

	"github.com/OpticalFlyer/grog/geom"
)

var _ Widget = (*Button)(nil)

// Button is a bordered rectangle that calls OnClick when clicked with the
// left button. It is drawn in its pressed color between press and release.
// An error returned by OnClick stops the application loop.
type Button struct {
	Base
	OnClick func() error

	click   *SingleClickResponder
	border  Rectangle
	face    Rectangle
	pressed Rectangle
}

// NewButton creates a button calling onClick, which may be nil.
func NewButton(ctx ApplicationContext, onClick func() error) *Button {
	b := &Button{
		Base:    NewBase(ctx),
		OnClick: onClick,
	}
	shapes := b.ShapeFactory()
	b.border = shapes.CreateRectangle(Black)
	b.face = shapes.CreateRectangle(Gray)
	b.pressed = shapes.CreateRectangle(DarkGray)
	b.click = NewSingleClickResponder(nil, b.onClick)
	return b
}

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool {
	return b.click.Pressed()
}

func (b *Button) Draw(region geom.Rect2[int]) {
	b.border.Draw(region)
	inner := geom.Rect(region.X+1, region.Y+1, region.W-2, region.H-2)
	if b.click.Pressed() {
		b.pressed.Draw(inner)
	} else {
		b.face.Draw(inner)
	}
}

func (b *Button) RespondButton(ev MouseButtonEvent) bool {
	was := b.click.Pressed()
	consumed := b.click.RespondButton(ev)
	if was != b.click.Pressed() {
		b.PostRedisplay()
	}
	return consumed
}

func (b *Button) RespondMotion(ev MouseMotionEvent) bool {
	return b.click.RespondMotion(ev)
}

func (b *Button) onClick(geom.Vector2[int]) {
	if b.OnClick == nil {
		return
	}
	if err := b.OnClick(); err != nil {
		b.Fail(fmt.Errorf("button click: %w", err))
	}
}
