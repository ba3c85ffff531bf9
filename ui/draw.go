package ui

import (
	"image/color"

	"github.com/OpticalFlyer/grog/geom"
)

// Drawable is anything that can paint itself into a region of the screen.
// The region is expressed in screen coordinates.
type Drawable interface {
	Draw(region geom.Rect2[int])
}

// Rectangle is a filled rectangle shape.
type Rectangle interface {
	Drawable
}

// ShapeFactory creates the shapes a Screen knows how to draw.
type ShapeFactory interface {
	CreateRectangle(c color.Color) Rectangle
}

// Screen is the drawing surface of an application.
type Screen interface {
	// Size returns the screen size in pixels.
	Size() geom.Vector2[int]

	// Clear discards everything drawn since the last Flush.
	Clear()

	// Flush presents what was drawn since the last Clear.
	Flush()

	ShapeFactory() ShapeFactory
}
