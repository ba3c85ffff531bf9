package ui

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette used by the toolkit's own widgets and demos.
var (
	Blue       color.RGBA = colornames.Blue
	Green      color.RGBA = colornames.Lime
	Red        color.RGBA = colornames.Red
	LightBlue  color.RGBA = colornames.Lightskyblue
	LightGreen color.RGBA = colornames.Lightgreen
	LightRed   color.RGBA = colornames.Lightcoral
	Gray       color.RGBA = colornames.Gray
	DarkGray   color.RGBA = colornames.Dimgray
	Black      color.RGBA = colornames.Black
)
