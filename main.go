package main

import (
	"flag"
	"log"

	"github.com/OpticalFlyer/grog/app"
	"github.com/OpticalFlyer/grog/geom"
	"github.com/OpticalFlyer/grog/ui"
)

func run(args []string) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	engine := flags.String("engine", app.EngineEbiten, "engine to run on: ebiten or headless")
	width := flags.String("width", "640", "screen width")
	height := flags.String("height", "480", "screen height")
	debug := flags.Bool("debug", false, "show the FPS/TPS overlay")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	props := app.Properties{
		app.PropAppEngine:    *engine,
		app.PropScreenWidth:  *width,
		app.PropScreenHeight: *height,
		app.PropScreenTitle:  "Grog demo",
	}
	if *debug {
		props[app.PropScreenDebug] = "yes"
	}

	a, err := app.New(props)
	if err != nil {
		return err
	}
	ctx := a.Context()

	layout := ui.SetChild(a.NewWindow(), ui.NewFixedLayout(ctx))

	red := ui.NewColorBox(ctx, ui.LightRed)
	green := ui.NewColorBox(ctx, ui.LightGreen)
	green.SetLocked(true) // stays put when dragged
	blue := ui.NewColorBox(ctx, ui.LightBlue)

	// Clicking the button hides or shows the blue box.
	toggle := ui.NewButton(ctx, func() error {
		blue.SetVisible(!blue.Visible())
		return nil
	})

	layout.AddWidget(red, geom.Rect(100, 100, 50, 50)).
		AddWidget(green, geom.Rect(200, 200, 50, 50)).
		AddWidget(blue, geom.Rect(300, 300, 50, 50)).
		AddWidget(toggle, geom.Rect(10, 10, 80, 24))

	a.Loop().RegisterMouseButtonHandler(func(ev ui.MouseButtonEvent) error {
		log.Printf("Mouse button %s was %s on (%d, %d)", ev.Button, ev.State, ev.Pos.X, ev.Pos.Y)
		ctx.PostRedisplay()
		return nil
	})

	return a.Run()
}

func main() {
	app.Main(run)
}
