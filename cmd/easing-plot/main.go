// Command easing-plot draws easing curves in the terminal.
//
// Left/right (or up/down) cycles through the curves; q or Esc quits.
//
// Usage:
//
//	easing-plot
//	easing-plot -curve elastic-out
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	easing "github.com/tphakala/go-easing"
)

type action int

const (
	actionNone action = iota
	actionPrev
	actionNext
	actionQuit
)

// keyAction maps a key press to a plotter action.
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft, tcell.KeyUp:
		return actionPrev
	case tcell.KeyRight, tcell.KeyDown:
		return actionNext
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actionQuit
		case 'h', 'k':
			return actionPrev
		case 'l', 'j', ' ':
			return actionNext
		}
	}
	return actionNone
}

// cycle steps through the curve vocabulary with wrap-around.
func cycle(c easing.Curve, a action) easing.Curve {
	n := easing.Curve(len(easing.Curves()))
	switch a {
	case actionPrev:
		return (c - 1 + n) % n
	case actionNext:
		return (c + 1) % n
	default:
		return c
	}
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curveName := flag.String("curve", "linear", "Initial curve")
	flag.Parse()

	current, err := easing.ParseCurve(*curveName)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return loop(screen, current)
}

func loop(screen tcell.Screen, current easing.Curve) error {
	for {
		screen.Clear()
		drawPlot(screen, easing.NewCurve(current, 0, 1, 1))
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			a := keyAction(ev.Key(), ev.Rune())
			if a == actionQuit {
				return nil
			}
			current = cycle(current, a)
		}
	}
}
