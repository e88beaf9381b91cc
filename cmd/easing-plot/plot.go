package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	easing "github.com/tphakala/go-easing"
)

const (
	curveRune = '*'
	guideRune = '.'

	titleRows   = 1 // Curve name and value range
	footerRows  = 1 // Key help
	minPlotRows = 2
	minPlotCols = 2
)

var (
	curveStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	guideStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault
)

// canvas is the part of tcell.Screen the plotter draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// plotArea maps curve values to screen rows.
type plotArea struct {
	top, rows int
	lo, hi    float64
}

func (p plotArea) row(v float64) int {
	frac := (p.hi - v) / (p.hi - p.lo)
	r := int(math.Round(frac * float64(p.rows-1)))
	return p.top + max(0, min(r, p.rows-1))
}

// columnValues evaluates e once per screen column, first and last column
// at exactly 0 and duration.
func columnValues(e *easing.Easing, cols int) []float64 {
	values, err := e.Sample(cols)
	if err != nil {
		return nil
	}
	return values
}

// drawPlot renders the curve of e onto c. The vertical range always covers
// begin and end and grows to fit overshoot. It returns false when the
// canvas is too small to plot.
func drawPlot(c canvas, e *easing.Easing) bool {
	width, height := c.Size()
	rows := height - titleRows - footerRows
	if rows < minPlotRows || width < minPlotCols {
		return false
	}

	values := columnValues(e, width)
	if values == nil {
		return false
	}

	lo, hi := min(e.Begin(), e.End()), max(e.Begin(), e.End())
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	area := plotArea{top: titleRows, rows: rows, lo: lo, hi: hi}

	for x := range width {
		c.SetContent(x, area.row(e.Begin()), guideRune, nil, guideStyle)
		c.SetContent(x, area.row(e.End()), guideRune, nil, guideStyle)
	}
	for x, v := range values {
		c.SetContent(x, area.row(v), curveRune, nil, curveStyle)
	}

	drawText(c, 0, 0, fmt.Sprintf("%s  [%.3f, %.3f]", e.Curve(), lo, hi))
	drawText(c, 0, height-1, "left/right: curve  q: quit")
	return true
}

func drawText(c canvas, x, y int, s string) {
	width, _ := c.Size()
	for _, r := range s {
		if x >= width {
			return
		}
		c.SetContent(x, y, r, nil, textStyle)
		x++
	}
}
