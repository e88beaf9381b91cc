// Package curve implements the easing curves in the Begin/Change/Duration form.
//
// Every function maps elapsed time t to a value that starts at b and reaches
// b+c at t == d. The functions are pure: no state, no allocation, no bounds
// checks. Time outside [0, d] extrapolates the formula, and a non-positive d
// yields NaN or Inf through ordinary float division.
//
// The formulas follow Robert Penner's easing equations in the form used by
// the Tweener library, including its endpoint corrections for the
// exponential family.
package curve

import "math"

// Func evaluates a curve at time t for the given begin value b,
// change c and duration d.
type Func func(t, b, c, d float64) float64

// Count is the number of curves in the library.
const Count = 31

// Names lists the curve names in table order.
var Names = [Count]string{
	"linear",
	"sine-in", "sine-out", "sine-in-out",
	"quad-in", "quad-out", "quad-in-out",
	"cubic-in", "cubic-out", "cubic-in-out",
	"quart-in", "quart-out", "quart-in-out",
	"quint-in", "quint-out", "quint-in-out",
	"expo-in", "expo-out", "expo-in-out",
	"circ-in", "circ-out", "circ-in-out",
	"back-in", "back-out", "back-in-out",
	"elastic-in", "elastic-out", "elastic-in-out",
	"bounce-in", "bounce-out", "bounce-in-out",
}

// Table holds the curve functions in the same order as Names.
var Table = [Count]Func{
	Linear,
	SineIn, SineOut, SineInOut,
	QuadIn, QuadOut, QuadInOut,
	CubicIn, CubicOut, CubicInOut,
	QuartIn, QuartOut, QuartInOut,
	QuintIn, QuintOut, QuintInOut,
	ExpoIn, ExpoOut, ExpoInOut,
	CircIn, CircOut, CircInOut,
	BackIn, BackOut, BackInOut,
	ElasticIn, ElasticOut, ElasticInOut,
	BounceIn, BounceOut, BounceInOut,
}

// Linear moves at constant speed.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// SineIn accelerates along a quarter cosine.
func SineIn(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/quarterTurn)) + c + b
}

// SineOut decelerates along a quarter sine.
func SineOut(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/quarterTurn)) + b
}

// SineInOut follows half a cosine period.
func SineInOut(t, b, c, d float64) float64 {
	return -c/halfChange*(math.Cos(math.Pi*t/d)-1) + b
}

// CircIn accelerates along a quarter circle.
func CircIn(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

// CircOut decelerates along a quarter circle.
func CircOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

// CircInOut joins CircIn and CircOut, mirrored about the midpoint.
func CircInOut(t, b, c, d float64) float64 {
	t = t / d * inOutScale
	if t < inOutHalf {
		return -c/halfChange*(math.Sqrt(1-t*t)-1) + b
	}
	t -= inOutOffset
	return c/halfChange*(math.Sqrt(1-t*t)+1) + b
}
