package easing

import (
	"github.com/tphakala/go-easing/internal/curve"
)

// Func evaluates a curve at time t for begin value b, change c and
// duration d.
type Func = curve.Func

// Curve identifies one of the built-in easing curves.
// The zero value is Linear.
type Curve int

// Built-in curves, in vocabulary order.
const (
	Linear Curve = iota

	SineIn
	SineOut
	SineInOut

	QuadIn
	QuadOut
	QuadInOut

	CubicIn
	CubicOut
	CubicInOut

	QuartIn
	QuartOut
	QuartInOut

	QuintIn
	QuintOut
	QuintInOut

	ExpoIn
	ExpoOut
	ExpoInOut

	CircIn
	CircOut
	CircInOut

	BackIn
	BackOut
	BackInOut

	ElasticIn
	ElasticOut
	ElasticInOut

	BounceIn
	BounceOut
	BounceInOut

	numCurves
)

// Mode is the variant of a curve family.
type Mode int

const (
	// ModeNone is used by Linear, which has no variants.
	ModeNone Mode = iota

	// ModeIn accelerates from rest.
	ModeIn

	// ModeOut decelerates to rest.
	ModeOut

	// ModeInOut accelerates over the first half and decelerates over the second.
	ModeInOut
)

var modeNames = [...]string{"none", "in", "out", "in-out"}

// String returns the name suffix of the mode ("in", "out", "in-out") or
// "none".
func (m Mode) String() string {
	if m < ModeNone || m > ModeInOut {
		return modeNames[ModeNone]
	}
	return modeNames[m]
}

// families lists the family names. Every family after linear has three
// consecutive curves in In, Out, InOut order.
var families = [...]string{
	"sine", "quad", "cubic", "quart", "quint",
	"expo", "circ", "back", "elastic", "bounce",
}

// Valid reports whether c is one of the built-in curves.
func (c Curve) Valid() bool {
	return c >= Linear && c < numCurves
}

// String returns the curve name, e.g. "quad-in-out". Invalid values
// report "linear", the curve they evaluate as.
func (c Curve) String() string {
	if !c.Valid() {
		return curve.Names[Linear]
	}
	return curve.Names[c]
}

// Func returns the function implementing the curve. Invalid values
// return the linear curve.
func (c Curve) Func() Func {
	if !c.Valid() {
		return curve.Linear
	}
	return curve.Table[c]
}

// Family returns the family name: "linear", "sine", "quad", ...
func (c Curve) Family() string {
	if !c.Valid() || c == Linear {
		return curve.Names[Linear]
	}
	return families[(c-SineIn)/variantsPerFamily]
}

// Mode returns the variant of the curve within its family.
func (c Curve) Mode() Mode {
	if !c.Valid() || c == Linear {
		return ModeNone
	}
	return Mode((c-SineIn)%variantsPerFamily) + ModeIn
}

// Curves returns all built-in curves in vocabulary order.
func Curves() []Curve {
	out := make([]Curve, numCurves)
	for i := range out {
		out[i] = Curve(i)
	}
	return out
}
