// Package easing provides named easing curves for animating numeric
// properties such as position, opacity and scale.
//
// Curves use the Begin/Change/Duration model: a value starts at begin and
// reaches begin+change when the elapsed time t reaches duration. The
// library implements Robert Penner's easing equations, including the
// endpoint corrections the Tweener library applies to the exponential
// family.
//
// # Quick Start
//
// For one-shot evaluation:
//
//	v := easing.Ease("quad-out", t, 0, 100, 0.5)
//
// For an animation evaluated once per frame:
//
//	cfg := easing.DefaultConfig()
//	cfg.Change = 100
//	cfg.Duration = 0.5
//	cfg.Curve = "bounce-out"
//	e := easing.New(&cfg)
//
//	for _, t := range frameTimes {
//	    draw(e.Evaluate(t))
//	}
//
// # Curves
//
// There are 31 curves: "linear" and, for each of the families sine, quad,
// cubic, quart, quint, expo, circ, back, elastic and bounce, the variants
// "-in" (accelerate from rest), "-out" (decelerate to rest) and "-in-out"
// (both). Names are case sensitive. Use [Names] or [Curves] to list them.
//
// # Unknown Names
//
// [New], [Resolve] and [Ease] never fail: a name outside the vocabulary
// selects "linear", so a typo degrades the motion instead of breaking the
// animation. Tools that want to report typos use [ParseCurve] or
// [Config.Validate], which return [ErrUnknownCurve].
//
// # Boundary Behavior
//
// Polynomial and trigonometric curves hit begin and begin+change at t == 0
// and t == duration by construction. The expo and elastic families return
// the endpoints through explicit branches that fire only at exactly t == 0
// and t == duration. expo-in stays shifted down by change/1000 at
// t == duration, and back-in/back-out deliberately overshoot between the
// endpoints.
//
// Evaluate performs no bounds checks. Time outside [0, duration]
// extrapolates the formula, and a non-positive duration produces NaN or
// Inf through ordinary division.
//
// # Sampling
//
// Animation drivers that precompute frame tables can use
// [Easing.Sample], [SampleChannels] for several channels sharing one
// curve, [InterleaveXY] for 2D positions and [SampleMulti] to sample many
// tracks, optionally in parallel. [Analyze] reports overshoot, peak
// velocity and ringing of a curve.
//
// # Thread Safety
//
// An [Easing] is immutable after construction and safe for concurrent use
// by any number of goroutines. The name table is built once at package
// initialisation and only read afterwards.
package easing
