package easing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-easing/internal/analysis"
	"github.com/tphakala/go-easing/internal/curve"
)

// Profile summarises the shape of an easing instance over its duration.
type Profile struct {
	// Curve is the resolved curve name.
	Curve string

	// Min and Max are the extreme sampled values.
	Min float64
	Max float64

	// Overshoot is how far the curve rises above max(begin, end).
	Overshoot float64

	// Undershoot is how far the curve falls below min(begin, end).
	Undershoot float64

	// PeakVelocity is the largest absolute rate of change, in value units
	// per time unit, and PeakVelocityAt the time at which it occurs.
	PeakVelocity   float64
	PeakVelocityAt float64

	// RingingEnergy is the high-frequency energy of the curve's deviation
	// from a straight line, relative to change. It is 0 for linear and
	// largest for elastic and bounce.
	RingingEnergy float64
}

// Velocity returns the rate of change of the curve at time t, estimated by
// central difference.
func (e *Easing) Velocity(t float64) float64 {
	return analysis.Velocity(e.Evaluate, t, derivativeStep*e.duration)
}

// Analyze samples e at n points and profiles it.
func Analyze(e *Easing, n int) (Profile, error) {
	if n < minAnalysisSamples {
		return Profile{}, fmt.Errorf("%w: analysis needs at least %d samples, got %d",
			ErrInvalidSampleCount, minAnalysisSamples, n)
	}

	times, err := timeGrid(e.duration, n)
	if err != nil {
		return Profile{}, err
	}
	values := e.SampleAt(nil, times)

	ramp := make([]float64, n)
	for i, t := range times {
		ramp[i] = curve.Linear(t, e.begin, e.change, e.duration)
	}

	p := Profile{Curve: e.curve.String()}
	p.Overshoot, p.Undershoot = analysis.Excursion(values, e.begin, e.End(), overshootEpsilon*max(1, math.Abs(e.change)))
	p.Min, p.Max = floats.Min(values), floats.Max(values)
	p.PeakVelocity, p.PeakVelocityAt = analysis.PeakVelocity(e.Evaluate, times, derivativeStep*e.duration)
	p.RingingEnergy = analysis.RingingEnergy(values, ramp, e.change, ringingFirstBin)

	return p, nil
}
