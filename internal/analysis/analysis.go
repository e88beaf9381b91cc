// Package analysis measures the shape of sampled curves: how far they leave
// their value range, how fast they move and how much they oscillate.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-easing/internal/simdops"
)

// Velocity returns the derivative of f at x by central difference with
// the given step.
func Velocity(f func(float64) float64, x, step float64) float64 {
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
}

// PeakVelocity returns the largest absolute derivative of f over times and
// the time at which it occurs. times must not be empty.
func PeakVelocity(f func(float64) float64, times []float64, step float64) (peak, at float64) {
	speeds := make([]float64, len(times))
	for i, x := range times {
		speeds[i] = math.Abs(Velocity(f, x, step))
	}
	idx := floats.MaxIdx(speeds)
	return speeds[idx], times[idx]
}

// Excursion reports how far values rise above hi and fall below lo.
// Both results are non-negative; excursions under epsilon count as zero.
// values must not be empty.
func Excursion(values []float64, lo, hi, epsilon float64) (over, under float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if d := floats.Max(values) - hi; d > epsilon {
		over = d
	}
	if d := lo - floats.Min(values); d > epsilon {
		under = d
	}
	return over, under
}

// RingingEnergy returns the spectral energy of (values - ramp) / scale at
// frequency bins firstBin and above, normalised by len(values)². It is
// zero when the curve follows the ramp exactly and grows with oscillation
// and sharp corners. A zero scale yields zero.
func RingingEnergy(values, ramp []float64, scale float64, firstBin int) float64 {
	n := len(values)
	if n == 0 || scale == 0 {
		return 0
	}

	residual := floats.SubTo(make([]float64, n), values, ramp)
	floats.Scale(1/scale, residual)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, residual)
	if firstBin >= len(coeffs) {
		return 0
	}

	power := make([]float64, 0, len(coeffs)-firstBin)
	for _, c := range coeffs[firstBin:] {
		re, im := real(c), imag(c)
		power = append(power, re*re+im*im)
	}

	return simdops.Float64Ops().Sum(power) / float64(n*n)
}
