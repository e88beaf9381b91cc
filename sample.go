package easing

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-easing/internal/simdops"
)

// Range is the begin value and change of one animated channel.
type Range struct {
	Begin  float64
	Change float64
}

// Sample evaluates the instance at n evenly spaced times covering
// [0, duration]. The first and last samples are taken at exactly 0 and
// duration. Sampling needs a finite positive duration and 2 <= n.
func (e *Easing) Sample(n int) ([]float64, error) {
	times, err := timeGrid(e.duration, n)
	if err != nil {
		return nil, err
	}
	return e.SampleAt(times, times), nil
}

// SampleTimes returns the n times Sample evaluates at. Pass them to
// SampleAt to pair each value with its time.
func (e *Easing) SampleTimes(n int) ([]float64, error) {
	return timeGrid(e.duration, n)
}

// SampleAt evaluates the instance at each of times and stores the results
// in dst, which is grown when too small. dst may alias times.
func (e *Easing) SampleAt(dst, times []float64) []float64 {
	if cap(dst) < len(times) {
		dst = make([]float64, len(times))
	}
	dst = dst[:len(times)]
	for i, t := range times {
		dst[i] = e.fn(t, e.begin, e.change, e.duration)
	}
	return dst
}

// SampleFloat32 is like Sample but returns float32 values.
// The curve is evaluated in float64 and converted afterwards.
func (e *Easing) SampleFloat32(n int) ([]float32, error) {
	values, err := e.Sample(n)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(values))
	for i, v := range values {
		out[i] = float32(v)
	}
	return out, nil
}

// SampleChannels samples one curve for several channels that share the
// curve and duration but differ in begin and change, e.g. the x and y of a
// moving sprite. The unit curve is evaluated once and each channel is
// derived as begin + change*unit. Every built-in curve is affine in begin
// and change, so the result equals direct evaluation up to rounding.
func SampleChannels(c Curve, duration float64, n int, ranges []Range) ([][]float64, error) {
	unit, err := NewCurve(c, 0, 1, duration).Sample(n)
	if err != nil {
		return nil, err
	}

	ops := simdops.Float64Ops()
	out := make([][]float64, len(ranges))
	for ch, r := range ranges {
		values := make([]float64, n)
		ops.Scale(values, unit, r.Change)
		floats.AddConst(r.Begin, values)
		out[ch] = values
	}
	return out, nil
}

// InterleaveXY merges two channel tables into x0, y0, x1, y1, ...
func InterleaveXY(x, y []float64) ([]float64, error) {
	return interleave(x, y)
}

// InterleaveXY32 is the float32 form of InterleaveXY.
func InterleaveXY32(x, y []float32) ([]float32, error) {
	return interleave(x, y)
}

func interleave[F simdops.Float](x, y []F) ([]F, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x has %d samples, y has %d", ErrLengthMismatch, len(x), len(y))
	}
	dst := make([]F, len(x)*2)
	simdops.For[F]().Interleave2(dst, x, y)
	return dst, nil
}

// SampleMulti samples several tracks with n samples each. When parallel is
// true every track is sampled on its own goroutine; the results are the
// same either way.
func SampleMulti(tracks []*Easing, n int, parallel bool) ([][]float64, error) {
	for i, tr := range tracks {
		if tr == nil {
			return nil, fmt.Errorf("%w: track %d is nil", ErrInvalidConfig, i)
		}
	}

	output := make([][]float64, len(tracks))

	if !parallel || len(tracks) <= 1 {
		for i, tr := range tracks {
			values, err := tr.Sample(n)
			if err != nil {
				return nil, fmt.Errorf("track %d: %w", i, err)
			}
			output[i] = values
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(tracks))

	for i := range tracks {
		wg.Add(1)
		go func(track int) {
			defer wg.Done()

			values, err := tracks[track].Sample(n)
			if err != nil {
				errChan <- fmt.Errorf("track %d: %w", track, err)
				return
			}
			output[track] = values
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// timeGrid returns n evenly spaced times over [0, duration] with exact
// endpoints.
func timeGrid(duration float64, n int) ([]float64, error) {
	if n < minSamples || n > maxSamples {
		return nil, fmt.Errorf("%w: need %d to %d samples, got %d",
			ErrInvalidSampleCount, minSamples, maxSamples, n)
	}
	if !isFinite(duration) || duration <= 0 {
		return nil, fmt.Errorf("%w: sampling needs a positive duration, got %v",
			ErrInvalidConfig, duration)
	}

	times := floats.Span(make([]float64, n), 0, duration)
	times[0] = 0
	times[n-1] = duration
	return times, nil
}
