package easing

// Ease is a convenience function for one-shot evaluation. It resolves the
// curve name and evaluates it at t without keeping an instance around.
// Prefer New when evaluating the same curve repeatedly.
func Ease(name string, t, begin, change, duration float64) float64 {
	return Resolve(name).Func()(t, begin, change, duration)
}

// Progress maps a normalized time x in [0, 1] to eased progress, the value
// of the named curve with begin 0, change 1 and duration 1. Combine it
// with your own interpolation when the animated value is not a float64.
func Progress(name string, x float64) float64 {
	return Resolve(name).Func()(x, 0, 1, 1)
}

// NewTween creates an instance that moves from one value to another.
// It is New with change = to - from.
func NewTween(from, to, duration float64, name string) *Easing {
	return New(&Config{
		Begin:    from,
		Change:   to - from,
		Duration: duration,
		Curve:    name,
	})
}

// NewFadeIn creates an instance that rises from 0 to 1, e.g. for opacity.
func NewFadeIn(duration float64, name string) *Easing {
	return NewTween(0, 1, duration, name)
}

// NewFadeOut creates an instance that falls from 1 to 0.
func NewFadeOut(duration float64, name string) *Easing {
	return NewTween(1, 0, duration, name)
}

// DeinterleaveXY splits an x0, y0, x1, y1, ... table into its channels.
// A trailing unpaired value is dropped.
func DeinterleaveXY(interleaved []float64) (x, y []float64) {
	n := len(interleaved) / 2
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range n {
		x[i] = interleaved[2*i]
		y[i] = interleaved[2*i+1]
	}
	return x, y
}
