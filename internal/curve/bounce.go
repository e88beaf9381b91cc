package curve

// BounceOut falls onto the target and bounces with decreasing height over
// four parabolic segments.
func BounceOut(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < bounceEdge1:
		return c*(bounceScale*t*t) + b
	case t < bounceEdge2:
		t -= bounceShift2
		return c*(bounceScale*t*t+bounceLift2) + b
	case t < bounceEdge3:
		t -= bounceShift3
		return c*(bounceScale*t*t+bounceLift3) + b
	default:
		t -= bounceShift4
		return c*(bounceScale*t*t+bounceLift4) + b
	}
}

// BounceIn is BounceOut reversed in time.
func BounceIn(t, b, c, d float64) float64 {
	return c - BounceOut(d-t, 0, c, d) + b
}

// BounceInOut runs a half-height BounceIn over the first half of the
// duration and a half-height BounceOut over the second.
func BounceInOut(t, b, c, d float64) float64 {
	if t < d/halfChange {
		return BounceIn(t*inOutScale, 0, c, d)*bounceHalf + b
	}
	return BounceOut(t*inOutScale-d, 0, c, d)*bounceHalf + c*bounceHalf + b
}
