package curve

// QuadIn accelerates with t².
func QuadIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// QuadOut decelerates with t².
func QuadOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// QuadInOut accelerates for the first half and decelerates for the second.
func QuadInOut(t, b, c, d float64) float64 {
	t = t / d * inOutScale
	if t < inOutHalf {
		return c/halfChange*t*t + b
	}
	t -= inOutQuadOffset
	return -c/halfChange*(t*(t-2)-1) + b
}

// CubicIn accelerates with t³.
func CubicIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

// CubicOut decelerates with t³.
func CubicOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

// CubicInOut is the cubic S-curve.
func CubicInOut(t, b, c, d float64) float64 {
	t = t / d * inOutScale
	if t < inOutHalf {
		return c/halfChange*t*t*t + b
	}
	t -= inOutOffset
	return c/halfChange*(t*t*t+2) + b
}

// QuartIn accelerates with t⁴.
func QuartIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

// QuartOut decelerates with t⁴.
func QuartOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

// QuartInOut is the quartic S-curve.
func QuartInOut(t, b, c, d float64) float64 {
	t = t / d * inOutScale
	if t < inOutHalf {
		return c/halfChange*t*t*t*t + b
	}
	t -= inOutOffset
	return -c/halfChange*(t*t*t*t-2) + b
}

// QuintIn accelerates with t⁵.
func QuintIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

// QuintOut decelerates with t⁵.
func QuintOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

// QuintInOut is the quintic S-curve.
func QuintInOut(t, b, c, d float64) float64 {
	t = t / d * inOutScale
	if t < inOutHalf {
		return c/halfChange*t*t*t*t*t + b
	}
	t -= inOutOffset
	return c/halfChange*(t*t*t*t*t+2) + b
}
