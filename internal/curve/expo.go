package curve

import "math"

// ExpoIn accelerates exponentially. It returns b exactly at t == 0 and is
// shifted down by a thousandth of c elsewhere so the formula meets that
// branch without a visible step.
func ExpoIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(expoBase, expoExponent*(t/d-1)) + b - c*expoInCorrection
}

// ExpoOut decelerates exponentially. It returns b+c exactly at t == d.
func ExpoOut(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*expoOutMultiplier*(-math.Pow(expoBase, -expoExponent*t/d)+1) + b
}

// ExpoInOut joins ExpoIn and ExpoOut with exact endpoints.
func ExpoInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	t = t / d * inOutScale
	if t < inOutHalf {
		return c/halfChange*math.Pow(expoBase, expoExponent*(t-1)) + b - c*expoInOutCorrection
	}
	t--
	return c/halfChange*expoInOutMultiplier*(-math.Pow(expoBase, -expoExponent*t)+2) + b
}
