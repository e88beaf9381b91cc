package curve

import "math"

// The elastic curves use amplitude a = c, period p = d*0.3 (d*0.45 for
// in-out) and phase shift s = p/4. The endpoints are returned exactly
// instead of through the oscillating formula.

// ElasticIn winds up with growing oscillation before snapping to the target.
func ElasticIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * elasticPeriod
	a := c
	s := p / elasticPhaseDiv
	t--
	return -(a * math.Pow(expoBase, expoExponent*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

// ElasticOut overshoots and oscillates with decaying amplitude.
func ElasticOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * elasticPeriod
	a := c
	s := p / elasticPhaseDiv
	return a*math.Pow(expoBase, -expoExponent*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// ElasticInOut oscillates into the midpoint and out of it.
func ElasticInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	t = t / d * inOutScale
	if t == inOutScale {
		return b + c
	}
	p := d * elasticInOutPeriod
	a := c
	s := p / elasticPhaseDiv
	if t < inOutHalf {
		t--
		return -elasticHalf*(a*math.Pow(expoBase, expoExponent*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	t--
	return a*math.Pow(expoBase, -expoExponent*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*elasticHalf + c + b
}
