package curve

// Sine family
const (
	quarterTurn = 2.0 // divisor of π for the quarter period used by sine-in/out
)

// In-out split: time is renormalized to [0, 2] and the halves are
// recentered by subtracting these offsets.
const (
	inOutScale      = 2.0
	inOutHalf       = 1.0 // split point of the renormalized time
	inOutQuadOffset = 1.0 // quad recenters by one
	inOutOffset     = 2.0 // cubic, quart, quint, circ, back recenter by two
	halfChange      = 2.0 // each half covers change/2
)

// Exponential family. The corrective terms keep expo-in and expo-in-out
// continuous with their exact t==0 branch; expo-out and the second half of
// expo-in-out scale by the matching multiplier instead.
const (
	expoBase            = 2.0
	expoExponent        = 10.0
	expoInCorrection    = 0.001
	expoOutMultiplier   = 1.001
	expoInOutCorrection = 0.0005
	expoInOutMultiplier = 1.0005
)

// Back family
const (
	backOvershoot      = 1.70158 // about 10% overshoot
	backInOutOvershoot = 1.525   // multiplier applied to the overshoot for in-out
)

// Elastic family
const (
	elasticPeriod       = 0.3 // period as a fraction of duration
	elasticInOutStretch = 1.5 // in-out period is 1.5x the one-sided period
	elasticPhaseDiv     = 4.0 // phase shift s = p / 4
	elasticHalf         = 0.5
)

// elasticInOutPeriod is rounded as a float64 product (0x3fdccccccccccccc),
// one ulp below the literal 0.45. Constant arithmetic would be exact.
var (
	elasticBasePeriod  float64 = elasticPeriod
	elasticInOutPeriod         = elasticBasePeriod * elasticInOutStretch
)

// Bounce family. Segment thresholds are in normalized time.
const (
	bounceScale = 7.5625
	bounceDiv   = 2.75

	bounceEdge1 = 1.0 / bounceDiv
	bounceEdge2 = 2.0 / bounceDiv
	bounceEdge3 = 2.5 / bounceDiv

	bounceShift2 = 1.5 / bounceDiv
	bounceShift3 = 2.25 / bounceDiv
	bounceShift4 = 2.625 / bounceDiv

	bounceLift2 = 0.75
	bounceLift3 = 0.9375
	bounceLift4 = 0.984375

	bounceHalf = 0.5
)
