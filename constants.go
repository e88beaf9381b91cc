package easing

// Construction defaults
const (
	DefaultBegin    = 0.0      // Starting value
	DefaultChange   = 1.0      // Total delta, ending value = begin + change
	DefaultDuration = 1.0      // Time span in caller units
	DefaultCurve    = "linear" // Curve name used when none is given
)

// Curve table layout
const (
	variantsPerFamily = 3 // In, Out, InOut
)

// Sampling limits
const (
	minSamples         = 2       // A grid needs both endpoints
	maxSamples         = 1 << 24 // Upper bound on grid size
	minAnalysisSamples = 4       // Smallest grid the analysis accepts
)

// Analysis constants
const (
	derivativeStep   = 1e-6  // Central difference step, relative to duration
	ringingFirstBin  = 3     // First spectral bin counted as ringing
	overshootEpsilon = 1e-12 // Excursions below this are rounding noise
)
