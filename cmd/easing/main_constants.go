package main

// Default command-line flag values
const (
	defaultBegin    = 0.0      // Starting value
	defaultChange   = 1.0      // Total delta
	defaultDuration = 1.0      // Time span
	defaultCurve    = "linear" // Curve name
	defaultSamples  = 0        // 0 prints a single value at -t
)

// Demo parameters
const (
	demoSamples         = 11    // Table rows per demo curve
	demoBarWidth        = 40    // Characters for a value of begin+change
	demoChange          = 100.0 // Demo travel distance
	demoDuration        = 0.5   // Demo duration in seconds
	demoSampleTime      = 0.5   // Time sampled in the curve comparison, unit duration
	demoAnalysisSamples = 256   // Grid size for the overshoot report
)

// Output formatting
const (
	valuePrecision = 6 // Digits after the decimal point
)
