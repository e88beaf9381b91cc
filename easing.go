package easing

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/cpu"
)

// Common errors returned outside the evaluation path. Evaluation itself
// never fails.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid easing configuration")

	// ErrUnknownCurve indicates a curve name outside the vocabulary.
	ErrUnknownCurve = errors.New("unknown curve")

	// ErrInvalidSampleCount indicates a sample count the grid cannot use.
	ErrInvalidSampleCount = errors.New("invalid sample count")

	// ErrLengthMismatch indicates slices that must have equal length do not.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Config holds the parameters of an easing instance.
// Start from DefaultConfig and override the fields you need.
type Config struct {
	// Begin is the starting value of the animated quantity.
	Begin float64

	// Change is the total delta applied over the duration.
	// The ending value is Begin + Change.
	Change float64

	// Duration is the time span of the animation, in the same unit as the
	// time passed to Evaluate. It must be positive; New does not check.
	Duration float64

	// Curve names the easing curve, e.g. "quad-in-out". Empty or unknown
	// names select "linear".
	Curve string
}

// DefaultConfig returns {Begin: 0, Change: 1, Duration: 1, Curve: "linear"}.
func DefaultConfig() Config {
	return Config{
		Begin:    DefaultBegin,
		Change:   DefaultChange,
		Duration: DefaultDuration,
		Curve:    DefaultCurve,
	}
}

// Validate checks the configuration strictly. New does not call it; it is
// for callers that prefer to reject bad input over degrading silently.
func (c *Config) Validate() error {
	if !isFinite(c.Begin) || !isFinite(c.Change) || !isFinite(c.Duration) {
		return fmt.Errorf("%w: begin, change and duration must be finite", ErrInvalidConfig)
	}

	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, c.Duration)
	}

	if c.Curve != "" {
		if _, err := ParseCurve(c.Curve); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Easing is an immutable easing instance: a curve bound to begin, change
// and duration. It is safe for concurrent use.
type Easing struct {
	begin    float64
	change   float64
	duration float64
	curve    Curve
	fn       Func
}

// New creates an easing instance. A nil config means DefaultConfig.
// The curve name is resolved once, here; unknown names select Linear.
// New never fails.
func New(config *Config) *Easing {
	if config == nil {
		def := DefaultConfig()
		config = &def
	}
	return NewCurve(Resolve(config.Curve), config.Begin, config.Change, config.Duration)
}

// NewCurve creates an easing instance from a Curve value. Invalid values
// select Linear.
func NewCurve(c Curve, begin, change, duration float64) *Easing {
	if !c.Valid() {
		c = Linear
	}
	return &Easing{
		begin:    begin,
		change:   change,
		duration: duration,
		curve:    c,
		fn:       c.Func(),
	}
}

// Evaluate returns the curve value at time t. There are no bounds checks:
// t outside [0, duration] extrapolates, and a non-positive duration yields
// NaN or Inf.
func (e *Easing) Evaluate(t float64) float64 {
	return e.fn(t, e.begin, e.change, e.duration)
}

// Begin returns the starting value.
func (e *Easing) Begin() float64 { return e.begin }

// Change returns the total delta.
func (e *Easing) Change() float64 { return e.change }

// Duration returns the time span.
func (e *Easing) Duration() float64 { return e.duration }

// End returns Begin + Change.
func (e *Easing) End() float64 { return e.begin + e.change }

// Curve returns the resolved curve.
func (e *Easing) Curve() Curve { return e.curve }

// Config returns the parameters of the instance. The curve name is the
// resolved name, so an unknown name given to New comes back as "linear".
func (e *Easing) Config() Config {
	return Config{
		Begin:    e.begin,
		Change:   e.change,
		Duration: e.duration,
		Curve:    e.curve.String(),
	}
}

// Info describes an easing instance.
type Info struct {
	// Curve is the resolved curve name.
	Curve string

	// Family is the curve family, e.g. "quad".
	Family string

	// Mode is the variant within the family.
	Mode Mode

	// Begin and End are the values at t == 0 and t == duration of an
	// ideal curve. Some curves deviate slightly, see the curve docs.
	Begin float64
	End   float64

	// Duration is the time span.
	Duration float64

	// SIMDType describes the instruction set used by the batch sampling
	// helpers.
	SIMDType string
}

// Info returns information about the instance.
func (e *Easing) Info() Info {
	return Info{
		Curve:    e.curve.String(),
		Family:   e.curve.Family(),
		Mode:     e.curve.Mode(),
		Begin:    e.begin,
		End:      e.End(),
		Duration: e.duration,
		SIMDType: cpu.Info(),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
