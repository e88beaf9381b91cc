// Package binding exposes easing instances to dynamically typed hosts such
// as script interpreters. Arguments arrive as untyped values and are
// checked here, so a host only forwards what the script passed.
//
// A script that wrote
//
//	local e = Easing.new(0, 100, 2, "bounce-out")
//	local v = e(0.5)
//
// maps to
//
//	h, err := binding.Create(0, 100, 2, "bounce-out")
//	v, err := h.Call(0.5)
package binding

import (
	"errors"
	"fmt"

	easing "github.com/tphakala/go-easing"
)

// ErrBadArgument indicates an argument of the wrong type or an argument
// count the call does not accept. Unknown curve names are not an error.
var ErrBadArgument = errors.New("bad argument")

// Positions of the optional Create arguments.
const (
	argBegin = iota
	argChange
	argDuration
	argCurve
	maxCreateArgs
)

var createArgNames = [maxCreateArgs]string{"begin", "change", "duration", "curve"}

// Handle is a host-owned easing instance. It holds no reference back to
// the host and may be shared between host threads.
type Handle struct {
	e *easing.Easing
}

// Create builds a handle from up to four positional arguments: begin,
// change, duration and curve name. Missing or nil arguments take the
// defaults 0, 1, 1 and "linear". Numeric arguments accept any Go integer
// or float type. An unknown curve name selects "linear".
func Create(args ...any) (*Handle, error) {
	if len(args) > maxCreateArgs {
		return nil, fmt.Errorf("%w: create takes at most %d arguments, got %d",
			ErrBadArgument, maxCreateArgs, len(args))
	}

	cfg := easing.DefaultConfig()
	numeric := [argCurve]*float64{&cfg.Begin, &cfg.Change, &cfg.Duration}

	for i, arg := range args {
		if arg == nil {
			continue
		}

		if i == argCurve {
			name, ok := arg.(string)
			if !ok {
				return nil, argError(i, "string", arg)
			}
			cfg.Curve = name
			continue
		}

		v, ok := toFloat(arg)
		if !ok {
			return nil, argError(i, "number", arg)
		}
		*numeric[i] = v
	}

	return &Handle{e: easing.New(&cfg)}, nil
}

// Wrap returns a handle for an existing instance.
func Wrap(e *easing.Easing) *Handle {
	return &Handle{e: e}
}

// Invoke evaluates the instance at time t.
func (h *Handle) Invoke(t float64) float64 {
	return h.e.Evaluate(t)
}

// Call is the dynamic form of Invoke. It takes exactly one numeric
// argument.
func (h *Handle) Call(args ...any) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: call takes 1 argument, got %d", ErrBadArgument, len(args))
	}
	t, ok := toFloat(args[0])
	if !ok {
		return 0, fmt.Errorf("%w: argument 1 (t): expected number, got %T", ErrBadArgument, args[0])
	}
	return h.e.Evaluate(t), nil
}

// Easing returns the underlying instance.
func (h *Handle) Easing() *easing.Easing {
	return h.e
}

// String describes the handle for host-side printing.
func (h *Handle) String() string {
	cfg := h.e.Config()
	return fmt.Sprintf("easing(%s, begin=%g, change=%g, duration=%g)",
		cfg.Curve, cfg.Begin, cfg.Change, cfg.Duration)
}

func argError(pos int, want string, got any) error {
	return fmt.Errorf("%w: argument %d (%s): expected %s, got %T",
		ErrBadArgument, pos+1, createArgNames[pos], want, got)
}

// toFloat converts the numeric kinds a host may pass.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
