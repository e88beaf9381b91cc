package easing

import (
	"fmt"

	"github.com/tphakala/go-easing/internal/curve"
)

// byName maps every curve name to its Curve. It is filled once at package
// initialisation and only read afterwards. Map lookup compares the full
// key after hashing, so two different names can never select the same
// entry by accident.
var byName = func() map[string]Curve {
	m := make(map[string]Curve, numCurves)
	for i, name := range curve.Names {
		m[name] = Curve(i)
	}
	return m
}()

// Resolve returns the curve with the given name. Unknown names resolve to
// Linear: a misspelt name degrades the motion instead of failing the
// animation. Names are case sensitive.
func Resolve(name string) Curve {
	if c, ok := byName[name]; ok {
		return c
	}
	return Linear
}

// ParseCurve is the strict form of Resolve. It returns ErrUnknownCurve
// for names outside the vocabulary.
func ParseCurve(name string) (Curve, error) {
	if c, ok := byName[name]; ok {
		return c, nil
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Known reports whether name is part of the curve vocabulary.
func Known(name string) bool {
	_, ok := byName[name]
	return ok
}

// Names returns the curve names in vocabulary order.
func Names() []string {
	out := make([]string, len(curve.Names))
	copy(out, curve.Names[:])
	return out
}
