// Package testutil provides reusable test helper functions for easing tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	EndpointTolerance = 1e-3
	SeamTolerance     = 1e-6
	SeamStep          = 1e-9
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that actual is within tolerance of expected,
// relative to |expected|. A zero expected value falls back to an absolute check.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that value is within [minVal, maxVal].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal || math.IsNaN(value) {
		return assert.Fail(t, fmt.Sprintf("value %g is outside range [%g, %g]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}

// AssertContinuousAt verifies that f has no jump at x: the values just
// left and right of x differ by at most tolerance.
func AssertContinuousAt(t *testing.T, f func(float64) float64, x, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	left := f(x - SeamStep)
	right := f(x + SeamStep)
	return assert.InDelta(t, left, right, tolerance,
		"jump at x=%v: f(x-)=%v f(x+)=%v", x, left, right)
}

// AssertBitIdentical verifies that two slices hold exactly the same bits.
func AssertBitIdentical(t *testing.T, expected, actual []float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Float64bits(expected[i]) != math.Float64bits(actual[i]) {
			return assert.Fail(t, "values differ",
				"index %d: expected %v (%#x), got %v (%#x)", i,
				expected[i], math.Float64bits(expected[i]),
				actual[i], math.Float64bits(actual[i]))
		}
	}
	return true
}
