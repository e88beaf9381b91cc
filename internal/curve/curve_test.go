package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-easing/internal/testutil"
)

func TestTableMatchesNames(t *testing.T) {
	require.Len(t, Table, Count)
	require.Len(t, Names, Count)

	seen := make(map[string]bool, Count)
	for i, name := range Names {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
		assert.NotNil(t, Table[i], "missing function for %q", name)
	}
}

// TestEndpoints checks f(0) == begin and f(d) == begin+change for every
// curve, using the corrected endpoint where the formula defines one.
func TestEndpoints(t *testing.T) {
	const (
		begin    = 0.0
		change   = 10.0
		duration = 2.0
	)

	// expo-in is shifted down by a thousandth of change everywhere except t == 0.
	endOverride := map[string]float64{
		"expo-in": change - change*expoInCorrection,
	}

	for i, name := range Names {
		f := Table[i]
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, begin, f(0, begin, change, duration), testutil.EndpointTolerance*change,
				"%s(0)", name)

			wantEnd := begin + change
			if v, ok := endOverride[name]; ok {
				wantEnd = v
			}
			assert.InDelta(t, wantEnd, f(duration, begin, change, duration), testutil.EndpointTolerance*change,
				"%s(d)", name)
		})
	}
}

func TestExactEndpointBranches(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		t    float64
		want float64
	}{
		{"expo-in start", ExpoIn, 0, 3},
		{"expo-out end", ExpoOut, 4, 8},
		{"expo-in-out start", ExpoInOut, 0, 3},
		{"expo-in-out end", ExpoInOut, 4, 8},
		{"elastic-in start", ElasticIn, 0, 3},
		{"elastic-in end", ElasticIn, 4, 8},
		{"elastic-out start", ElasticOut, 0, 3},
		{"elastic-out end", ElasticOut, 4, 8},
		{"elastic-in-out start", ElasticInOut, 0, 3},
		{"elastic-in-out end", ElasticInOut, 4, 8},
		{"back-out end", BackOut, 4, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f(tt.t, 3, 5, 4))
		})
	}
}

func TestExpoCorrections(t *testing.T) {
	// At t == d expo-in does not hit its exact branch and keeps the correction.
	assert.InDelta(t, 0.999, ExpoIn(1, 0, 1, 1), testutil.DefaultTolerance)
	// expo-out starts exactly at begin: 1.001 * (1 - 2^0) == 0.
	assert.Equal(t, 0.0, ExpoOut(0, 0, 1, 1))
	// Just inside the ends the corrections keep the curve close to the exact branch.
	assert.InDelta(t, 0.0, ExpoIn(1e-9, 0, 1, 1), 1e-3)
	assert.InDelta(t, 1.0, ExpoOut(1-1e-9, 0, 1, 1), 1e-3)
	assert.InDelta(t, 1.0, ExpoInOut(1-1e-9, 0, 1, 1), 1e-3)
}

func TestElasticInOutPeriodRounding(t *testing.T) {
	// 0.3 * 1.5 rounded in float64, not the literal 0.45.
	assert.Equal(t, uint64(0x3fdccccccccccccc), math.Float64bits(elasticInOutPeriod))
	assert.Equal(t, uint64(0x3fdccccccccccccd), math.Float64bits(0.45))

	// The two periods differ by about 1.4e-17 here.
	assert.InDelta(t, 0.023938888847468056, ElasticInOut(0.3, 0, 1, 1), 5e-18)
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		t    float64
		want float64
	}{
		{"linear quarter", Linear, 0.25, 0.25},
		{"sine-in-out mid", SineInOut, 0.5, 0.5},
		{"sine-out mid", SineOut, 0.5, math.Sqrt2 / 2},
		{"quad-in mid", QuadIn, 0.5, 0.25},
		{"quad-out mid", QuadOut, 0.5, 0.75},
		{"quad-in-out quarter", QuadInOut, 0.25, 0.125},
		{"quad-in-out three quarters", QuadInOut, 0.75, 0.875},
		{"cubic-in mid", CubicIn, 0.5, 0.125},
		{"cubic-out mid", CubicOut, 0.5, 0.875},
		{"cubic-in-out mid", CubicInOut, 0.5, 0.5},
		{"quart-in mid", QuartIn, 0.5, 0.0625},
		{"quart-out mid", QuartOut, 0.5, 0.9375},
		{"quint-in mid", QuintIn, 0.5, 0.03125},
		{"quint-out mid", QuintOut, 0.5, 0.96875},
		{"expo-in mid", ExpoIn, 0.5, 0.03125 - 0.001},
		{"expo-out mid", ExpoOut, 0.5, 1.001 * 0.96875},
		{"circ-in mid", CircIn, 0.5, 1 - math.Sqrt(0.75)},
		{"circ-out mid", CircOut, 0.5, math.Sqrt(0.75)},
		{"back-in mid", BackIn, 0.5, 0.25 * (2.70158*0.5 - 1.70158)},
		{"elastic-in mid", ElasticIn, 0.5, -0.015625},
		{"elastic-out mid", ElasticOut, 0.5, 1.015625},
		{"elastic-in-out mid", ElasticInOut, 0.5, 0.5},
		{"bounce-out mid", BounceOut, 0.5, 0.765625},
		{"bounce-in mid", BounceIn, 0.5, 0.234375},
		{"bounce-in-out mid", BounceInOut, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.f(tt.t, 0, 1, 1), 1e-9)
		})
	}
}

func TestLinearScaled(t *testing.T) {
	assert.InDelta(t, 0.0, Linear(0, 0, 10, 1), testutil.DefaultTolerance)
	assert.InDelta(t, 5.0, Linear(0.5, 0, 10, 1), testutil.DefaultTolerance)
	assert.InDelta(t, 10.0, Linear(1, 0, 10, 1), testutil.DefaultTolerance)
}

// TestInOutMirror checks out(t) == c - in(d-t) for the families whose
// out variant is the time-reversed in variant.
func TestInOutMirror(t *testing.T) {
	pairs := []struct {
		name    string
		in, out Func
	}{
		{"sine", SineIn, SineOut},
		{"quad", QuadIn, QuadOut},
		{"cubic", CubicIn, CubicOut},
		{"quart", QuartIn, QuartOut},
		{"quint", QuintIn, QuintOut},
		{"circ", CircIn, CircOut},
		{"back", BackIn, BackOut},
		{"elastic", ElasticIn, ElasticOut},
		{"bounce", BounceIn, BounceOut},
	}

	const (
		change   = 3.0
		duration = 2.0
	)
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for x := 0.05; x < duration; x += 0.05 {
				want := change - p.in(duration-x, 0, change, duration)
				assert.InDelta(t, want, p.out(x, 0, change, duration), 1e-9, "t=%v", x)
			}
		})
	}
}

func TestBounceOutContinuity(t *testing.T) {
	f := func(x float64) float64 { return BounceOut(x, 0, 1, 1) }
	for _, edge := range []float64{bounceEdge1, bounceEdge2, bounceEdge3} {
		testutil.AssertContinuousAt(t, f, edge, testutil.SeamTolerance)
		// Every segment reaches full height at its threshold.
		assert.InDelta(t, 1.0, f(edge), 1e-12, "edge %v", edge)
	}
}

func TestInOutSeams(t *testing.T) {
	// The two halves of each in-out curve meet at the midpoint. circ-in-out
	// is left out: it is continuous there but has a vertical tangent.
	seamless := []struct {
		name string
		f    Func
	}{
		{"sine", SineInOut},
		{"quad", QuadInOut},
		{"cubic", CubicInOut},
		{"quart", QuartInOut},
		{"quint", QuintInOut},
		{"back", BackInOut},
		{"bounce", BounceInOut},
	}
	for _, s := range seamless {
		t.Run(s.name, func(t *testing.T) {
			f := func(x float64) float64 { return s.f(x, 0, 1, 1) }
			testutil.AssertContinuousAt(t, f, 0.5, testutil.SeamTolerance)
		})
	}
}

func TestMonotonicFamilies(t *testing.T) {
	monotonic := []string{
		"linear",
		"sine-in", "sine-out", "sine-in-out",
		"quad-in", "quad-out", "quad-in-out",
		"cubic-in", "cubic-out", "cubic-in-out",
		"quart-in", "quart-out", "quart-in-out",
		"quint-in", "quint-out", "quint-in-out",
		"circ-in", "circ-out", "circ-in-out",
	}
	index := make(map[string]int, Count)
	for i, n := range Names {
		index[n] = i
	}

	for _, name := range monotonic {
		t.Run(name, func(t *testing.T) {
			f := Table[index[name]]
			values := make([]float64, 0, 101)
			for i := 0; i <= 100; i++ {
				values = append(values, f(float64(i)/100, 0, 1, 1))
			}
			testutil.AssertNoNaNOrInf(t, values)
			testutil.AssertMonotonic(t, values)
			testutil.AssertAllInRange(t, values, -1e-12, 1+1e-12)
		})
	}
}

func TestOvershootFamilies(t *testing.T) {
	// back-out exceeds the target before settling, back-in dips below begin.
	assert.Greater(t, BackOut(0.7, 0, 1, 1), 1.0)
	assert.Less(t, BackIn(0.3, 0, 1, 1), 0.0)
	assert.Greater(t, ElasticOut(0.1, 0, 1, 1), 1.0)
}

func TestDeterministic(t *testing.T) {
	for i, f := range Table {
		first := f(0.37, 1.5, -2.25, 0.8)
		second := f(0.37, 1.5, -2.25, 0.8)
		assert.Equal(t, math.Float64bits(first), math.Float64bits(second), Names[i])
	}
}

func TestExtrapolation(t *testing.T) {
	assert.InDelta(t, 4.0, QuadIn(2, 0, 1, 1), testutil.DefaultTolerance)
	assert.InDelta(t, -1.0, Linear(-1, 0, 1, 1), testutil.DefaultTolerance)
	// Boundary branches only fire at the exact endpoints.
	assert.NotEqual(t, 1.0, ExpoOut(2, 0, 1, 1))
	assert.NotEqual(t, 0.0, ElasticIn(-0.1, 0, 1, 1))
}

func TestNonPositiveDuration(t *testing.T) {
	assert.True(t, math.IsNaN(Linear(0, 0, 1, 0)), "0/0 should be NaN")
	assert.True(t, math.IsInf(Linear(0.5, 0, 1, 0), 1), "x/0 should be +Inf")
	assert.True(t, math.IsNaN(QuadIn(0, 0, 1, 0)))
}

func BenchmarkCurves(b *testing.B) {
	for i, f := range Table {
		b.Run(Names[i], func(b *testing.B) {
			var sink float64
			for b.Loop() {
				sink += f(0.42, 0, 1, 1)
			}
			_ = sink
		})
	}
}
