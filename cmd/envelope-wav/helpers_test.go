package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-easing/internal/testutil"
)

func testShape() envelopeShape {
	return envelopeShape{
		attackCurve:  "quad-out",
		releaseCurve: "quad-in",
		attack:       0.1,
		release:      0.2,
		length:       0.5,
	}
}

func TestEnvelope_Shape(t *testing.T) {
	gains, err := envelope(testShape(), 1000)
	require.NoError(t, err)
	require.Len(t, gains, 500)

	assert.Equal(t, 0.0, gains[0])
	assert.Equal(t, 1.0, gains[150])
	assert.Equal(t, 1.0, gains[250])
	assert.Less(t, gains[499], 0.02)
	assert.Greater(t, gains[499], 0.0)

	testutil.AssertMonotonic(t, gains[:100])
	testutil.AssertAllInRange(t, gains, 0, 1)
}

func TestEnvelope_AttackFollowsCurve(t *testing.T) {
	gains, err := envelope(testShape(), 1000)
	require.NoError(t, err)

	// quad-out at half the attack: -(0.5)(0.5-2) = 0.75
	assert.InDelta(t, 0.75, gains[50], 1e-9)
}

func TestEnvelope_UnknownCurveIsLinear(t *testing.T) {
	shape := testShape()
	shape.attackCurve = "no-such-curve"
	gains, err := envelope(shape, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, gains[50], 1e-9)
}

func TestEnvelope_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*envelopeShape)
	}{
		{"zero attack", func(s *envelopeShape) { s.attack = 0 }},
		{"negative release", func(s *envelopeShape) { s.release = -1 }},
		{"zero length", func(s *envelopeShape) { s.length = 0 }},
		{"too long", func(s *envelopeShape) { s.attack, s.release = 0.4, 0.4 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := testShape()
			tt.modify(&shape)
			_, err := envelope(shape, 1000)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errBadEnvelope))
		})
	}
}

func TestEnvelope_InvalidSampleRate(t *testing.T) {
	for _, rate := range []int{0, -48000} {
		gains, err := envelope(testShape(), rate)
		require.Error(t, err, "rate %d", rate)
		assert.True(t, errors.Is(err, errBadEnvelope))
		assert.Nil(t, gains)
	}
}

func TestCheckFrequency(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		rate      int
		wantErr   bool
	}{
		{"default tone", 440, 48000, false},
		{"zero", 0, 48000, true},
		{"negative", -440, 48000, true},
		{"nan", math.NaN(), 48000, true},
		{"infinite", math.Inf(1), 48000, true},
		{"nyquist", 24000, 48000, true},
		{"zero rate", 440, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFrequency(tt.frequency, tt.rate)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errBadEnvelope))
		})
	}
}

func TestRenderTone(t *testing.T) {
	gains := []float64{1, 1, 1, 1}
	out := renderTone(gains, 250, 1000)

	assert.InDelta(t, 0.0, out[0], 1e-12)
	assert.InDelta(t, toneAmplitude, out[1], 1e-12)
	assert.InDelta(t, 0.0, out[2], 1e-12)
	assert.InDelta(t, -toneAmplitude, out[3], 1e-12)
}

func TestToPCM(t *testing.T) {
	assert.Equal(t, []int{32767, -32767, 16384, 0}, toPCM([]float64{2, -2, 0.5, 0}, 16))
	assert.Equal(t, []int{8388607, -8388607}, toPCM([]float64{1, -1}, 24))
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	gains, err := envelope(testShape(), 8000)
	require.NoError(t, err)
	samples := toPCM(renderTone(gains, 440, 8000), 16)

	path := filepath.Join(t.TempDir(), "env.wav")
	require.NoError(t, writeWAV(path, samples, 8000, 16))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, uint32(8000), dec.SampleRate)
	assert.Equal(t, uint16(16), dec.BitDepth)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, samples, buf.Data)
}

func TestWriteWAV_Errors(t *testing.T) {
	err := writeWAV(filepath.Join(t.TempDir(), "x.wav"), []int{0}, 8000, 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bit depth")

	err = writeWAV("/nonexistent/dir/out.wav", []int{0}, 8000, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
