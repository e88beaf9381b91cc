package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	easing "github.com/tphakala/go-easing"
)

// envelopeShape describes an attack/sustain/release amplitude envelope.
type envelopeShape struct {
	attackCurve  string
	releaseCurve string
	attack       float64 // seconds
	release      float64 // seconds
	length       float64 // seconds, including attack and release
}

var errBadEnvelope = errors.New("invalid envelope")

func (s envelopeShape) validate() error {
	if s.attack <= 0 || s.release <= 0 || s.length <= 0 {
		return fmt.Errorf("%w: attack, release and length must be positive", errBadEnvelope)
	}
	if s.attack+s.release > s.length {
		return fmt.Errorf("%w: attack %.3fs + release %.3fs exceed length %.3fs",
			errBadEnvelope, s.attack, s.release, s.length)
	}
	return nil
}

// envelope returns one gain value per sample. The attack rises from 0 to 1,
// the sustain holds 1 and the release falls back to 0.
func envelope(s envelopeShape, sampleRate int) ([]float64, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", errBadEnvelope, sampleRate)
	}

	attack := easing.NewFadeIn(s.attack, s.attackCurve)
	release := easing.NewFadeOut(s.release, s.releaseCurve)
	releaseStart := s.length - s.release

	n := int(math.Round(s.length * float64(sampleRate)))
	gains := make([]float64, n)
	for i := range gains {
		t := float64(i) / float64(sampleRate)
		switch {
		case t < s.attack:
			gains[i] = attack.Evaluate(t)
		case t < releaseStart:
			gains[i] = 1
		default:
			gains[i] = release.Evaluate(t - releaseStart)
		}
	}
	return gains, nil
}

// checkFrequency rejects tone frequencies that cannot be rendered at sampleRate.
func checkFrequency(frequency float64, sampleRate int) error {
	if !(frequency > 0) || math.IsInf(frequency, 0) {
		return fmt.Errorf("%w: frequency %g must be positive", errBadEnvelope, frequency)
	}
	if frequency >= float64(sampleRate)/2 {
		return fmt.Errorf("%w: frequency %g Hz at or above Nyquist for %d Hz",
			errBadEnvelope, frequency, sampleRate)
	}
	return nil
}

// renderTone multiplies a sine tone by the envelope gains in place.
func renderTone(gains []float64, frequency float64, sampleRate int) []float64 {
	omega := 2 * math.Pi * frequency / float64(sampleRate)
	for i := range gains {
		gains[i] *= toneAmplitude * math.Sin(omega*float64(i))
	}
	return gains
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	default:
		return maxInt16
	}
}

// toPCM converts samples in [-1, 1] to integer PCM, clipping out of range
// values. Back and elastic curves can push the gain above 1.
func toPCM(samples []float64, bitDepth int) []int {
	maxVal := getMaxValue(bitDepth)
	out := make([]int, len(samples))
	for i, s := range samples {
		s = max(-1, min(1, s))
		out[i] = int(math.Round(s * maxVal))
	}
	return out
}

// writeWAV writes mono PCM samples to path.
func writeWAV(path string, samples []int, sampleRate, bitDepth int) (err error) {
	if bitDepth != bitsPerSample16 && bitDepth != bitsPerSample24 {
		return fmt.Errorf("unsupported bit depth %d (use 16 or 24)", bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}
