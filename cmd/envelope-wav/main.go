// Command envelope-wav renders a sine tone shaped by an easing envelope to
// a WAV file, to hear what a curve sounds like as a fade.
//
// Usage:
//
//	envelope-wav out.wav
//	envelope-wav -attack-curve expo-out -release-curve sine-in out.wav
//	envelope-wav -attack 0.05 -release 1.5 -length 2 -freq 220 out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	// CLI defaults
	defaultAttackCurve  = "quad-out"
	defaultReleaseCurve = "quad-in"
	defaultAttack       = 0.2   // seconds
	defaultRelease      = 0.5   // seconds
	defaultLength       = 1.5   // seconds
	defaultFrequency    = 440.0 // Hz
	defaultSampleRate   = 48000 // Hz
	defaultBitDepth     = 16    // bits
	minRequiredArgs     = 1

	// Signal
	toneAmplitude = 0.8 // Headroom for overshooting curves

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	maxInt16        = 32767.0
	maxInt24        = 8388607.0
	monoChannels    = 1
	wavFormatPCM    = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	attackCurve := flag.String("attack-curve", defaultAttackCurve, "Curve of the fade in")
	releaseCurve := flag.String("release-curve", defaultReleaseCurve, "Curve of the fade out")
	attack := flag.Float64("attack", defaultAttack, "Attack time in seconds")
	release := flag.Float64("release", defaultRelease, "Release time in seconds")
	length := flag.Float64("length", defaultLength, "Total length in seconds")
	freq := flag.Float64("freq", defaultFrequency, "Tone frequency in Hz")
	rate := flag.Int("rate", defaultSampleRate, "Sample rate in Hz")
	bits := flag.Int("bits", defaultBitDepth, "Bit depth: 16 or 24")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	outputPath := args[0]

	shape := envelopeShape{
		attackCurve:  *attackCurve,
		releaseCurve: *releaseCurve,
		attack:       *attack,
		release:      *release,
		length:       *length,
	}

	if *verbose {
		log.Printf("Output: %s", outputPath)
		log.Printf("Attack: %.3fs %s", shape.attack, shape.attackCurve)
		log.Printf("Release: %.3fs %s", shape.release, shape.releaseCurve)
		log.Printf("Tone: %.1f Hz, %d Hz, %d-bit", *freq, *rate, *bits)
	}

	if err := checkFrequency(*freq, *rate); err != nil {
		return err
	}
	gains, err := envelope(shape, *rate)
	if err != nil {
		return err
	}
	samples := toPCM(renderTone(gains, *freq, *rate), *bits)

	if err := writeWAV(outputPath, samples, *rate, *bits); err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %d samples, %.2fs\n", filepath.Base(outputPath), len(samples), shape.length)
	return nil
}
