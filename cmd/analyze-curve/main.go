// Command analyze-curve prints the shape profile of easing curves:
// value range, overshoot, peak velocity and ringing energy.
//
// Usage:
//
//	analyze-curve                    # Every curve
//	analyze-curve -curve elastic-out
//	analyze-curve -samples 4096
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	easing "github.com/tphakala/go-easing"
)

const (
	defaultSamples = 1024 // Analysis grid size
	columnWidth    = 10   // Width of numeric columns
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	curveName := flag.String("curve", "", "Analyze a single curve (default: all)")
	samples := flag.Int("samples", defaultSamples, "Number of samples over the unit interval")
	flag.Parse()

	curves := easing.Curves()
	if *curveName != "" {
		c, err := easing.ParseCurve(*curveName)
		if err != nil {
			return err
		}
		curves = []easing.Curve{c}
	}

	fmt.Println("=== Easing Curve Profiles ===")
	fmt.Printf("Unit curves (begin 0, change 1, duration 1), %d samples\n\n", *samples)
	return writeProfiles(os.Stdout, curves, *samples)
}

func writeProfiles(w io.Writer, curves []easing.Curve, samples int) error {
	fmt.Fprintf(w, "%-16s %*s %*s %*s %*s %*s %*s\n", "curve",
		columnWidth, "min", columnWidth, "max",
		columnWidth, "over", columnWidth, "under",
		columnWidth, "peak-vel", columnWidth, "ringing")

	for _, c := range curves {
		p, err := easing.Analyze(easing.NewCurve(c, 0, 1, 1), samples)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		fmt.Fprintf(w, "%-16s %*.4f %*.4f %*.4f %*.4f %*.4f %*.2e\n", p.Curve,
			columnWidth, p.Min, columnWidth, p.Max,
			columnWidth, p.Overshoot, columnWidth, p.Undershoot,
			columnWidth, p.PeakVelocity, columnWidth, p.RingingEnergy)
	}
	return nil
}
