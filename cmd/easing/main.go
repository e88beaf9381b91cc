// Command easing evaluates easing curves from the command line.
//
// Usage:
//
//	easing -curve quad-in -t 0.5                 # One value
//	easing -curve bounce-out -change 100 -samples 11
//	easing -config tracks.yaml                   # Every track of a file
//	easing -list                                 # Curve names
//	easing -demo
//
// Unknown curve names are logged and animate linearly. With -strict they
// are an error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	easing "github.com/tphakala/go-easing"
	"github.com/tphakala/go-easing/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		curveName  = flag.String("curve", defaultCurve, "Curve name, see -list")
		begin      = flag.Float64("begin", defaultBegin, "Starting value")
		change     = flag.Float64("change", defaultChange, "Total change, end = begin + change")
		duration   = flag.Float64("duration", defaultDuration, "Duration")
		t          = flag.Float64("t", 0, "Time at which to evaluate")
		samples    = flag.Int("samples", defaultSamples, "Print a table of N samples over [0, duration]")
		list       = flag.Bool("list", false, "List curve names and exit")
		strict     = flag.Bool("strict", false, "Treat unknown curve names as errors")
		configPath = flag.String("config", "", "Evaluate every track of a YAML track file")
		demo       = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	out := os.Stdout

	switch {
	case *list:
		listCurves(out)
		return nil
	case *demo:
		return runDemo(out)
	case *configPath != "":
		return runConfig(out, *configPath, *strict)
	}

	cfg := easing.Config{
		Begin:    *begin,
		Change:   *change,
		Duration: *duration,
		Curve:    *curveName,
	}
	if err := checkCurve(cfg.Curve, *strict); err != nil {
		return err
	}

	e := easing.New(&cfg)
	if *samples == 0 {
		fmt.Fprintln(out, formatValue(e.Evaluate(*t)))
		return nil
	}
	return printTable(out, e, *samples)
}

// checkCurve reports an unknown curve name: as an error in strict mode,
// otherwise as a warning.
func checkCurve(name string, strict bool) error {
	if easing.Known(name) {
		return nil
	}
	if strict {
		_, err := easing.ParseCurve(name)
		return err
	}
	log.Printf("warning: unknown curve %q, using linear", name)
	return nil
}

func listCurves(w io.Writer) {
	for _, c := range easing.Curves() {
		fmt.Fprintf(w, "%-16s %-8s %s\n", c, c.Family(), c.Mode())
	}
}

func printTable(w io.Writer, e *easing.Easing, n int) error {
	times, err := e.SampleTimes(n)
	if err != nil {
		return err
	}
	values := e.SampleAt(nil, times)
	for i, v := range values {
		fmt.Fprintf(w, "%s\t%s\n", formatValue(times[i]), formatValue(v))
	}
	return nil
}

func runConfig(w io.Writer, path string, strict bool) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	if unknown := f.UnknownCurves(); len(unknown) > 0 {
		if strict {
			return fmt.Errorf("%w in tracks: %s", easing.ErrUnknownCurve, strings.Join(unknown, ", "))
		}
		for _, name := range unknown {
			log.Printf("warning: track %q has an unknown curve, using linear", name)
		}
	}

	for i, e := range f.Easings() {
		tr := f.Tracks[i]
		fmt.Fprintf(w, "# %s (%s)\n", tr.Name, e.Curve())
		if err := printTable(w, e, *tr.Samples); err != nil {
			return fmt.Errorf("track %q: %w", tr.Name, err)
		}
	}
	return nil
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.*f", valuePrecision, v)
}

func runDemo(w io.Writer) error {
	fmt.Fprintln(w, "=== Go Easing Library Demo ===")

	// Demo 1: A few curves side by side
	fmt.Fprintln(w, "\n1. Curve Shapes")
	fmt.Fprintln(w, "---------------")

	for _, name := range []string{"linear", "quad-out", "back-out", "elastic-out", "bounce-out"} {
		e := easing.NewTween(0, demoChange, demoDuration, name)
		values, err := e.Sample(demoSamples)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "\n%s:\n", name)
		for _, v := range values {
			fmt.Fprintf(w, "  %7.2f |%s\n", v, bar(v/demoChange))
		}
	}

	// Demo 2: All curves at one point in time
	fmt.Fprintln(w, "\n2. Progress at t = duration/2")
	fmt.Fprintln(w, "-----------------------------")

	for _, c := range easing.Curves() {
		e := easing.NewCurve(c, 0, 1, 1)
		fmt.Fprintf(w, "  %-16s %8.4f\n", c, e.Evaluate(demoSampleTime))
	}

	// Demo 3: Overshoot report
	fmt.Fprintln(w, "\n3. Overshoot")
	fmt.Fprintln(w, "------------")

	for _, c := range easing.Curves() {
		p, err := easing.Analyze(easing.NewCurve(c, 0, 1, 1), demoAnalysisSamples)
		if err != nil {
			return err
		}
		if p.Overshoot > 0 || p.Undershoot > 0 {
			fmt.Fprintf(w, "  %-16s +%.4f -%.4f\n", c, p.Overshoot, p.Undershoot)
		}
	}

	fmt.Fprintln(w, "\n=== Demo Complete ===")
	return nil
}

// bar draws a horizontal bar for a progress value, clamped to the width.
func bar(progress float64) string {
	n := int(progress * demoBarWidth)
	n = max(0, min(n, demoBarWidth+demoBarWidth/4))
	return strings.Repeat("#", n)
}
