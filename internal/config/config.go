// Package config loads animation track files used by the command-line
// tools. A track file is YAML:
//
//	samples: 11
//	tracks:
//	  - name: fade
//	    curve: sine-in-out
//	    duration: 0.5
//	  - name: slide
//	    curve: back-out
//	    begin: -40
//	    change: 40
//	    samples: 21
//
// Omitted track fields take the easing defaults (begin 0, change 1,
// duration 1, curve "linear"). Omitted samples take the file-level value.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	easing "github.com/tphakala/go-easing"
)

// DefaultSamples is the file-level sample count when none is given.
const DefaultSamples = 11

const minSamples = 2

// ErrInvalidFile indicates a track file that parsed but failed validation.
var ErrInvalidFile = errors.New("invalid track file")

// File is a parsed track file.
type File struct {
	Samples int     `yaml:"samples"`
	Tracks  []Track `yaml:"tracks"`
}

// Track is one named animation track. Pointer fields are nil until
// defaults are applied, so an explicit 0 is kept.
type Track struct {
	Name     string   `yaml:"name"`
	Curve    *string  `yaml:"curve"`
	Begin    *float64 `yaml:"begin"`
	Change   *float64 `yaml:"change"`
	Duration *float64 `yaml:"duration"`
	Samples  *int     `yaml:"samples"`
}

// Load reads and parses a track file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read track file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses and validates track file contents. Defaults are applied
// to every track, so the returned pointer fields are never nil.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse track file: %w", err)
	}

	f.applyDefaults()

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Samples == 0 {
		f.Samples = DefaultSamples
	}

	def := easing.DefaultConfig()
	for i := range f.Tracks {
		tr := &f.Tracks[i]
		if tr.Curve == nil {
			tr.Curve = ptr(def.Curve)
		}
		if tr.Begin == nil {
			tr.Begin = ptr(def.Begin)
		}
		if tr.Change == nil {
			tr.Change = ptr(def.Change)
		}
		if tr.Duration == nil {
			tr.Duration = ptr(def.Duration)
		}
		if tr.Samples == nil {
			tr.Samples = ptr(f.Samples)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (f *File) validate() error {
	if len(f.Tracks) == 0 {
		return fmt.Errorf("%w: no tracks", ErrInvalidFile)
	}
	if f.Samples < minSamples {
		return fmt.Errorf("%w: samples must be at least %d, got %d", ErrInvalidFile, minSamples, f.Samples)
	}

	seen := make(map[string]bool, len(f.Tracks))
	for i := range f.Tracks {
		tr := &f.Tracks[i]
		if tr.Name == "" {
			return fmt.Errorf("%w: track %d has no name", ErrInvalidFile, i)
		}
		if seen[tr.Name] {
			return fmt.Errorf("%w: duplicate track %q", ErrInvalidFile, tr.Name)
		}
		seen[tr.Name] = true

		if *tr.Samples < minSamples {
			return fmt.Errorf("%w: track %q: samples must be at least %d, got %d",
				ErrInvalidFile, tr.Name, minSamples, *tr.Samples)
		}

		cfg := tr.Config()
		cfg.Curve = ""
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: track %q: %w", ErrInvalidFile, tr.Name, err)
		}
	}
	return nil
}

// Config returns the easing configuration of the track. Call it only on
// tracks returned by Parse or Load.
func (t *Track) Config() easing.Config {
	return easing.Config{
		Begin:    *t.Begin,
		Change:   *t.Change,
		Duration: *t.Duration,
		Curve:    *t.Curve,
	}
}

// UnknownCurves returns the names of tracks whose curve is outside the
// vocabulary. Those tracks still load and animate linearly.
func (f *File) UnknownCurves() []string {
	var names []string
	for i := range f.Tracks {
		if !easing.Known(*f.Tracks[i].Curve) {
			names = append(names, f.Tracks[i].Name)
		}
	}
	return names
}

// Easings builds one instance per track, in file order.
func (f *File) Easings() []*easing.Easing {
	out := make([]*easing.Easing, len(f.Tracks))
	for i := range f.Tracks {
		cfg := f.Tracks[i].Config()
		out[i] = easing.New(&cfg)
	}
	return out
}
