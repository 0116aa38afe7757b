// Package config holds the command-line settings of milkyway.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// Config holds every tunable of a run.
type Config struct {
	FPS        int
	Capacity   int
	Seed       uint64
	LogFile    string
	Visualizer string
	SampleRate int
	Points     int
	Import     string
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		FPS:        60,
		Capacity:   100000,
		Visualizer: "braille",
		SampleRate: 44100,
		Points:     2048,
	}
}

// MaxPoints bounds -points; the transform is quadratic in the sample count.
const MaxPoints = 8192

// ErrHelp is returned when -h or -help was requested.
var ErrHelp = flag.ErrHelp

// Parse reads flags from args (without the program name). Usage and parse
// errors are written to out.
func Parse(args []string, out io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("milkyway", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: milkyway [flags] [stereo audio file to import]\n\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "maximum stroke samples and trail points")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "seed for colors and random arms (0 picks one from the clock)")
	fs.StringVar(&cfg.LogFile, "log", "", "write a debug log to this file")
	fs.StringVar(&cfg.Visualizer, "viz", cfg.Visualizer, "initial renderer: braille or glyph")
	fs.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "audio sample rate for export and the oscilloscope")
	fs.IntVar(&cfg.Points, "points", cfg.Points, "maximum samples kept from an imported audio file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected at most one file to import, got %d", fs.NArg())
	}
	cfg.Import = fs.Arg(0)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be between 1 and 240, got %d", c.FPS))
	}
	if c.Capacity < 1 {
		errs = append(errs, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	}
	if c.Points < 1 || c.Points > MaxPoints {
		errs = append(errs, fmt.Errorf("points must be between 1 and %d, got %d", MaxPoints, c.Points))
	} else if c.Capacity >= 1 && c.Points > c.Capacity {
		errs = append(errs, fmt.Errorf("points (%d) must not exceed capacity (%d)", c.Points, c.Capacity))
	}
	if c.SampleRate < 8000 {
		errs = append(errs, fmt.Errorf("rate must be at least 8000, got %d", c.SampleRate))
	}
	return errors.Join(errs...)
}
