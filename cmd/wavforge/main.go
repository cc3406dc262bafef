package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ik5/wavforge/fixture"
)

const VERSION = "1.0.0"

var (
	outputDir  string
	duration   float64
	sampleRate int
	amplitude  float64
	frequency  float64
	sweepStart float64
	sweepEnd   float64
	only       string
	noSine     bool
	noSweep    bool
	noExotic   bool
	noEvil     bool
	verify     bool
	version    bool
)

func init() {
	defaults := fixture.DefaultConfig()

	flag.StringVar(&outputDir, "out", defaults.OutputDir, "Output directory for fixtures and manifest.json")
	flag.Float64Var(&duration, "duration", defaults.Duration, "Duration of standard fixtures in seconds")
	flag.IntVar(&sampleRate, "rate", defaults.SampleRate, "Sample rate in Hz")
	flag.Float64Var(&amplitude, "amp", defaults.Amplitude, "Tone amplitude (normalized, 0..1)")
	flag.Float64Var(&frequency, "freq", defaults.Frequency, "Sine frequency in Hz")
	flag.Float64Var(&sweepStart, "sweep-start", defaults.SweepStart, "Sweep start frequency in Hz")
	flag.Float64Var(&sweepEnd, "sweep-end", defaults.SweepEnd, "Sweep end frequency in Hz")
	flag.StringVar(&only, "only", "", "Generate only fixtures whose name contains this substring")
	flag.BoolVar(&noSine, "no-sine", false, "Skip the sine fixture matrix")
	flag.BoolVar(&noSweep, "no-sweep", false, "Skip the sweep fixtures")
	flag.BoolVar(&noExotic, "no-exotic", false, "Skip the exotic edge-case fixtures")
	flag.BoolVar(&noEvil, "no-evil", false, "Skip the malformed fixtures")
	flag.BoolVar(&verify, "verify", false, "Re-read written fixtures and cross-check the manifest")
	flag.BoolVar(&version, "version", false, "Display version information")
}

func main() {
	flag.Parse()

	if version {
		fmt.Printf("wavforge version %s\n", VERSION)
		os.Exit(0)
	}

	cfg := fixture.Config{
		OutputDir:  outputDir,
		Duration:   duration,
		SampleRate: sampleRate,
		Amplitude:  amplitude,
		Frequency:  frequency,
		SweepStart: sweepStart,
		SweepEnd:   sweepEnd,
		Only:       only,
		SkipSine:   noSine,
		SkipSweep:  noSweep,
		SkipExotic: noExotic,
		SkipEvil:   noEvil,
		Verify:     verify,
	}

	res, err := fixture.Run(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, name := range res.Written {
		fmt.Printf("Generated: %s\n", name)
	}
	for name, ferr := range res.Failed {
		fmt.Printf("Skipped %s: %v\n", name, ferr)
	}

	if len(res.Written) == 0 {
		fmt.Println("No fixtures matched the current filter.")
		os.Exit(1)
	}

	fmt.Printf("Wrote %d files and %s to %s\n",
		len(res.Written), fixture.ManifestName, outputDir)
}
