// SPDX-License-Identifier: EPL-2.0

package fixture

import "strings"

// Config is the full configuration surface of a generation run. The zero
// value is not meaningful; start from DefaultConfig.
type Config struct {
	// OutputDir receives every generated file plus manifest.json.
	OutputDir string

	// Duration of the standard fixtures in seconds.
	Duration float64
	// SampleRate in Hz.
	SampleRate int
	// Amplitude of the generated tones, normalized.
	Amplitude float64
	// Frequency of the sine fixtures in Hz.
	Frequency float64
	// SweepStart and SweepEnd bound the logarithmic sweep in Hz.
	SweepStart float64
	SweepEnd   float64

	// Only, when non-empty, keeps only fixtures whose filename contains it
	// (case-insensitive).
	Only string

	// Category toggles.
	SkipSine   bool
	SkipSweep  bool
	SkipExotic bool
	SkipEvil   bool

	// Verify re-reads each little-endian well-formed fixture after writing
	// and cross-checks it against its manifest entry.
	Verify bool
}

// DefaultConfig returns the documented defaults: one second of audio at
// 44100 Hz, amplitude 0.8, a 440 Hz tone and a 100–1000 Hz sweep, written
// to ./fixtures.
func DefaultConfig() Config {
	return Config{
		OutputDir:  "fixtures",
		Duration:   1.0,
		SampleRate: 44100,
		Amplitude:  0.8,
		Frequency:  440.0,
		SweepStart: 100.0,
		SweepEnd:   1000.0,
	}
}

// frames returns the frame count of the standard fixtures.
func (c Config) frames() int {
	return int(float64(c.SampleRate) * c.Duration)
}

func (c Config) matches(filename string) bool {
	if c.Only == "" {
		return true
	}
	return strings.Contains(strings.ToLower(filename), strings.ToLower(c.Only))
}
