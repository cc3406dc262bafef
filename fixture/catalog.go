// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"

	"github.com/ik5/wavforge/codec"
	"github.com/ik5/wavforge/container"
	"github.com/ik5/wavforge/signal"
)

// sweepChannelOffset separates sweep channels by 50 Hz per channel index so
// multi-channel material stays tellable apart after decoding.
const sweepChannelOffset = 50.0

// Fixture is one catalog row: everything needed to emit one well-formed
// file and its manifest entry. Format validation happens in Generate so a
// bad matrix entry fails that fixture alone, never the whole run.
type Fixture struct {
	Name      string
	Kind      codec.Kind
	BitDepth  int
	Stream    container.StreamConfig
	Generator *signal.Generator
}

// Generate composes the file bytes and the matching manifest entry.
func (f Fixture) Generate() ([]byte, Entry, error) {
	format, err := codec.NewFormat(f.Kind, f.BitDepth)
	if err != nil {
		return nil, Entry{}, err
	}

	data, err := container.Compose(f.Stream, format, f.Generator)
	if err != nil {
		return nil, Entry{}, err
	}

	entry := Entry{
		Channels:          f.Stream.Channels,
		SampleRate:        f.Stream.SampleRate,
		BitsPerSample:     f.BitDepth,
		FormatTag:         int(f.Kind.FormatTag()),
		SamplesPerChannel: f.Generator.Frames(),
	}
	return data, entry, nil
}

type matrixEntry struct {
	kind     codec.Kind
	bitDepth int
	channels int
	endian   container.Endianness
}

// sineMatrix is the standard coverage matrix: every supported codec and bit
// depth, mono through 8 channels, both container endiannesses where the
// format allows them. G.711 stays little-endian; its samples are single
// bytes and a RIFX variant would only duplicate header coverage.
var sineMatrix = []matrixEntry{
	{codec.PCM, 8, 1, container.LittleEndian},
	{codec.PCM, 16, 2, container.LittleEndian},
	{codec.PCM, 24, 1, container.LittleEndian},
	{codec.PCM, 32, 2, container.LittleEndian},
	{codec.PCM, 16, 1, container.BigEndian},
	{codec.PCM, 24, 2, container.BigEndian},
	{codec.IEEEFloat, 32, 1, container.LittleEndian},
	{codec.IEEEFloat, 64, 2, container.LittleEndian},
	{codec.IEEEFloat, 32, 2, container.BigEndian},
	{codec.ALaw, 8, 1, container.LittleEndian},
	{codec.ULaw, 8, 2, container.LittleEndian},
	{codec.PCM, 24, 8, container.LittleEndian},
	{codec.IEEEFloat, 32, 8, container.LittleEndian},
}

// sweepMatrix stresses de-interleave and wide-format decode paths.
var sweepMatrix = []matrixEntry{
	{codec.PCM, 16, 2, container.LittleEndian},
	{codec.PCM, 24, 8, container.LittleEndian},
	{codec.IEEEFloat, 32, 2, container.LittleEndian},
	{codec.IEEEFloat, 32, 8, container.LittleEndian},
}

func (e matrixEntry) filename(prefix string) string {
	return fmt.Sprintf("%s_%s_%dbit_%s_%s.wav",
		prefix, e.kind, e.bitDepth, e.endian, channelString(e.channels))
}

func channelString(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	}
	return fmt.Sprintf("%dch", channels)
}

// Catalog expands cfg into the ordered list of well-formed fixtures to
// generate, with the category toggles and the name filter already applied.
func Catalog(cfg Config) []Fixture {
	frames := cfg.frames()
	var out []Fixture

	add := func(f Fixture) {
		if cfg.matches(f.Name) {
			out = append(out, f)
		}
	}

	if !cfg.SkipSine {
		for _, e := range sineMatrix {
			tone := signal.Tone{
				SampleRate: cfg.SampleRate,
				Frames:     frames,
				Channels:   e.channels,
				Amplitude:  cfg.Amplitude,
			}
			add(Fixture{
				Name:      e.filename("sine"),
				Kind:      e.kind,
				BitDepth:  e.bitDepth,
				Stream:    stream(e, cfg),
				Generator: signal.Sine(tone, cfg.Frequency),
			})
		}
	}

	if !cfg.SkipSweep {
		for _, e := range sweepMatrix {
			tone := signal.Tone{
				SampleRate: cfg.SampleRate,
				Frames:     frames,
				Channels:   e.channels,
				Amplitude:  cfg.Amplitude,
			}
			add(Fixture{
				Name:      e.filename("sweep"),
				Kind:      e.kind,
				BitDepth:  e.bitDepth,
				Stream:    stream(e, cfg),
				Generator: signal.Sweep(tone, cfg.SweepStart, cfg.SweepEnd, sweepChannelOffset),
			})
		}
	}

	if !cfg.SkipExotic {
		exotics(cfg, add)
	}

	return out
}

// exotics lists the edge-case fixtures. All are little-endian; their point
// is payload content, not header variation.
func exotics(cfg Config, add func(Fixture)) {
	frames := cfg.frames()
	le := func(channels int) container.StreamConfig {
		return container.StreamConfig{
			Channels:   channels,
			SampleRate: cfg.SampleRate,
			Endian:     container.LittleEndian,
		}
	}

	add(Fixture{
		Name: "exotic_silent_pcm16_mono.wav", Kind: codec.PCM, BitDepth: 16,
		Stream: le(1), Generator: signal.Silence(frames, 1),
	})
	add(Fixture{
		Name: "exotic_clipped_pcm16_mono.wav", Kind: codec.PCM, BitDepth: 16,
		Stream: le(1), Generator: signal.Clipped(frames, 1),
	})
	add(Fixture{
		Name: "exotic_alt_clipped_silent_stereo.wav", Kind: codec.PCM, BitDepth: 16,
		Stream: le(2), Generator: signal.AltPattern(frames),
	})
	add(Fixture{
		Name: "exotic_short_pcm16_80samples.wav", Kind: codec.PCM, BitDepth: 16,
		Stream: le(1), Generator: signal.Ramp(80),
	})
	add(Fixture{
		Name: "exotic_float32_nan_inf.wav", Kind: codec.IEEEFloat, BitDepth: 32,
		Stream: le(1), Generator: signal.NaNInf(frames, 100, 200),
	})
}

func stream(e matrixEntry, cfg Config) container.StreamConfig {
	return container.StreamConfig{
		Channels:   e.channels,
		SampleRate: cfg.SampleRate,
		Endian:     e.endian,
	}
}
