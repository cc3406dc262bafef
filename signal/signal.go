// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"io"
	"math"
)

// Generator produces a finite sequence of normalized sample frames.
// It is pure and restartable: the waveform function depends only on
// (frame, channel), so Reset followed by re-reading reproduces the exact
// same sequence byte for byte.
type Generator struct {
	frames   int // Total frames to generate
	channels int
	read     int // Frames generated so far
	waveform func(frame, channel int) float64
}

// New creates a generator over frames x channels driven by waveform.
func New(frames, channels int, waveform func(frame, channel int) float64) *Generator {
	return &Generator{
		frames:   frames,
		channels: channels,
		waveform: waveform,
	}
}

func (g *Generator) Frames() int   { return g.frames }
func (g *Generator) Channels() int { return g.channels }

// Reset rewinds the generator so the sequence can be produced again.
func (g *Generator) Reset() { g.read = 0 }

// ReadFrames fills dst with interleaved frames and returns the number of
// frames written. When the sequence is exhausted it returns 0, io.EOF.
// len(dst) must be a multiple of Channels.
func (g *Generator) ReadFrames(dst []float64) (int, error) {
	if g.read >= g.frames {
		return 0, io.EOF
	}

	want := len(dst) / g.channels
	if left := g.frames - g.read; want > left {
		want = left
	}

	for frame := range want {
		idx := g.read + frame
		for ch := range g.channels {
			dst[frame*g.channels+ch] = g.waveform(idx, ch)
		}
	}

	g.read += want
	if g.read >= g.frames {
		return want, io.EOF
	}
	return want, nil
}

// Tone holds the parameters shared by the periodic generators.
type Tone struct {
	SampleRate int
	Frames     int
	Channels   int
	Amplitude  float64
}

// Sine generates amplitude * sin(2π·i·frequency/rate), identical on every
// channel.
func Sine(t Tone, frequency float64) *Generator {
	return New(t.Frames, t.Channels, func(frame, _ int) float64 {
		angle := 2 * math.Pi * float64(frame) * frequency / float64(t.SampleRate)
		return t.Amplitude * math.Sin(angle)
	})
}

// Sweep generates a logarithmic frequency sweep from startFreq to endFreq
// over the full sequence. channelOffset shifts the instantaneous frequency
// by channelOffset*channel Hz so multi-channel material stays
// distinguishable per channel.
func Sweep(t Tone, startFreq, endFreq, channelOffset float64) *Generator {
	duration := float64(t.Frames) / float64(t.SampleRate)
	ratio := endFreq / startFreq

	return New(t.Frames, t.Channels, func(frame, channel int) float64 {
		sec := float64(frame) / float64(t.SampleRate)
		freq := startFreq * math.Pow(ratio, sec/duration)
		angle := 2 * math.Pi * sec * (freq + float64(channel)*channelOffset)
		return t.Amplitude * math.Sin(angle)
	})
}

// Silence generates all-zero frames.
func Silence(frames, channels int) *Generator {
	return New(frames, channels, func(_, _ int) float64 {
		return 0
	})
}

// Clipped generates full-scale saturation on every channel.
func Clipped(frames, channels int) *Generator {
	return New(frames, channels, func(_, _ int) float64 {
		return 1.0
	})
}

// AltPattern generates stereo frames with channel 0 saturated and channel 1
// silent.
func AltPattern(frames int) *Generator {
	return New(frames, 2, func(_, channel int) float64 {
		if channel == 0 {
			return 1.0
		}
		return 0
	})
}

// Ramp generates a mono linear ramp from -1 to +1 across frames, used for
// the very-short-file fixtures.
func Ramp(frames int) *Generator {
	return New(frames, 1, func(frame, _ int) float64 {
		if frames < 2 {
			return -1
		}
		return -1 + 2*float64(frame)/float64(frames-1)
	})
}

// NaNInf generates a mono float-only sequence that is zero everywhere except
// NaN over [nanFrom, nanFrom+10) and +Inf over [infFrom, infFrom+10).
func NaNInf(frames, nanFrom, infFrom int) *Generator {
	return New(frames, 1, func(frame, _ int) float64 {
		switch {
		case frame >= nanFrom && frame < nanFrom+10:
			return math.NaN()
		case frame >= infFrom && frame < infFrom+10:
			return math.Inf(1)
		}
		return 0
	})
}
