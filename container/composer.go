// SPDX-License-Identifier: EPL-2.0

package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/wavforge/codec"
	"github.com/ik5/wavforge/riffio"
	"github.com/ik5/wavforge/signal"
)

// Endianness selects the container flavor.
type Endianness int

const (
	LittleEndian Endianness = iota // RIFF
	BigEndian                      // RIFX
)

// ByteOrder returns the binary order applied to every multi-byte header
// field of the container.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Tag returns the outer container tag: RIFF or RIFX.
func (e Endianness) Tag() string {
	if e == BigEndian {
		return riffio.RifxID
	}
	return riffio.RiffID
}

func (e Endianness) String() string {
	if e == BigEndian {
		return "be"
	}
	return "le"
}

// StreamConfig describes the audio stream carried by a container.
type StreamConfig struct {
	Channels   int
	SampleRate int
	Endian     Endianness
}

func (c StreamConfig) validate() error {
	if c.Channels < 1 {
		return ErrNoChannels
	}
	if c.SampleRate < 1 {
		return ErrNoSampleRate
	}
	return nil
}

// Compose builds a complete well-formed WAVE file: header, fmt chunk, a
// fact chunk for every non-PCM format, and the data chunk encoded from gen.
// The generator is iterated exactly once, in frame order.
func Compose(cfg StreamConfig, format codec.Format, gen *signal.Generator) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if gen.Channels() != cfg.Channels {
		return nil, fmt.Errorf("%w: generator has %d, stream wants %d",
			ErrChannelMismatch, gen.Channels(), cfg.Channels)
	}

	order := cfg.Endian.ByteOrder()
	frames := gen.Frames()
	blockAlign := cfg.Channels * format.BytesPerSample()
	byteRate := cfg.SampleRate * blockAlign
	dataSize := frames * blockAlign

	fmtPayload := appendFmtPayload(nil, order, format, cfg, byteRate, blockAlign)

	var factPayload []byte
	if format.Kind.FormatTag() != 1 {
		factPayload = riffio.AppendU32(nil, order, uint32(frames))
	}

	data, err := encodeData(order, format, gen, dataSize)
	if err != nil {
		return nil, err
	}

	payloadLens := []int{len(fmtPayload), len(data)}
	if factPayload != nil {
		payloadLens = []int{len(fmtPayload), len(factPayload), len(data)}
	}

	out := make([]byte, 0, 12+int(riffio.ContainerSize(payloadLens...))-4)
	out = riffio.AppendHeader(out, order, cfg.Endian.Tag(), riffio.ContainerSize(payloadLens...))
	out = riffio.AppendChunk(out, order, riffio.FmtID, fmtPayload)
	if factPayload != nil {
		out = riffio.AppendChunk(out, order, riffio.FactID, factPayload)
	}
	out = riffio.AppendChunk(out, order, riffio.DataID, data)

	return out, nil
}

// appendFmtPayload builds the canonical 16-byte fmt layout, extended by a
// zero cbSize word to 18 bytes for the companded formats.
func appendFmtPayload(dst []byte, order binary.ByteOrder, format codec.Format,
	cfg StreamConfig, byteRate, blockAlign int,
) []byte {
	dst = riffio.AppendU16(dst, order, format.Kind.FormatTag())
	dst = riffio.AppendU16(dst, order, uint16(cfg.Channels))
	dst = riffio.AppendU32(dst, order, uint32(cfg.SampleRate))
	dst = riffio.AppendU32(dst, order, uint32(byteRate))
	dst = riffio.AppendU16(dst, order, uint16(blockAlign))
	dst = riffio.AppendU16(dst, order, uint16(format.BitDepth))
	if format.Extended() {
		dst = riffio.AppendU16(dst, order, 0)
	}
	return dst
}

func encodeData(order binary.ByteOrder, format codec.Format,
	gen *signal.Generator, dataSize int,
) ([]byte, error) {
	data := make([]byte, 0, dataSize)
	buf := make([]float64, 512*gen.Channels())

	for {
		n, err := gen.ReadFrames(buf)
		for _, sample := range buf[:n*gen.Channels()] {
			data = format.Encode(data, order, sample)
		}

		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading frames: %w", err)
		}
	}
}
