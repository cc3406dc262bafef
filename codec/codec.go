// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/wavforge/utils"
)

// Kind identifies a sample encoding family.
type Kind int

const (
	PCM Kind = iota
	IEEEFloat
	ALaw
	ULaw
)

// FormatTag returns the WAVE format tag word written into the fmt chunk.
func (k Kind) FormatTag() uint16 {
	switch k {
	case PCM:
		return 1
	case IEEEFloat:
		return 3
	case ALaw:
		return 6
	case ULaw:
		return 7
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case PCM:
		return "pcm"
	case IEEEFloat:
		return "float"
	case ALaw:
		return "alaw"
	case ULaw:
		return "ulaw"
	}
	return "unknown"
}

// Format is a validated (kind, bit depth) pair.
type Format struct {
	Kind     Kind
	BitDepth int
}

// NewFormat validates the (kind, bit depth) pair at configuration time.
// Unsupported pairs never reach the encoding path.
func NewFormat(kind Kind, bitDepth int) (Format, error) {
	f := Format{Kind: kind, BitDepth: bitDepth}

	switch kind {
	case PCM:
		switch bitDepth {
		case 8, 16, 24, 32:
			return f, nil
		}
	case IEEEFloat:
		switch bitDepth {
		case 32, 64:
			return f, nil
		}
	case ALaw, ULaw:
		if bitDepth == 8 {
			return f, nil
		}
	}

	return Format{}, fmt.Errorf("%w: %s/%d", ErrUnsupportedFormat, kind, bitDepth)
}

// BytesPerSample returns the on-disk width of one sample.
func (f Format) BytesPerSample() int { return f.BitDepth / 8 }

// Extended reports whether the fmt chunk needs the 18-byte extended layout.
func (f Format) Extended() bool { return f.Kind == ALaw || f.Kind == ULaw }

// Encode appends the on-disk representation of one normalized sample to dst.
// Multi-byte PCM and float samples follow order; companded samples are a
// single byte and ignore it. The sample is expected in [-1, 1] for integer
// formats; float formats pass any value through, including NaN and Inf.
func (f Format) Encode(dst []byte, order binary.ByteOrder, sample float64) []byte {
	switch f.Kind {
	case PCM:
		switch f.BitDepth {
		case 8:
			return append(dst, EncodePCM8(sample))
		case 16:
			var b [2]byte
			order.PutUint16(b[:], uint16(EncodePCM16(sample)))
			return append(dst, b[:]...)
		case 24:
			return AppendPCM24(dst, order, sample)
		case 32:
			var b [4]byte
			order.PutUint32(b[:], uint32(EncodePCM32(sample)))
			return append(dst, b[:]...)
		}
	case IEEEFloat:
		if f.BitDepth == 32 {
			var b [4]byte
			order.PutUint32(b[:], math.Float32bits(float32(sample)))
			return append(dst, b[:]...)
		}
		var b [8]byte
		order.PutUint64(b[:], math.Float64bits(sample))
		return append(dst, b[:]...)
	case ALaw:
		return append(dst, LinearToALaw(linear16(sample)))
	case ULaw:
		return append(dst, LinearToULaw(linear16(sample)))
	}
	return dst
}

// Decode reads back one sample written by Encode and re-normalizes it.
// It is the test-side inverse used for round-trip checks.
func (f Format) Decode(src []byte, order binary.ByteOrder) float64 {
	switch f.Kind {
	case PCM:
		switch f.BitDepth {
		case 8:
			return float64(src[0])/127.5 - 1.0
		case 16:
			return float64(int16(order.Uint16(src))) / 32767.0
		case 24:
			return float64(DecodePCM24(src, order)) / 8388607.0
		case 32:
			return float64(int32(order.Uint32(src))) / 2147483647.0
		}
	case IEEEFloat:
		if f.BitDepth == 32 {
			return float64(math.Float32frombits(order.Uint32(src)))
		}
		return math.Float64frombits(order.Uint64(src))
	case ALaw:
		return float64(ALawToLinear(src[0])) / 32767.0
	case ULaw:
		return float64(ULawToLinear(src[0])) / 32767.0
	}
	return 0
}

// EncodePCM8 converts a normalized sample to unsigned 8-bit PCM with the
// 127.5 zero bias. Callers supply bounded input; no clamping happens here.
func EncodePCM8(sample float64) byte {
	return byte(math.Round((sample + 1.0) * 127.5))
}

// EncodePCM16 scales a normalized sample to a signed 16-bit value.
// Out-of-range input overflows on purpose; it is a decoder test target.
func EncodePCM16(sample float64) int16 {
	return int16(math.Round(sample * 32767.0))
}

// EncodePCM32 scales a normalized sample to a signed 32-bit value.
func EncodePCM32(sample float64) int32 {
	return int32(math.Round(sample * 2147483647.0))
}

// AppendPCM24 appends a normalized sample as 3 bytes in order. Unlike the
// 16/32-bit paths the value is clamped to [-8388608, 8388607] first: the
// narrower range would otherwise wrap silently when truncated to 3 bytes.
func AppendPCM24(dst []byte, order binary.ByteOrder, sample float64) []byte {
	v := int32(math.Round(sample * 8388607.0))
	if v > 8388607 {
		v = 8388607
	} else if v < -8388608 {
		v = -8388608
	}

	if order == binary.BigEndian {
		return append(dst, byte(v>>16), byte(v>>8), byte(v))
	}
	return append(dst, byte(v), byte(v>>8), byte(v>>16))
}

// DecodePCM24 reads a signed 24-bit sample written by AppendPCM24.
func DecodePCM24(src []byte, order binary.ByteOrder) int32 {
	var u uint32
	if order == binary.BigEndian {
		u = uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
	} else {
		u = uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16
	}
	if u&0x800000 != 0 {
		u |= 0xFF000000
	}
	return int32(u)
}

func linear16(sample float64) int {
	return utils.FloatToLinear16(sample)
}
