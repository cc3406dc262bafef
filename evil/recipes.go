// SPDX-License-Identifier: EPL-2.0

package evil

import (
	"bytes"
	"encoding/binary"
)

// Recipe is one named malformation: a self-contained builder producing the
// exact byte layout for one structurally invalid file. Builders never fail;
// the bytes ARE the product, invalid on purpose.
type Recipe struct {
	Name  string // output file stem, e.g. "evil_small_riff"
	Note  string // the one container invariant the bytes violate
	Build func() []byte
}

// Filename returns the output name for the recipe.
func (r Recipe) Filename() string { return r.Name + ".wav" }

// stdFmt is the reference 16-byte fmt payload shared by most recipes:
// PCM, mono, 44100 Hz, byte rate 88200, block align 2, 16 bits.
var stdFmt = []byte{
	0x01, 0x00, 0x01, 0x00, 0x44, 0xac, 0x00, 0x00,
	0x88, 0x58, 0x01, 0x00, 0x02, 0x00, 0x10, 0x00,
}

func header(tag string, size uint32) []byte {
	b := make([]byte, 0, 12)
	b = append(b, tag...)
	b = binary.LittleEndian.AppendUint32(b, size)
	return append(b, "WAVE"...)
}

func chunkHeader(id string, size uint32) []byte {
	b := make([]byte, 0, 8)
	b = append(b, id...)
	return binary.LittleEndian.AppendUint32(b, size)
}

func stdFmtChunk() []byte {
	return append(chunkHeader("fmt ", 16), stdFmt...)
}

func stdDataChunk() []byte {
	return append(chunkHeader("data", 32), make([]byte, 32)...)
}

func cat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// Recipes returns every malformation in a fixed order. The order, names and
// byte layouts are stable across runs.
func Recipes() []Recipe {
	return []Recipe{
		{
			Name: "evil_small_riff",
			Note: "declared RIFF size smaller than the actual remaining bytes",
			Build: func() []byte {
				return cat(header("RIFF", 20), stdFmtChunk(), stdDataChunk())
			},
		},
		{
			Name: "evil_big_riff",
			Note: "declared RIFF size far past the end of the file",
			Build: func() []byte {
				return cat(header("RIFF", 99999), stdFmtChunk(), stdDataChunk())
			},
		},
		{
			Name: "evil_multi_data_chunks",
			Note: "two data chunks, the first empty, the second populated",
			Build: func() []byte {
				filled := append(chunkHeader("data", 32), bytes.Repeat([]byte{0x01}, 32)...)
				return cat(header("RIFF", 100), stdFmtChunk(), chunkHeader("data", 0), filled)
			},
		},
		{
			Name: "evil_data_before_fmt",
			Note: "data chunk precedes the fmt chunk",
			Build: func() []byte {
				return cat(header("RIFF", 60),
					chunkHeader("data", 32), make([]byte, 32),
					stdFmtChunk())
			},
		},
		{
			Name: "evil_odd_chunk_size",
			Note: "odd-sized chunks carrying their correct single pad byte",
			Build: func() []byte {
				oddFmt := cat(chunkHeader("fmt ", 17), stdFmt, []byte{0x00})
				oddData := cat(chunkHeader("data", 33), make([]byte, 33), []byte{0x00})
				return cat(header("RIFF", 60), oddFmt, oddData)
			},
		},
		{
			Name: "evil_truncated",
			Note: "data chunk declares 32 bytes but only 10 follow",
			Build: func() []byte {
				return cat(header("RIFF", 40), stdFmtChunk(),
					chunkHeader("data", 32), make([]byte, 10))
			},
		},
		{
			Name: "evil_no_fmt_chunk",
			Note: "fmt chunk absent entirely",
			Build: func() []byte {
				return cat(header("RIFF", 36), stdDataChunk())
			},
		},
		{
			Name: "evil_no_data_chunk",
			Note: "data chunk absent entirely",
			Build: func() []byte {
				return cat(header("RIFF", 28), stdFmtChunk())
			},
		},
		{
			Name: "evil_zero_fmt_size",
			Note: "fmt chunk declared with size 0",
			Build: func() []byte {
				return cat(header("RIFF", 40), chunkHeader("fmt ", 0), stdDataChunk())
			},
		},
		{
			Name: "evil_tiny_fmt",
			Note: "fmt chunk smaller than the minimal 16-byte layout",
			Build: func() []byte {
				return cat(header("RIFF", 30),
					chunkHeader("fmt ", 8), stdFmt[:8],
					stdDataChunk())
			},
		},
		{
			Name: "evil_bad_format_tag",
			Note: "format tag 0x99, not one of 1/3/6/7",
			Build: func() []byte {
				return cat(header("RIFF", 44), chunkHeader("fmt ", 16),
					fmtWith(func(f []byte) { f[0] = 0x99 }), stdDataChunk())
			},
		},
		{
			Name: "evil_zero_channels",
			Note: "channel count 0",
			Build: func() []byte {
				return cat(header("RIFF", 44), chunkHeader("fmt ", 16),
					fmtWith(func(f []byte) { f[2] = 0x00 }), stdDataChunk())
			},
		},
		{
			Name: "evil_extreme_channels",
			Note: "channel count 65535",
			Build: func() []byte {
				return cat(header("RIFF", 44), chunkHeader("fmt ", 16),
					fmtWith(func(f []byte) { f[2], f[3] = 0xff, 0xff }), stdDataChunk())
			},
		},
		{
			Name: "evil_zero_sample_rate",
			Note: "sample rate 0",
			Build: func() []byte {
				return cat(header("RIFF", 44), chunkHeader("fmt ", 16),
					fmtWith(func(f []byte) { f[4], f[5] = 0x00, 0x00 }), stdDataChunk())
			},
		},
		{
			Name: "evil_bad_bit_depth",
			Note: "bit depth 13",
			Build: func() []byte {
				return cat(header("RIFF", 44), chunkHeader("fmt ", 16),
					fmtWith(func(f []byte) { f[14] = 0x0d }), stdDataChunk())
			},
		},
		{
			Name: "evil_bad_block_align",
			Note: "block align 1 contradicts 2 channels at 16 bits",
			Build: func() []byte {
				return cat(header("RIFF", 44), chunkHeader("fmt ", 16),
					fmtWith(func(f []byte) { f[2] = 0x02; f[12] = 0x01 }), stdDataChunk())
			},
		},
		{
			Name: "evil_mixed_endian",
			Note: "RIFX container whose inner chunk fields stay little-endian",
			Build: func() []byte {
				b := append([]byte("RIFX"), 0x00, 0x00, 0x00, 0x2c) // big-endian 44
				b = append(b, "WAVE"...)
				return cat(b, stdFmtChunk(), stdDataChunk())
			},
		},
		{
			Name: "evil_bad_chunk_id",
			Note: "chunk id fmx instead of fmt",
			Build: func() []byte {
				return cat(header("RIFF", 44),
					chunkHeader("fmx ", 16), stdFmt,
					stdDataChunk())
			},
		},
		{
			Name: "evil_oversized_chunk",
			Note: "data size field points far past end of file",
			Build: func() []byte {
				return cat(header("RIFF", 44), stdFmtChunk(),
					chunkHeader("data", 99999), make([]byte, 32))
			},
		},
		{
			Name: "evil_empty_file",
			Note: "zero-length file",
			Build: func() []byte {
				return []byte{}
			},
		},
		{
			Name: "evil_just_riff",
			Note: "4-byte file containing only the RIFF tag",
			Build: func() []byte {
				return []byte("RIFF")
			},
		},
		{
			Name: "evil_bad_wave_signature",
			Note: "form tag WXYZ instead of WAVE",
			Build: func() []byte {
				b := append([]byte("RIFF"), 0x2c, 0x00, 0x00, 0x00)
				b = append(b, "WXYZ"...)
				return cat(b, stdFmtChunk(), stdDataChunk())
			},
		},
		{
			Name: "evil_nested_chunks",
			Note: "LIST chunk embedding a nested RIFF form",
			Build: func() []byte {
				nested := cat(chunkHeader("LIST", 20), []byte("INFO"),
					chunkHeader("RIFF", 8), []byte("WAVE"))
				return cat(header("RIFF", 60), stdFmtChunk(), nested, stdDataChunk())
			},
		},
		{
			Name: "evil_float_fmt_int_data",
			Note: "fmt claims IEEE float while the data bytes are integer PCM",
			Build: func() []byte {
				floatFmt := []byte{
					0x03, 0x00, 0x01, 0x00, 0x44, 0xac, 0x00, 0x00,
					0x10, 0xb1, 0x02, 0x00, 0x04, 0x00, 0x20, 0x00,
				}
				ints := make([]byte, 0, 16)
				for _, v := range []int16{1000, -1000, 2000, -2000, 0, 32767, -32768, 100} {
					ints = binary.LittleEndian.AppendUint16(ints, uint16(v))
				}
				return cat(header("RIFF", 44),
					chunkHeader("fmt ", 16), floatFmt,
					chunkHeader("data", 32), ints)
			},
		},
	}
}

// fmtWith copies the reference fmt payload and applies one mutation,
// keeping each recipe to its single documented violation.
func fmtWith(mutate func([]byte)) []byte {
	f := append([]byte(nil), stdFmt...)
	mutate(f)
	return f
}
