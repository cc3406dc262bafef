// SPDX-License-Identifier: EPL-2.0

package evil

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(t *testing.T, name string) Recipe {
	t.Helper()

	for _, r := range Recipes() {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no recipe named %q", name)
	return Recipe{}
}

func TestRecipes_Inventory(t *testing.T) {
	t.Parallel()

	recipes := Recipes()
	require.Len(t, recipes, 24)

	seen := map[string]bool{}
	for _, r := range recipes {
		assert.NotEmpty(t, r.Note, "%s has no note", r.Name)
		assert.False(t, seen[r.Name], "duplicate name %s", r.Name)
		seen[r.Name] = true
		assert.Equal(t, r.Name+".wav", r.Filename())
	}

	// The catalog order is part of the contract.
	assert.Equal(t, "evil_small_riff", recipes[0].Name)
	assert.Equal(t, "evil_float_fmt_int_data", recipes[23].Name)
}

func TestRecipes_Deterministic(t *testing.T) {
	t.Parallel()

	for _, r := range Recipes() {
		assert.Equal(t, r.Build(), r.Build(), "%s not stable across builds", r.Name)
	}
}

func TestSmallRiff(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_small_riff").Build()
	declared := binary.LittleEndian.Uint32(b[4:8])
	assert.Equal(t, uint32(20), declared)
	assert.Less(t, int(declared), len(b)-8, "declared size must undershoot")
}

func TestBigRiff(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_big_riff").Build()
	assert.Equal(t, uint32(99999), binary.LittleEndian.Uint32(b[4:8]))
	assert.Greater(t, int(binary.LittleEndian.Uint32(b[4:8])), len(b))
}

func TestMultiData(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_multi_data_chunks").Build()

	// First data chunk is empty, second carries 32 bytes of 0x01.
	first := 12 + 8 + 16
	assert.Equal(t, "data", string(b[first:first+4]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[first+4:first+8]))

	second := first + 8
	assert.Equal(t, "data", string(b[second:second+4]))
	assert.Equal(t, uint32(32), binary.LittleEndian.Uint32(b[second+4:second+8]))
	assert.Equal(t, byte(0x01), b[second+8])
	assert.Len(t, b, second+8+32)
}

func TestDataBeforeFmt(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_data_before_fmt").Build()
	assert.Equal(t, "data", string(b[12:16]))
	assert.Equal(t, "fmt ", string(b[12+8+32:12+8+32+4]))
}

func TestOddChunkSize(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_odd_chunk_size").Build()
	assert.Equal(t, uint32(17), binary.LittleEndian.Uint32(b[16:20]))

	// 17-byte fmt padded to 18; "data" follows the pad byte.
	dataOff := 12 + 8 + 18
	assert.Equal(t, "data", string(b[dataOff:dataOff+4]))
	assert.Equal(t, uint32(33), binary.LittleEndian.Uint32(b[dataOff+4:dataOff+8]))
	assert.Len(t, b, dataOff+8+34, "33-byte data padded to 34")
}

func TestTruncated(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_truncated").Build()
	dataOff := 12 + 8 + 16
	assert.Equal(t, "data", string(b[dataOff:dataOff+4]))
	assert.Equal(t, uint32(32), binary.LittleEndian.Uint32(b[dataOff+4:dataOff+8]))
	assert.Len(t, b, dataOff+8+10, "only 10 of the declared 32 bytes present")
}

func TestMissingChunks(t *testing.T) {
	t.Parallel()

	noFmt := byName(t, "evil_no_fmt_chunk").Build()
	assert.Equal(t, "data", string(noFmt[12:16]))
	assert.Len(t, noFmt, 12+8+32)

	noData := byName(t, "evil_no_data_chunk").Build()
	assert.Equal(t, "fmt ", string(noData[12:16]))
	assert.Len(t, noData, 12+8+16)
}

func TestFmtFieldMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		recipe string
		offset int // into the fmt payload
		width  int
		want   uint32
	}{
		{name: "format tag", recipe: "evil_bad_format_tag", offset: 0, width: 2, want: 0x99},
		{name: "zero channels", recipe: "evil_zero_channels", offset: 2, width: 2, want: 0},
		{name: "extreme channels", recipe: "evil_extreme_channels", offset: 2, width: 2, want: 0xFFFF},
		{name: "zero sample rate", recipe: "evil_zero_sample_rate", offset: 4, width: 4, want: 0},
		{name: "bad bit depth", recipe: "evil_bad_bit_depth", offset: 14, width: 2, want: 13},
		{name: "bad block align", recipe: "evil_bad_block_align", offset: 12, width: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := byName(t, tt.recipe).Build()
			require.Equal(t, "fmt ", string(b[12:16]))
			payload := b[20 : 20+16]

			var got uint32
			if tt.width == 2 {
				got = uint32(binary.LittleEndian.Uint16(payload[tt.offset:]))
			} else {
				got = binary.LittleEndian.Uint32(payload[tt.offset:])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMixedEndian(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_mixed_endian").Build()
	assert.Equal(t, "RIFX", string(b[0:4]))
	assert.Equal(t, uint32(44), binary.BigEndian.Uint32(b[4:8]),
		"outer size is big-endian")
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(b[16:20]),
		"inner chunk size stays little-endian")
}

func TestDegenerateFiles(t *testing.T) {
	t.Parallel()

	assert.Empty(t, byName(t, "evil_empty_file").Build())
	assert.Equal(t, []byte("RIFF"), byName(t, "evil_just_riff").Build())

	sig := byName(t, "evil_bad_wave_signature").Build()
	assert.Equal(t, "WXYZ", string(sig[8:12]))
}

func TestNestedChunks(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_nested_chunks").Build()
	listOff := 12 + 8 + 16
	assert.Equal(t, "LIST", string(b[listOff:listOff+4]))
	assert.Equal(t, "INFO", string(b[listOff+8:listOff+12]))
	assert.Equal(t, "RIFF", string(b[listOff+12:listOff+16]))
}

func TestFloatFmtIntData(t *testing.T) {
	t.Parallel()

	b := byName(t, "evil_float_fmt_int_data").Build()
	payload := b[20 : 20+16]
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(payload[0:2]))
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(payload[14:16]))

	dataOff := 12 + 8 + 16
	assert.Equal(t, uint32(32), binary.LittleEndian.Uint32(b[dataOff+4:dataOff+8]),
		"declares 32 bytes")
	require.Len(t, b, dataOff+8+16, "but carries only 16")

	assert.Equal(t, int16(1000), int16(binary.LittleEndian.Uint16(b[dataOff+8:])))
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(b[dataOff+8+10:])))
}
