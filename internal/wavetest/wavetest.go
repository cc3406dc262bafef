// SPDX-License-Identifier: EPL-2.0

// Package wavetest holds shared helpers for inspecting generated WAV bytes
// in tests. Unlike the go-audio parsers these helpers accept either byte
// order, which is what makes RIFX fixtures checkable at all.
package wavetest

import (
	"encoding/binary"
	"testing"
)

// FmtFields is the canonical 16-byte fmt layout.
type FmtFields struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// RiffSize returns the declared container size field.
func RiffSize(t *testing.T, file []byte, order binary.ByteOrder) uint32 {
	t.Helper()

	if len(file) < 12 {
		t.Fatalf("file too short for a RIFF header: %d bytes", len(file))
	}
	return order.Uint32(file[4:8])
}

// Chunk returns the payload of the first chunk with the given id, walking
// the chunk sequence from byte 12. The walk honors pad bytes.
func Chunk(t *testing.T, file []byte, order binary.ByteOrder, id string) []byte {
	t.Helper()

	payload, ok := findChunk(file, order, id)
	if !ok {
		t.Fatalf("chunk %q not found", id)
	}
	return payload
}

// HasChunk reports whether a chunk with the given id exists.
func HasChunk(file []byte, order binary.ByteOrder, id string) bool {
	_, ok := findChunk(file, order, id)
	return ok
}

func findChunk(file []byte, order binary.ByteOrder, id string) ([]byte, bool) {
	pos := 12
	for pos+8 <= len(file) {
		chunkID := string(file[pos : pos+4])
		size := int(order.Uint32(file[pos+4 : pos+8]))
		pos += 8

		if pos+size > len(file) {
			return nil, false
		}
		if chunkID == id {
			return file[pos : pos+size], true
		}

		pos += size + size%2
	}
	return nil, false
}

// Fmt decodes the fixed fields of the fmt chunk.
func Fmt(t *testing.T, file []byte, order binary.ByteOrder) FmtFields {
	t.Helper()

	p := Chunk(t, file, order, "fmt ")
	if len(p) < 16 {
		t.Fatalf("fmt chunk too short: %d bytes", len(p))
	}

	return FmtFields{
		AudioFormat:   order.Uint16(p[0:2]),
		Channels:      order.Uint16(p[2:4]),
		SampleRate:    order.Uint32(p[4:8]),
		ByteRate:      order.Uint32(p[8:12]),
		BlockAlign:    order.Uint16(p[12:14]),
		BitsPerSample: order.Uint16(p[14:16]),
	}
}
