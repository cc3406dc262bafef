// SPDX-License-Identifier: EPL-2.0

package riffio

import "encoding/binary"

// Chunk ids used by the WAVE composer.
const (
	RiffID = "RIFF"
	RifxID = "RIFX"
	WaveID = "WAVE"
	FmtID  = "fmt "
	FactID = "fact"
	DataID = "data"
	ListID = "LIST"
)

// AppendChunk appends id || size || payload || pad to dst. The size field is
// len(payload); the pad byte keeping chunks word-aligned is present in the
// stream but excluded from size.
func AppendChunk(dst []byte, order binary.ByteOrder, id string, payload []byte) []byte {
	dst = append(dst, id[:4]...)
	dst = AppendU32(dst, order, uint32(len(payload)))
	dst = append(dst, payload...)
	if len(payload)%2 != 0 {
		dst = append(dst, 0)
	}
	return dst
}

// AppendHeader appends the container header: RIFF or RIFX, the declared
// size, and the WAVE form tag.
func AppendHeader(dst []byte, order binary.ByteOrder, tag string, size uint32) []byte {
	dst = append(dst, tag[:4]...)
	dst = AppendU32(dst, order, size)
	return append(dst, WaveID...)
}

// ChunkSize returns the number of bytes AppendChunk emits for a payload:
// 8 header bytes plus the padded payload.
func ChunkSize(payloadLen int) int {
	return 8 + payloadLen + payloadLen%2
}

// ContainerSize returns the RIFF size field for an ordered set of chunk
// payload lengths: 4 bytes for the WAVE tag plus every padded chunk.
func ContainerSize(payloadLens ...int) uint32 {
	size := 4
	for _, n := range payloadLens {
		size += ChunkSize(n)
	}
	return uint32(size)
}

// AppendU16 appends one 16-bit word in order. Exported for fmt-chunk
// payload construction.
func AppendU16(dst []byte, order binary.ByteOrder, v uint16) []byte {
	var b [2]byte
	order.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

// AppendU32 appends one 32-bit word in order.
func AppendU32(dst []byte, order binary.ByteOrder, v uint32) []byte {
	var b [4]byte
	order.PutUint32(b[:], v)
	return append(dst, b[:]...)
}
