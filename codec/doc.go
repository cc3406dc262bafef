// SPDX-License-Identifier: EPL-2.0

// Package codec converts normalized audio samples to and from the on-disk
// encodings used in WAV data chunks.
//
// A normalized sample is a float64 in [-1.0, 1.0]. Values outside that range
// are allowed for edge-case material: the IEEE-float encodings pass any value
// through unchanged (including NaN and Inf), the integer encodings make
// overflow behavior explicit per bit depth.
//
// # Supported Encodings
//
//   - PCM 8-bit unsigned (zero at the 127.5 bias)
//   - PCM 16/24/32-bit signed, little- or big-endian
//   - IEEE float 32/64-bit
//   - ITU-T G.711 A-law and µ-law (8-bit companded)
//
// Only 24-bit PCM clamps: its 3-byte truncation would otherwise wrap
// silently on overflow. The wider integer formats deliberately do not.
//
// # Usage
//
// Validate a (kind, bit depth) pair once at configuration time, then encode
// samples through the resulting Format:
//
//	f, err := codec.NewFormat(codec.PCM, 16)
//	if err != nil {
//	    // Unsupported combination; nothing was encoded.
//	}
//	buf = f.Encode(buf, binary.LittleEndian, 0.5)
//
// Format.Decode is the matching read-back path used by round-trip tests.
//
// The G.711 companders are also exported directly (LinearToALaw,
// LinearToULaw and their inverses) for callers that already hold 16-bit
// linear values.
package codec
