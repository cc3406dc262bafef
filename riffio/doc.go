// SPDX-License-Identifier: EPL-2.0

// Package riffio serializes RIFF chunks under a caller-chosen byte order.
//
// A chunk is id || size(u32) || payload, padded to even length with a pad
// byte that is present in the stream but excluded from the size field. The
// same writer serves both RIFF (little-endian) and RIFX (big-endian)
// containers; the byte order only affects multi-byte header words, never
// the payload bytes themselves.
package riffio
