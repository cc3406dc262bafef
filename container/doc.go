// SPDX-License-Identifier: EPL-2.0

// Package container composes complete, well-formed WAVE files.
//
// A composed file is the outer RIFF (little-endian) or RIFX (big-endian)
// header with a computed size field, the fmt chunk, a fact chunk whenever
// the format tag is not plain PCM, and the data chunk encoded frame by
// frame from a signal generator.
//
// The size invariant holds for every composed file: the declared container
// size equals 4 (WAVE tag) plus the sum of every chunk's 8 header bytes and
// padded payload, which is the file length minus 8.
//
// Files are built in memory; fixture volumes are bounded and the byte slice
// result is what gets compared, hashed and written.
package container
