// SPDX-License-Identifier: EPL-2.0

// Package signal provides finite, restartable test-signal generators.
//
// Every generator is a pure function of (frame, channel): re-creating a
// generator with the same parameters, or calling Reset on an existing one,
// reproduces the identical sample sequence. That determinism is what makes
// generated fixtures byte-for-byte reproducible across runs.
//
// Available signals:
//
//   - Sine: fixed-frequency tone, identical across channels
//   - Sweep: logarithmic frequency sweep, optional per-channel offset
//   - Silence, Clipped, AltPattern, Ramp: edge-case material
//   - NaNInf: float-only NaN/Infinity injection windows
//
// Reading follows the io convention used across this codebase: ReadFrames
// fills an interleaved buffer and reports io.EOF once the finite sequence
// is exhausted.
package signal
