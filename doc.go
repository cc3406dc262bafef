// SPDX-License-Identifier: EPL-2.0

// Package wavforge generates WAV (RIFF/RIFX) fixture corpora for testing
// audio decoders.
//
// A fixture corpus has two halves. The well-formed half covers the full
// encoding matrix (PCM at 8/16/24/32 bits, IEEE float at 32/64 bits,
// G.711 A-law and µ-law, mono through 8 channels, little-endian RIFF and
// big-endian RIFX containers) carrying sine tones, logarithmic sweeps and
// edge-case payloads (silence, full-scale clipping, NaN/Infinity floats,
// very short streams). The malformed half consists of named files that
// each violate exactly one container invariant: lying size fields, missing
// or duplicated chunks, impossible fmt values, mixed endianness and so on.
//
// Every fixture is deterministic: the same configuration reproduces the
// same bytes, so corpora can be regenerated and diffed at will. A JSON
// manifest written alongside the well-formed files tells a decoder harness
// what to expect from each one.
//
// # Quick Start
//
// Generate a complete corpus with the defaults (1 second at 44100 Hz):
//
//	cfg := wavforge.DefaultConfig()
//	cfg.OutputDir = "testdata/wav"
//	res, err := wavforge.GenerateAll(cfg)
//
// Or from the command line:
//
//	wavforge -out testdata/wav -verify
//
// # Packages
//
// The work splits across focused subpackages:
//
//   - codec: normalized sample <-> on-disk encodings, G.711 companding
//   - signal: deterministic, restartable test-signal generators
//   - riffio: RIFF chunk serialization under either byte order
//   - container: well-formed WAVE composition
//   - evil: the malformed-file recipes
//   - fixture: catalog, dispatcher, manifest and verification
//
// # Verification
//
// With Config.Verify enabled, each little-endian fixture is read back
// through the github.com/go-audio decoder stack after writing and checked
// against its manifest entry, so a composer regression fails the run
// instead of poisoning a decoder's test corpus.
package wavforge
