// SPDX-License-Identifier: EPL-2.0

// Package fixture drives fixture generation end to end.
//
// A run is catalog-driven: Config expands into an ordered list of fixture
// descriptors (the sine coverage matrix, the sweep matrix, the exotic
// edge cases) plus the malformed recipes, each of which is a pure function
// from its descriptor to one file's bytes. Fixtures do not depend on each
// other, so the dispatcher simply walks the list; the manifest is collected
// as explicit per-fixture results and written once at the end of the run.
//
// Error handling follows the run/fixture split: an unsupported format
// combination fails only its own fixture and is reported in Result.Failed,
// while any filesystem error aborts the run before the manifest is written.
//
// With Config.Verify set, every little-endian well-formed fixture is read
// back through github.com/go-audio/wav and its chunk layout walked with
// github.com/go-audio/riff, catching composer regressions with a decoder
// stack the generator shares no code with.
package fixture
