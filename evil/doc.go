// SPDX-License-Identifier: EPL-2.0

// Package evil emits deliberately malformed WAVE files.
//
// Each recipe violates exactly one container invariant, such as a lying
// size field, a missing or duplicated chunk, or an impossible fmt value. A
// recipe is written as a literal byte layout rather than going through the composer,
// which refuses to produce such files. Decoder test suites assert on these
// exact bytes to pin down per-malformation behavior (reject, recover,
// first-chunk-wins and so on), so layouts must stay stable: same bytes on
// every run, no incidental extra corruption.
package evil
