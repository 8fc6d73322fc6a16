// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for table⇄matrix conversion.
// Defaults (single source of truth, mirrored in defaultOptions):
//   - chromosome: inferred from the table (must be unique),
//   - missing score: NaN,
//   - windowed matrix: bins start at the minimum observed position.
package matrix

import "math"

// DefaultFullMatrix controls whether bin 0 is anchored at genomic position
// 0 (full) or at the minimum observed position (windowed).
const DefaultFullMatrix = false

// Option mutates the internal conversion options. Safe to apply
// repeatedly; the last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported to prevent external mutation; public entry points
// accept ...Option and resolve them via gatherOptions.
type options struct {
	chrom   string  // "" ⇒ infer unique chromosome from the table
	missing float64 // cell sentinel for absent signal; NaN by default
	full    bool    // anchor bin 0 at position 0 instead of minPos
}

// WithChrom selects the chromosome to convert explicitly, instead of
// inferring it from the table's distinct chromosome values.
func WithChrom(chrom string) Option {
	return func(o *options) { o.chrom = chrom }
}

// WithMissingScore sets the sentinel written into cells with no data and
// skipped when reading a matrix back into records. Any float64 is legal,
// including NaN (the default) and finite placeholders like 0 for tools
// that cannot ingest NaN.
func WithMissingScore(s float64) Option {
	return func(o *options) { o.missing = s }
}

// WithFullMatrix anchors bin 0 at genomic position 0, so the matrix spans
// [0, maxPos] regardless of where the data starts. Without it the matrix
// is windowed to [minPos, maxPos].
func WithFullMatrix() Option {
	return func(o *options) { o.full = true }
}

// gatherOptions resolves setters against the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := options{
		chrom:   "",
		missing: math.NaN(),
		full:    DefaultFullMatrix,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// isMissing reports whether v is absent signal under the sentinel policy:
// the sentinel itself, or NaN (always treated as missing).
func isMissing(v, sentinel float64) bool {
	return math.IsNaN(v) || v == sentinel
}

// sameScore compares two scores for the duplicate-pair conflict check,
// treating NaN as equal to NaN.
func sameScore(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
