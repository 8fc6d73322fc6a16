// SPDX-License-Identifier: MIT
// Package: httable/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context (row index, offending value) via %w.
//   • Value-domain violations reuse the core sentinels (core.ErrEmptyChrom,
//     core.ErrNegativePos, core.ErrBadResolution, ...) so one errors.Is
//     branch covers the whole construction path.

package builder

import "errors"

// ErrBadRow indicates a structurally invalid raw row: an unpaired end
// coordinate, or an end coordinate not strictly greater than its start.
// Usage: if errors.Is(err, ErrBadRow) { /* fix the adapter's row mapping */ }.
var ErrBadRow = errors.New("builder: invalid row")

// ErrAmbiguousResolution indicates that end-based resolution inference
// observed more than one distinct positive (end − start) value.
// Usage: if errors.Is(err, ErrAmbiguousResolution) { /* supply WithResolution */ }.
var ErrAmbiguousResolution = errors.New("builder: ambiguous resolution")

// ErrNoResolution indicates that inference found no strictly-positive
// pairwise distance to derive a bin size from (empty, single-bin or
// all-diagonal input).
// Usage: if errors.Is(err, ErrNoResolution) { /* supply WithResolution */ }.
var ErrNoResolution = errors.New("builder: cannot infer resolution")
