// SPDX-License-Identifier: MIT

// Package builder: resolution inference.
// GuessResolution derives the bin size from the rows themselves when the
// caller supplied none. Two strategies, tried in order:
//
//  1. End-based (preferred when available): if any row carries paired end
//     coordinates, the resolution is the unique positive (end − start)
//     value observed across all end-bearing rows and both sides. More than
//     one distinct value is an error — mixed bin widths cannot be
//     represented by a single envelope.
//  2. Distance-based: otherwise, the minimum strictly positive |Pos2−Pos1|
//     across all rows. Diagonal rows (Pos1 == Pos2) contribute zero and are
//     uninformative, so they are excluded.
//
// No strictly positive evidence at all (empty, single-bin or all-diagonal
// input) is an error; inference never defaults silently.
package builder

import "fmt"

// GuessResolution infers the bin size from raw rows. See the file header
// for the strategy order. Errors: ErrAmbiguousResolution when end-based
// deltas disagree, ErrNoResolution when no positive evidence exists.
//
// Complexity: O(n) time, O(k) space for k distinct end deltas.
func GuessResolution(rows []Row) (int32, error) {
	// Strategy 1: end-based deltas.
	deltas := make(map[int32]struct{})
	for _, r := range rows {
		if !r.hasEnds() {
			continue
		}
		if d := r.End1 - r.Pos1; d > 0 {
			deltas[d] = struct{}{}
		}
		if d := r.End2 - r.Pos2; d > 0 {
			deltas[d] = struct{}{}
		}
	}
	if len(deltas) > 1 {
		return 0, fmt.Errorf("GuessResolution: %d distinct end-start widths: %w",
			len(deltas), ErrAmbiguousResolution)
	}
	if len(deltas) == 1 {
		for d := range deltas {
			return d, nil
		}
	}

	// Strategy 2: minimum strictly positive pairwise distance.
	var best int32
	for _, r := range rows {
		d := r.Pos2 - r.Pos1
		if d < 0 {
			d = -d
		}
		if d == 0 {
			continue // diagonal bin, uninformative
		}
		if best == 0 || d < best {
			best = d
		}
	}
	if best == 0 {
		return 0, fmt.Errorf("GuessResolution: no strictly-positive pairwise distance: %w", ErrNoResolution)
	}

	return best, nil
}
