// SPDX-License-Identifier: MIT

// Package convert: the standard resolution allow-list.
// Multi-resolution containers are built from a fixed ladder of bin sizes
// (1, 2 and 2.5 × 10^n steps from 2.5 Mb down to 1 kb); a table can only
// seed the rungs at or above its own resolution, since finer bins cannot
// be synthesized from coarser data.
package convert

// Resolutions is the process-wide allow-list of standard Hi-C bin sizes,
// descending. Treat as read-only.
var Resolutions = []int32{
	2500000,
	1000000,
	500000,
	250000,
	100000,
	50000,
	25000,
	10000,
	5000,
	2500,
	1000,
}

// Candidates returns the allow-listed resolutions that a table of bin size
// res can populate: every value ≥ res, descending. The result is a fresh
// slice; it is empty when res exceeds the coarsest rung.
//
// Complexity: O(len(Resolutions)).
func Candidates(res int32) []int32 {
	out := make([]int32, 0, len(Resolutions))
	for _, r := range Resolutions {
		if r >= res {
			out = append(out, r)
		}
	}

	return out
}
