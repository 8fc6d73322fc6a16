// SPDX-License-Identifier: MIT
// Package: httable/builder
//
// builder.go — the Build orchestrator and the raw Row type.
//
// Design contract (strict):
//   - One orchestrator: Build(rows, typ, norm, opts...). Validates, sorts,
//     infers, constructs — in that documented order, failing fast.
//   - No partial results: any violation returns (nil, err).
//   - Determinism: same rows/options ⇒ identical table (stable sort).

package builder

import (
	"fmt"
	"sort"

	"github.com/hicdata/httable/core"
)

// Row is one raw tabular input row with the five required contact fields,
// optional paired end coordinates, and optional trailing columns. Adapters
// are responsible for mapping their column names/positions onto these
// fields before calling Build.
//
// End1/End2 use 0 as "absent": a real end coordinate is strictly greater
// than its start, so 0 can never be a valid end. A row either carries both
// ends or neither; Build rejects half-set ends with ErrBadRow.
type Row struct {
	Chrom1 string
	Pos1   int32
	End1   int32

	Chrom2 string
	Pos2   int32
	End2   int32

	Score float64
	Extra []core.Field
}

// hasEnds reports whether the row carries a full pair of end coordinates.
func (r Row) hasEnds() bool { return r.End1 != 0 && r.End2 != 0 }

// validate checks the structural invariants of a single raw row.
// Value-domain violations reuse core sentinels; end-pairing violations use
// ErrBadRow.
func (r Row) validate() error {
	if r.Chrom1 == "" || r.Chrom2 == "" {
		return core.ErrEmptyChrom
	}
	if r.Pos1 < 0 {
		return fmt.Errorf("pos1=%d: %w", r.Pos1, core.ErrNegativePos)
	}
	if r.Pos2 < 0 {
		return fmt.Errorf("pos2=%d: %w", r.Pos2, core.ErrNegativePos)
	}
	if (r.End1 != 0) != (r.End2 != 0) {
		return fmt.Errorf("unpaired end coordinate (end1=%d, end2=%d): %w", r.End1, r.End2, ErrBadRow)
	}
	if r.End1 != 0 && r.End1 <= r.Pos1 {
		return fmt.Errorf("end1=%d not greater than pos1=%d: %w", r.End1, r.Pos1, ErrBadRow)
	}
	if r.End2 != 0 && r.End2 <= r.Pos2 {
		return fmt.Errorf("end2=%d not greater than pos2=%d: %w", r.End2, r.Pos2, ErrBadRow)
	}

	return nil
}

// Build transforms raw rows plus metadata into a validated, canonically
// ordered core.Table.
//
// Validation runs in a fixed order, failing fast on the first violation:
//
//	Stage 1 (Rows):       per-row value checks (chroms, positions, ends).
//	Stage 2 (Resolution): an explicitly supplied resolution must be > 0.
//	Stage 3 (Enums):      effective Type/Norm (after template merge) must
//	                      belong to their closed enumerations — rejected
//	                      before any sorting or inference work happens.
//	Stage 4 (Identity):   explicitly supplied genome/sample must be
//	                      non-empty.
//
// Canonicalization then stably sorts the rows by (Chrom1, Pos1, Chrom2,
// Pos2); duplicate keys are preserved, never merged. When no resolution is
// available after template merging it is inferred via GuessResolution.
// The final core.New re-validates every model invariant.
//
// Complexity: O(n log n) time for the sort, O(n) space.
func Build(rows []Row, typ core.TableType, norm core.Norm, opts ...Option) (*core.Table, error) {
	o := gatherOptions(opts...)

	// Stage 1: per-row validation.
	for i, r := range rows {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("Build: row %d: %w", i, err)
		}
	}

	// Stage 2: explicit resolution domain.
	if o.resolutionSet && o.resolution <= 0 {
		return nil, fmt.Errorf("Build: resolution=%d: %w", o.resolution, core.ErrBadResolution)
	}

	// Assemble the envelope: explicit values first, template defaults for
	// whatever remains unset.
	meta := core.Metadata{
		Resolution: o.resolution,
		Type:       typ,
		Norm:       norm,
		Genome:     o.genome,
		Sample:     o.sample,
	}
	if o.templateSet {
		meta = meta.Merge(o.template)
	}

	// Stage 3: closed enumerations, before any sorting or inference work.
	if !meta.Type.Valid() {
		return nil, fmt.Errorf("Build: type=%q: %w", string(meta.Type), core.ErrBadTableType)
	}
	if !meta.Norm.Valid() {
		return nil, fmt.Errorf("Build: norm=%q: %w", string(meta.Norm), core.ErrBadNorm)
	}

	// Stage 4: supplied-but-empty identity strings.
	if o.genomeSet && o.genome == "" {
		return nil, fmt.Errorf("Build: genome: %w", core.ErrEmptyMetaString)
	}
	if o.sampleSet && o.sample == "" {
		return nil, fmt.Errorf("Build: sample: %w", core.ErrEmptyMetaString)
	}

	// Canonicalization: stable sort on the composite key. Stability keeps
	// duplicate keys in input order, which matters because duplicates are
	// preserved by contract.
	recs := make([]core.Record, len(rows))
	for i, r := range rows {
		recs[i] = core.Record{
			Chrom1: r.Chrom1,
			Pos1:   r.Pos1,
			Chrom2: r.Chrom2,
			Pos2:   r.Pos2,
			Score:  r.Score,
			Extra:  r.Extra,
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return core.CompareKey(recs[i], recs[j]) < 0
	})

	// Resolution inference when neither option nor template supplied one.
	if meta.Resolution == 0 {
		res, err := GuessResolution(rows)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		meta.Resolution = res
	}

	tbl, err := core.New(meta, recs)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return tbl, nil
}
