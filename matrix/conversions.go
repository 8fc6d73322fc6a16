// SPDX-License-Identifier: MIT
// Package: httable/matrix
//
// conversions.go — the bidirectional table⇄matrix mapping.
//
// Design contract (strict):
//   - Pure, total functions over their documented input domain; the only
//     failure modes are the documented precondition errors.
//   - Symmetry by construction: every record writes both (i,j) and (j,i),
//     whichever side of the pair was larger in the source.
//   - Round-trip idempotence: ToRecords(ToMatrix(t)) reproduces exactly the
//     non-missing cell set of t for a single-chromosome table.

package matrix

import (
	"fmt"

	"github.com/hicdata/httable/core"
)

// pairKey is a normalized unordered bin pair {min,max}, used to detect
// records that address the same matrix cell. Ints keep the key compact and
// hash-friendly; used in O(n) scans during ingestion.
type pairKey struct {
	lo int
	hi int
}

func newPairKey(i, j int) pairKey {
	if i > j {
		i, j = j, i
	}

	return pairKey{lo: i, hi: j}
}

// ToMatrix converts the single-chromosome restriction of t into a dense
// symmetric matrix plus its bin-position labels.
//
//	Stage 1 (Chromosome): use WithChrom, or infer the unique chromosome
//	        across all records — more than one distinct value is
//	        ErrAmbiguousChrom.
//	Stage 2 (Subset):     restrict to Chrom1 == Chrom2 == chrom; an empty
//	        subset is ErrNoData.
//	Stage 3 (Binning):    minPos = 0 under WithFullMatrix, else the minimum
//	        observed position; bin(p) = (p−minPos)/resolution;
//	        N = (maxPos−minPos)/resolution + 1.
//	Stage 4 (Fill):       initialize every cell to the missing sentinel,
//	        then mirror each record into both halves. Opposite-order
//	        duplicates with differing scores are rejected with
//	        ErrConflictingScore (NaN equals NaN for this check).
//
// binPositions[i] = minPos + i*resolution labels row/column i.
//
// Complexity: O(n + N²) time, O(N²) space.
func ToMatrix(t *core.Table, opts ...Option) (*Dense, []int32, error) {
	if t == nil {
		return nil, nil, fmt.Errorf("ToMatrix: %w", ErrNilTable)
	}
	o := gatherOptions(opts...)

	// Stage 1: chromosome selection.
	chrom := o.chrom
	if chrom == "" {
		chroms := t.Chromosomes()
		switch len(chroms) {
		case 0:
			return nil, nil, fmt.Errorf("ToMatrix: empty table: %w", ErrNoData)
		case 1:
			chrom = chroms[0]
		default:
			return nil, nil, fmt.Errorf("ToMatrix: %d chromosomes present: %w", len(chroms), ErrAmbiguousChrom)
		}
	}

	// Stage 2: cis subset.
	sub := t.Cis(chrom)
	if sub.Len() == 0 {
		return nil, nil, fmt.Errorf("ToMatrix: chromosome %q: %w", chrom, ErrNoData)
	}

	res := sub.Meta().Resolution
	if res <= 0 {
		// Unreachable for tables built through core.New; guarded anyway.
		return nil, nil, fmt.Errorf("ToMatrix: resolution=%d: %w", res, core.ErrBadResolution)
	}

	// Stage 3: position span and dimension.
	minPos, maxPos := sub.Record(0).Pos1, sub.Record(0).Pos1
	for i := 0; i < sub.Len(); i++ {
		r := sub.Record(i)
		for _, p := range [2]int32{r.Pos1, r.Pos2} {
			if p < minPos {
				minPos = p
			}
			if p > maxPos {
				maxPos = p
			}
		}
	}
	if o.full {
		minPos = 0
	}
	n := int((maxPos-minPos)/res) + 1

	m, err := NewDense(n, n, o.missing)
	if err != nil {
		return nil, nil, fmt.Errorf("ToMatrix: %w", err)
	}

	// Stage 4: mirrored fill with conflict detection.
	seen := make(map[pairKey]float64, sub.Len())
	for idx := 0; idx < sub.Len(); idx++ {
		r := sub.Record(idx)
		i := int((r.Pos1 - minPos) / res)
		j := int((r.Pos2 - minPos) / res)

		key := newPairKey(i, j)
		if prev, dup := seen[key]; dup && !sameScore(prev, r.Score) {
			return nil, nil, fmt.Errorf("ToMatrix: pair (%d,%d) scored %g and %g: %w",
				key.lo, key.hi, prev, r.Score, ErrConflictingScore)
		}
		seen[key] = r.Score

		if err = m.SetSym(i, j, r.Score); err != nil {
			return nil, nil, fmt.Errorf("ToMatrix: %w", err)
		}
	}

	bins := make([]int32, n)
	for i := range bins {
		bins[i] = minPos + int32(i)*res
	}

	return m, bins, nil
}

// ToRecords halves a dense symmetric matrix back into canonical sparse
// form: one record per unordered pair (i ≤ j, diagonal included) whose cell
// is neither the missing sentinel nor NaN. Records are emitted in
// row-major (i, then j) order, which for a single chromosome already
// satisfies the table ordering invariant.
//
// Preconditions: m square, len(bins) == dimension, chrom non-empty,
// res > 0.
//
// Complexity: O(N²) time, O(k) space for k populated cells.
func ToRecords(m *Dense, bins []int32, chrom string, res int32, opts ...Option) ([]core.Record, error) {
	if m == nil {
		return nil, fmt.Errorf("ToRecords: %w", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("ToRecords: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	if len(bins) != m.Rows() {
		return nil, fmt.Errorf("ToRecords: %d bins for %d rows: %w", len(bins), m.Rows(), ErrDimensionMismatch)
	}
	if chrom == "" {
		return nil, fmt.Errorf("ToRecords: %w", core.ErrEmptyChrom)
	}
	if res <= 0 {
		return nil, fmt.Errorf("ToRecords: resolution=%d: %w", res, core.ErrBadResolution)
	}
	o := gatherOptions(opts...)

	var recs []core.Record
	for i := 0; i < m.Rows(); i++ {
		for j := i; j < m.Cols(); j++ {
			v := m.data[i*m.c+j]
			if isMissing(v, o.missing) {
				continue
			}
			recs = append(recs, core.Record{
				Chrom1: chrom,
				Pos1:   bins[i],
				Chrom2: chrom,
				Pos2:   bins[j],
				Score:  v,
			})
		}
	}

	return recs, nil
}

// ToTable is the record-side inverse packaged as a table: ToRecords under
// meta.Resolution, then core.New with the supplied envelope.
func ToTable(m *Dense, bins []int32, chrom string, meta core.Metadata, opts ...Option) (*core.Table, error) {
	recs, err := ToRecords(m, bins, chrom, meta.Resolution, opts...)
	if err != nil {
		return nil, fmt.Errorf("ToTable: %w", err)
	}
	tbl, err := core.New(meta, recs)
	if err != nil {
		return nil, fmt.Errorf("ToTable: %w", err)
	}

	return tbl, nil
}
