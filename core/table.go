// SPDX-License-Identifier: MIT

// Package core: the Table container and its non-mutating views.
// A Table pairs one Metadata envelope with a canonically-ordered record
// sequence. Both are private; every accessor either returns a value copy or
// a fresh Table, so a constructed table can be shared across goroutines
// without locks.
package core

import (
	"fmt"
	"sort"
)

// Table is an immutable, canonically-ordered sequence of contact records
// plus its metadata envelope. The zero Table is not valid; construct
// through New (or the builder package, which sorts first).
type Table struct {
	meta    Metadata
	records []Record
}

// New constructs a Table from an envelope and an already-ordered record
// sequence, re-validating every invariant of the model:
//
//	Stage 1 (Envelope):  meta.Validate — resolution > 0, closed enums.
//	Stage 2 (Records):   non-empty chroms, non-negative positions.
//	Stage 3 (Ordering):  (Chrom1, Pos1, Chrom2, Pos2) ascending; duplicate
//	                     keys are permitted and never merged.
//
// The input slice is copied; callers may reuse it afterwards. On any
// violation New returns a nil table and a sentinel-wrapped error — no
// partial table is ever produced.
//
// Complexity: O(n) time, O(n) space for the defensive copy.
func New(meta Metadata, records []Record) (*Table, error) {
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("core.New: %w", err)
	}
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("core.New: record %d: %w", i, err)
		}
		if i > 0 && CompareKey(records[i-1], r) > 0 {
			return nil, fmt.Errorf("core.New: record %d (%s:%d-%s:%d): %w",
				i, r.Chrom1, r.Pos1, r.Chrom2, r.Pos2, ErrUnsorted)
		}
	}

	recs := make([]Record, len(records))
	copy(recs, records)

	return &Table{meta: meta, records: recs}, nil
}

// Meta returns the metadata envelope (a value copy).
// Complexity: O(1).
func (t *Table) Meta() Metadata { return t.meta }

// Len returns the number of records.
// Complexity: O(1).
func (t *Table) Len() int { return len(t.records) }

// Record returns the i-th record in canonical order. Index bounds follow
// slice semantics (out-of-range panics are programmer errors).
// Complexity: O(1).
func (t *Table) Record(i int) Record { return t.records[i] }

// Records returns a defensive copy of the record sequence. Extra column
// slices are shared and must be treated as read-only.
// Complexity: O(n).
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)

	return out
}

// Chromosomes returns the sorted, de-duplicated union of all Chrom1/Chrom2
// values in the table.
// Complexity: O(n log n).
func (t *Table) Chromosomes() []string {
	seen := make(map[string]struct{}, 2)
	for _, r := range t.records {
		seen[r.Chrom1] = struct{}{}
		seen[r.Chrom2] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Cis returns a fresh Table holding only the intra-chromosome records of
// chrom (Chrom1 == Chrom2 == chrom), with the same envelope. The subset of
// an ordered table is ordered, so no re-sort is needed. The result may be
// empty; emptiness is a conversion-time concern, not a table invariant.
//
// Complexity: O(n) time and space. The receiver is not mutated.
func (t *Table) Cis(chrom string) *Table {
	var recs []Record
	for _, r := range t.records {
		if r.Chrom1 == chrom && r.Chrom2 == chrom {
			recs = append(recs, r)
		}
	}

	return &Table{meta: t.meta, records: recs}
}

// WithMetadata returns a fresh Table carrying the same records under a new
// envelope. The envelope is re-validated; records are shared structurally
// (both tables are immutable, so sharing is safe).
//
// Complexity: O(1) beyond validation.
func (t *Table) WithMetadata(meta Metadata) (*Table, error) {
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("core.WithMetadata: %w", err)
	}

	return &Table{meta: meta, records: t.records}, nil
}

// Clone returns a deep copy of the table (records and their Extra slices).
// Useful when handing data across an ownership boundary that must not
// observe structural sharing.
//
// Complexity: O(n + Σ len(Extra)).
func (t *Table) Clone() *Table {
	recs := make([]Record, len(t.records))
	copy(recs, t.records)
	for i := range recs {
		if recs[i].Extra != nil {
			ex := make([]Field, len(recs[i].Extra))
			copy(ex, recs[i].Extra)
			recs[i].Extra = ex
		}
	}

	return &Table{meta: t.meta, records: recs}
}
