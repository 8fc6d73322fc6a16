// SPDX-License-Identifier: MIT

// Package core: domain types for contact tables.
// This file declares Record, Field, the closed TableType/Norm enumerations,
// the canonical ordering comparator, and the package sentinel errors.
// The Metadata envelope and the Table container live in metadata.go and
// table.go per the package conventions.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for contact-table construction and validation.
// Callers branch with errors.Is; context (offending value, record index)
// is attached with %w at the point of detection.
var (
	// ErrBadResolution indicates a zero or negative bin size.
	ErrBadResolution = errors.New("core: resolution must be a positive integer")

	// ErrBadTableType indicates a table type outside {observed, oe, expected, pearson, cofrag}.
	ErrBadTableType = errors.New("core: unknown table type")

	// ErrBadNorm indicates a normalization label outside {NONE, KR, VC, VC_SQRT, SCALE}.
	ErrBadNorm = errors.New("core: unknown normalization label")

	// ErrEmptyChrom indicates a record with an empty chromosome name.
	ErrEmptyChrom = errors.New("core: chromosome name is empty")

	// ErrNegativePos indicates a record with a negative genomic position.
	ErrNegativePos = errors.New("core: position is negative")

	// ErrEmptyMetaString indicates genome/sample was supplied but empty.
	ErrEmptyMetaString = errors.New("core: genome/sample must be non-empty when set")

	// ErrUnsorted indicates the record sequence violates the canonical
	// (Chrom1, Pos1, Chrom2, Pos2) ascending ordering.
	ErrUnsorted = errors.New("core: records violate canonical ordering")
)

// TableType is the semantic kind of the score stored in a table.
// The enumeration is closed; values outside it are a construction-time
// error, never a runtime one.
type TableType string

// Closed TableType enumeration.
const (
	// Observed marks raw contact counts.
	Observed TableType = "observed"
	// OE marks observed/expected ratios.
	OE TableType = "oe"
	// Expected marks the expected-contact baseline.
	Expected TableType = "expected"
	// Pearson marks correlation values over the O/E matrix.
	Pearson TableType = "pearson"
	// Cofrag marks co-fragmentation signal.
	Cofrag TableType = "cofrag"
)

// Valid reports whether t belongs to the closed enumeration.
// Complexity: O(1).
func (t TableType) Valid() bool {
	switch t {
	case Observed, OE, Expected, Pearson, Cofrag:
		return true
	}

	return false
}

// ParseTableType maps a raw string (case-insensitive) onto the closed
// enumeration, or returns ErrBadTableType carrying the offending value.
func ParseTableType(s string) (TableType, error) {
	t := TableType(strings.ToLower(s))
	if !t.Valid() {
		return "", fmt.Errorf("parse table type %q: %w", s, ErrBadTableType)
	}

	return t, nil
}

// Norm is the bias-correction label already applied to scores upstream.
// httable never computes normalization; the label only travels with the data.
type Norm string

// Closed Norm enumeration. Labels are upper-case on the wire by convention.
const (
	NormNone   Norm = "NONE"
	NormKR     Norm = "KR"
	NormVC     Norm = "VC"
	NormVCSqrt Norm = "VC_SQRT"
	NormScale  Norm = "SCALE"
)

// Valid reports whether n belongs to the closed enumeration.
// Complexity: O(1).
func (n Norm) Valid() bool {
	switch n {
	case NormNone, NormKR, NormVC, NormVCSqrt, NormScale:
		return true
	}

	return false
}

// ParseNorm maps a raw string (case-insensitive) onto the closed
// enumeration, or returns ErrBadNorm carrying the offending value.
func ParseNorm(s string) (Norm, error) {
	n := Norm(strings.ToUpper(s))
	if !n.Valid() {
		return "", fmt.Errorf("parse norm %q: %w", s, ErrBadNorm)
	}

	return n, nil
}

// Field is one optional trailing column of a record. Extra columns are kept
// as an ordered slice, not a map, so adapters can render them back in the
// order they were read.
type Field struct {
	// Name is the column name (or a positional label assigned by the adapter).
	Name string

	// Value is the raw column value as parsed by the adapter.
	Value any
}

// Record is one observed or derived signal value between two genomic bin
// positions. Positions are bin start coordinates; when the table represents
// a binned genome they are expected (not enforced) to be multiples of the
// envelope resolution.
type Record struct {
	// Chrom1 is the first chromosome name; never empty in a valid table.
	Chrom1 string

	// Pos1 is the first bin start; never negative in a valid table.
	Pos1 int32

	// Chrom2 is the second chromosome name; never empty in a valid table.
	Chrom2 string

	// Pos2 is the second bin start; never negative in a valid table.
	Pos2 int32

	// Score is the signal value. NaN represents absent signal.
	Score float64

	// Extra holds optional trailing columns, order-preserving. May be nil.
	Extra []Field
}

// Cis reports whether the record is an intra-chromosome contact.
// Complexity: O(1).
func (r Record) Cis() bool { return r.Chrom1 == r.Chrom2 }

// CompareKey orders two records by the canonical composite key
// (Chrom1, Pos1, Chrom2, Pos2): chromosomes lexicographically, positions
// numerically. It returns a negative value when a sorts before b, zero when
// the keys are equal, and a positive value otherwise. Scores and extra
// columns never participate in ordering.
//
// Complexity: O(len(chrom)) per comparison, O(1) space.
func CompareKey(a, b Record) int {
	if c := strings.Compare(a.Chrom1, b.Chrom1); c != 0 {
		return c
	}
	if a.Pos1 != b.Pos1 {
		if a.Pos1 < b.Pos1 {
			return -1
		}

		return 1
	}
	if c := strings.Compare(a.Chrom2, b.Chrom2); c != 0 {
		return c
	}
	switch {
	case a.Pos2 < b.Pos2:
		return -1
	case a.Pos2 > b.Pos2:
		return 1
	}

	return 0
}

// validateRecord checks the per-record invariants shared by New and the
// builder: non-empty chromosome names and non-negative positions.
func validateRecord(r Record) error {
	if r.Chrom1 == "" || r.Chrom2 == "" {
		return ErrEmptyChrom
	}
	if r.Pos1 < 0 {
		return fmt.Errorf("pos1=%d: %w", r.Pos1, ErrNegativePos)
	}
	if r.Pos2 < 0 {
		return fmt.Errorf("pos2=%d: %w", r.Pos2, ErrNegativePos)
	}

	return nil
}
