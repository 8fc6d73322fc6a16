// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All conversions return these sentinels and tests check
// them via errors.Is. Value-domain violations (resolution, chromosome
// names) reuse the core sentinels so callers keep a single branch per
// semantic class.

package matrix

import "errors"

var (
	// ErrNilTable indicates that a nil *core.Table was passed into ToMatrix.
	ErrNilTable = errors.New("matrix: table is nil")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested dense shape is invalid
	// (rows <= 0 or cols <= 0). Creation validates before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (ToRecords operates on symmetric per-chromosome matrices only).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that the bin-position labels do not
	// match the matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAmbiguousChrom indicates the chromosome was omitted but the table
	// holds more than one distinct chromosome, so none can be inferred.
	ErrAmbiguousChrom = errors.New("matrix: chromosome is ambiguous")

	// ErrNoData indicates the requested chromosome has no intra-chromosome
	// records (or the table is empty when inferring).
	ErrNoData = errors.New("matrix: no data for chromosome")

	// ErrConflictingScore indicates the table holds both orderings of the
	// same unordered pair with different scores; such input is rejected
	// instead of letting iteration order pick a winner.
	ErrConflictingScore = errors.New("matrix: conflicting scores for mirrored pair")
)
