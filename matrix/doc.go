// Package matrix converts between the sparse triangular contact-table
// representation and dense symmetric per-chromosome matrices.
//
// ToMatrix restricts a table to one chromosome (explicit or uniquely
// inferred), bins positions by the envelope resolution, and mirrors every
// record into both halves of a Dense matrix — the result is exactly
// symmetric regardless of which side of each pair was larger in the input.
// ToRecords walks the upper triangle back into canonical one-record-per-
// unordered-pair form, skipping missing cells; the round trip reproduces
// the populated cell set exactly.
//
// Both operations are pure functions: no shared state, no locks, safe to
// run per-chromosome conversions concurrently.
//
// Conflict policy: input holding both (p,q) and (q,p) with different
// scores is rejected with ErrConflictingScore rather than resolved by
// iteration order. Identical duplicates (including NaN/NaN) convert fine.
//
// Errors:
//
//	ErrNilTable         - nil *core.Table passed to ToMatrix.
//	ErrNilMatrix        - nil *Dense receiver or argument.
//	ErrBadShape         - requested dense shape is not positive.
//	ErrOutOfRange       - row/column index outside bounds.
//	ErrNonSquare        - a square matrix was required.
//	ErrDimensionMismatch- bin labels do not match the matrix dimension.
//	ErrAmbiguousChrom   - chromosome omitted but not uniquely inferable.
//	ErrNoData           - the requested chromosome has no cis records.
//	ErrConflictingScore - opposite-order duplicate pair with differing scores.
package matrix
