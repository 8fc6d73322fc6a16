// Package core defines the canonical contact-table model: Record, the
// strongly-typed Metadata envelope, and the immutable Table that carries
// both.
//
// A Table is created once (normally through the builder package), satisfies
// the canonical ordering invariant over (Chrom1, Pos1, Chrom2, Pos2), and is
// never mutated afterwards: every derived view (Cis, WithMetadata, Clone)
// returns a fresh value. Because tables are immutable, independent
// downstream conversions may share one table across goroutines without
// locks.
//
// Errors:
//
//	ErrBadResolution   - resolution is zero or negative.
//	ErrBadTableType    - table type outside the closed enumeration.
//	ErrBadNorm         - normalization label outside the closed enumeration.
//	ErrEmptyChrom      - a record carries an empty chromosome name.
//	ErrNegativePos     - a record carries a negative position.
//	ErrEmptyMetaString - genome/sample supplied as an empty string.
//	ErrUnsorted        - records violate the canonical ordering.
package core
