// Package httable is an in-memory toolkit for tabular Hi-C contact data —
// from the canonical record/metadata model to dense-matrix conversion and
// format interchange.
//
// What is httable?
//
//	A small, deterministic library for sparse pairwise genomic contact
//	records ("ht tables") that brings together:
//		• Core primitives: immutable contact tables with a strongly-typed
//		  metadata envelope (resolution, type, norm, genome, sample)
//		• Builder: validation, canonical ordering and resolution inference
//		  over raw tabular rows
//		• Matrix: sparse triangular records ⇄ dense symmetric per-chromosome
//		  matrices, with exact round-trip guarantees
//		• Convert: short/interval text codecs, suffix-based format
//		  detection, and ports to external .hic / .cool tooling
//
// Everything is organized under four subpackages:
//
//	builder/ — raw rows → validated, canonically-ordered tables
//	convert/ — format codecs, detection, external-tool adapters
//	core/    — fundamental Record, Metadata and Table types
//	matrix/  — dense symmetric matrix representation + converters
//
// All operations are pure, synchronous transformations over immutable
// values: independent conversions may run concurrently with no
// coordination. Normalization itself is never computed here; NONE/KR/VC/
// VC_SQRT/SCALE are labels describing what upstream tools already applied.
//
//	go get github.com/hicdata/httable
package httable
