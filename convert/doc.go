// Package convert is the format boundary around the canonical contact
// table: text codecs, filename-based format detection, and ports to the
// external binary tools that produce or consume .hic and .cool containers.
//
// Two text renderings form the interchange surface:
//
//	short    — one record per line, "0 chrom1 pos1 0 0 chrom2 pos2 1 score"
//	           (strand/frag columns are constant placeholders); rows with a
//	           missing score are omitted. This is what the dumping tool's
//	           "pre" ingests.
//	interval — positions expanded to [start, start+resolution) intervals
//	           with a "# key: value" metadata comment block under a
//	           "## httable v1" tag; lossless (NaN survives).
//
// External executables (the Java dumping tool, the Python cooler CLI) are
// black boxes behind the Runner port: a synchronous run with context, where
// any non-zero exit is a SubprocessError-class failure, never retried.
// Bulk multi-chromosome loads isolate failures per chromosome: a
// chromosome with no data is logged as a warning and skipped while the
// rest proceed.
//
// Errors:
//
//	ErrUnknownFormat - filename suffix maps to no known format.
//	ErrParse         - adapter-specific parse failure (offending token kept).
//	ErrBadHeader     - interval metadata block is malformed.
//	ErrSubprocess    - external tool returned non-zero (see *ExitError).
//	ErrChromEmpty    - a dump produced no records for a chromosome.
//	ErrNoChromosomes - a bulk load ended with nothing loaded at all.
package convert
