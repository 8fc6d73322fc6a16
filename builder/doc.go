// Package builder turns arbitrary raw tabular rows into validated,
// canonically-ordered contact tables.
//
// The single public orchestrator is Build: it validates rows and metadata
// in a documented order (rows, resolution, enumerations, genome/sample),
// stably sorts by the canonical (Chrom1, Pos1, Chrom2, Pos2) key, infers
// the resolution when none was supplied, and hands off to core.New. Any
// violation aborts the build entirely; no partial table is returned.
// Duplicate keys survive the sort untouched — deduplication, when a format
// requires it, is the adapter's concern.
//
// Column mapping is NOT this package's job: adapters resolve names or
// positions into Row fields before calling Build.
//
// Error policy (strict):
//   - Only sentinel errors are exposed; callers branch with errors.Is.
//   - Context (row index, offending value) is attached via %w wrapping.
//   - Build never panics on user input.
package builder
