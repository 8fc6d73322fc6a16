// SPDX-License-Identifier: MIT

// Package core: the Metadata envelope.
// Metadata is a plain value type; a Table owns exactly one envelope and the
// envelope is immutable after the table is constructed. The Merge method is
// the explicit replacement for attribute-bag "copy_from" inheritance:
// defaults come from a template value, field by field, and explicit fields
// always win.
package core

import "fmt"

// Metadata describes the provenance of a table's scores: bin size, score
// semantics, applied normalization, and optional genome/sample identity.
type Metadata struct {
	// Resolution is the bin size in base pairs; strictly positive.
	Resolution int32

	// Type is the semantic kind of the score (observed, oe, ...).
	Type TableType

	// Norm is the normalization label already applied upstream.
	Norm Norm

	// Genome is the assembly name (e.g. "hg38"); empty means unset.
	Genome string

	// Sample is the sample identifier; empty means unset.
	Sample string
}

// Validate checks the envelope invariants: positive resolution and
// in-enumeration Type/Norm. Genome and Sample are optional and may be
// empty; adapters that require them must say so themselves.
//
// Stage 1 (resolution), Stage 2 (enums). Fail-fast on the first violation.
// Complexity: O(1).
func (m Metadata) Validate() error {
	if m.Resolution <= 0 {
		return fmt.Errorf("resolution=%d: %w", m.Resolution, ErrBadResolution)
	}
	if !m.Type.Valid() {
		return fmt.Errorf("type=%q: %w", string(m.Type), ErrBadTableType)
	}
	if !m.Norm.Valid() {
		return fmt.Errorf("norm=%q: %w", string(m.Norm), ErrBadNorm)
	}

	return nil
}

// Merge fills every unset field of m from the template tpl and returns the
// result. A field is unset when it holds its zero value (0 resolution,
// empty Type/Norm/Genome/Sample). Explicit fields of m always win; m and
// tpl are not mutated. The merged value is NOT validated here — callers
// validate once, after all defaulting is done.
//
// Complexity: O(1).
func (m Metadata) Merge(tpl Metadata) Metadata {
	out := m
	if out.Resolution == 0 {
		out.Resolution = tpl.Resolution
	}
	if out.Type == "" {
		out.Type = tpl.Type
	}
	if out.Norm == "" {
		out.Norm = tpl.Norm
	}
	if out.Genome == "" {
		out.Genome = tpl.Genome
	}
	if out.Sample == "" {
		out.Sample = tpl.Sample
	}

	return out
}
