// SPDX-License-Identifier: MIT

// Package builder: functional configuration for Build.
// This file defines Option / options, the WithX constructors, and the
// internal gatherOptions helper. Defaults are the zero values: no explicit
// resolution (infer), no genome, no sample, no template.
//
// Design goals:
//   - Deterministic behavior: no global state; last-writer-wins per option.
//   - Explicit "set" tracking: WithGenome("") is a supplied-but-empty value
//     and is rejected during Build, which is different from never calling
//     WithGenome at all.
//   - Validation lives in Build (ordered, fail-fast), not in constructors,
//     so every violation surfaces as a sentinel error rather than a panic.
package builder

import "github.com/hicdata/httable/core"

// Option mutates the internal build configuration. Safe to apply
// repeatedly; the last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Unexported to prevent external mutation; Build accepts ...Option and
// resolves them via gatherOptions.
type options struct {
	resolution    int32
	resolutionSet bool

	genome    string
	genomeSet bool

	sample    string
	sampleSet bool

	template    core.Metadata
	templateSet bool
}

// WithResolution supplies the bin size explicitly, bypassing inference.
// Non-positive values are rejected by Build with core.ErrBadResolution.
func WithResolution(res int32) Option {
	return func(o *options) {
		o.resolution = res
		o.resolutionSet = true
	}
}

// WithGenome supplies the genome assembly name. The empty string is a
// supplied-but-invalid value and is rejected by Build.
func WithGenome(genome string) Option {
	return func(o *options) {
		o.genome = genome
		o.genomeSet = true
	}
}

// WithSample supplies the sample identifier. The empty string is a
// supplied-but-invalid value and is rejected by Build.
func WithSample(sample string) Option {
	return func(o *options) {
		o.sample = sample
		o.sampleSet = true
	}
}

// WithTemplate supplies a metadata template merged field-by-field into the
// build's envelope: every field left unset by the other options (and the
// typ/norm arguments) inherits the template's value, and explicit values
// always win. This is the explicit replacement for copying attributes off
// an existing table — pass `existing.Meta()` as the template.
func WithTemplate(tpl core.Metadata) Option {
	return func(o *options) {
		o.template = tpl
		o.templateSet = true
	}
}

// gatherOptions applies setters over the zero-value defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	var o options
	for _, set := range opts {
		set(&o)
	}

	return o
}
