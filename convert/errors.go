// SPDX-License-Identifier: MIT
// Package convert: sentinel error set.
// Callers branch with errors.Is; parse errors carry the offending token and
// line number via %w wrapping at the point of detection.

package convert

import "errors"

var (
	// ErrUnknownFormat indicates a filename whose suffix maps to no known
	// format; detection never falls through silently.
	ErrUnknownFormat = errors.New("convert: unknown file format")

	// ErrParse indicates a malformed line or token in a text rendering.
	ErrParse = errors.New("convert: parse failure")

	// ErrBadHeader indicates a missing or malformed interval metadata block.
	ErrBadHeader = errors.New("convert: invalid header")

	// ErrSubprocess indicates an external tool invocation failed; the
	// concrete *ExitError carries the command line and exit code.
	ErrSubprocess = errors.New("convert: external tool failed")

	// ErrChromEmpty indicates a per-chromosome dump yielded no records.
	// Bulk loads treat it as a warning, not a failure.
	ErrChromEmpty = errors.New("convert: chromosome has no data")

	// ErrNoChromosomes indicates a bulk load skipped every chromosome.
	ErrNoChromosomes = errors.New("convert: no chromosomes loaded")
)
