// SPDX-License-Identifier: MIT

// Package convert: filename-based format detection.
// Detection is pure string matching over a closed suffix set — a small
// total function with an explicit unknown case, never a fall-through.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the closed enumeration of file formats the toolkit routes.
type Format int

const (
	// FormatUnknown is the zero value; Detect never returns it without an error.
	FormatUnknown Format = iota

	// FormatShort is the dumping tool's plain pre-ingest listing (.short).
	FormatShort

	// FormatInterval is the tabular genomic-interval rendering (.ht).
	FormatInterval

	// FormatHic is the Java dumping tool's binary container (.hic).
	FormatHic

	// FormatCool is the single-resolution binary sparse container (.cool).
	FormatCool

	// FormatMcool is the multi-resolution binary sparse container (.mcool).
	FormatMcool
)

// String returns the canonical lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatShort:
		return "short"
	case FormatInterval:
		return "interval"
	case FormatHic:
		return "hic"
	case FormatCool:
		return "cool"
	case FormatMcool:
		return "mcool"
	}

	return "unknown"
}

// Text reports whether the format is one of the text interchange
// renderings the core reads and writes directly (as opposed to the binary
// containers that require an external tool).
func (f Format) Text() bool { return f == FormatShort || f == FormatInterval }

// Detect maps a filename suffix onto the closed Format enumeration.
// Matching is case-insensitive and tolerates a trailing ".gz" on the text
// formats. Unrecognized suffixes return ErrUnknownFormat carrying the
// extension.
//
// Complexity: O(len(path)).
func Detect(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".gz")

	switch filepath.Ext(name) {
	case ".short":
		return FormatShort, nil
	case ".ht":
		return FormatInterval, nil
	case ".hic":
		return FormatHic, nil
	case ".cool":
		return FormatCool, nil
	case ".mcool":
		return FormatMcool, nil
	}

	return FormatUnknown, fmt.Errorf("Detect(%q): extension %q: %w", path, filepath.Ext(name), ErrUnknownFormat)
}
