// SPDX-License-Identifier: MIT

// Package convert: the interval interchange codec.
// The lossless canonical text rendering: positions expand into
// [start, start+resolution) intervals, preceded by a metadata comment block
//
//	## httable v1
//	# created: <RFC3339>
//	# resolution: <int>
//	# type: <observed|oe|expected|pearson|cofrag>
//	# norm: <NONE|KR|VC|VC_SQRT|SCALE>
//	# genome: <name>        (omitted when unset)
//	# sample: <name>        (omitted when unset)
//
// Data lines are tab-separated; extra columns follow the score in their
// original order. NaN scores are written as "NaN" and survive the round
// trip. Readers tolerate unknown "# key: value" entries so the block can
// grow without breaking older parsers.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hicdata/httable/builder"
	"github.com/hicdata/httable/core"
)

// IntervalVersion tags the interval rendering this package writes.
const IntervalVersion = "httable v1"

// intervalMinColumns is the required field count before extras.
const intervalMinColumns = 7

// WriteInterval renders t as an interval table with its metadata block.
// The creation timestamp is a parameter so output stays reproducible in
// tests; pass time.Now() in production code.
//
// Complexity: O(n + Σ len(Extra)).
func WriteInterval(w io.Writer, t *core.Table, created time.Time) error {
	bw := bufio.NewWriter(w)
	meta := t.Meta()

	fmt.Fprintf(bw, "## %s\n", IntervalVersion)
	fmt.Fprintf(bw, "# created: %s\n", created.UTC().Format(time.RFC3339))
	fmt.Fprintf(bw, "# resolution: %d\n", meta.Resolution)
	fmt.Fprintf(bw, "# type: %s\n", meta.Type)
	fmt.Fprintf(bw, "# norm: %s\n", meta.Norm)
	if meta.Genome != "" {
		fmt.Fprintf(bw, "# genome: %s\n", meta.Genome)
	}
	if meta.Sample != "" {
		fmt.Fprintf(bw, "# sample: %s\n", meta.Sample)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteInterval: %w", err)
	}

	if err := writeIntervalBody(w, t); err != nil {
		return fmt.Errorf("WriteInterval: %w", err)
	}

	return nil
}

// ReadInterval parses an interval table back into raw rows plus the
// metadata recovered from the comment block. End coordinates are kept on
// the rows, so resolution inference works even when the block lacks an
// explicit resolution. Extra columns come back as string-valued fields
// named by 1-based column index.
//
// The returned metadata is NOT validated here — feed it to builder.Build
// as a template and let the ordered validation report problems.
//
// Complexity: O(lines).
func ReadInterval(r io.Reader) ([]builder.Row, core.Metadata, error) {
	var (
		rows []builder.Row
		meta core.Metadata
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	sawVersion := false
	for sc.Scan() {
		line++
		text := sc.Text()

		switch {
		case strings.HasPrefix(text, "##"):
			tag := strings.TrimSpace(strings.TrimPrefix(text, "##"))
			if !strings.HasPrefix(tag, "httable") {
				return nil, meta, fmt.Errorf("ReadInterval: line %d: version tag %q: %w", line, tag, ErrBadHeader)
			}
			sawVersion = true

			continue
		case strings.HasPrefix(text, "#"):
			if err := parseHeaderEntry(strings.TrimPrefix(text, "#"), &meta); err != nil {
				return nil, meta, fmt.Errorf("ReadInterval: line %d: %w", line, err)
			}

			continue
		case strings.TrimSpace(text) == "":
			continue
		}

		if !sawVersion {
			return nil, meta, fmt.Errorf("ReadInterval: line %d: missing %q tag: %w", line, IntervalVersion, ErrBadHeader)
		}

		row, err := parseIntervalLine(text, line)
		if err != nil {
			return nil, meta, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, meta, fmt.Errorf("ReadInterval: %w", err)
	}
	if !sawVersion {
		return nil, meta, fmt.Errorf("ReadInterval: empty input: %w", ErrBadHeader)
	}

	return rows, meta, nil
}

// parseHeaderEntry folds one "# key: value" line into meta. Unknown keys
// (created included) are ignored by design.
func parseHeaderEntry(entry string, meta *core.Metadata) error {
	key, value, found := strings.Cut(entry, ":")
	if !found {
		return nil // free-form comment, not a metadata entry
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case "resolution":
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return fmt.Errorf("resolution %q: %w", value, ErrBadHeader)
		}
		meta.Resolution = int32(v)
	case "type":
		t, err := core.ParseTableType(value)
		if err != nil {
			return fmt.Errorf("type %q: %w", value, ErrBadHeader)
		}
		meta.Type = t
	case "norm":
		n, err := core.ParseNorm(value)
		if err != nil {
			return fmt.Errorf("norm %q: %w", value, ErrBadHeader)
		}
		meta.Norm = n
	case "genome":
		meta.Genome = value
	case "sample":
		meta.Sample = value
	}

	return nil
}

// parseIntervalLine type-checks one tab-separated data line.
func parseIntervalLine(text string, line int) (builder.Row, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < intervalMinColumns {
		return builder.Row{}, fmt.Errorf("ReadInterval: line %d: %d columns, want at least %d: %w",
			line, len(fields), intervalMinColumns, ErrParse)
	}

	var (
		row builder.Row
		err error
	)
	row.Chrom1 = fields[0]
	if row.Pos1, err = parsePos(fields[1]); err != nil {
		return builder.Row{}, fmt.Errorf("ReadInterval: line %d: start1 %q: %w", line, fields[1], ErrParse)
	}
	if row.End1, err = parsePos(fields[2]); err != nil {
		return builder.Row{}, fmt.Errorf("ReadInterval: line %d: end1 %q: %w", line, fields[2], ErrParse)
	}
	row.Chrom2 = fields[3]
	if row.Pos2, err = parsePos(fields[4]); err != nil {
		return builder.Row{}, fmt.Errorf("ReadInterval: line %d: start2 %q: %w", line, fields[4], ErrParse)
	}
	if row.End2, err = parsePos(fields[5]); err != nil {
		return builder.Row{}, fmt.Errorf("ReadInterval: line %d: end2 %q: %w", line, fields[5], ErrParse)
	}
	if row.Score, err = strconv.ParseFloat(fields[6], 64); err != nil {
		return builder.Row{}, fmt.Errorf("ReadInterval: line %d: score %q: %w", line, fields[6], ErrParse)
	}
	for i, extra := range fields[intervalMinColumns:] {
		row.Extra = append(row.Extra, core.Field{
			Name:  "col" + strconv.Itoa(intervalMinColumns+i+1),
			Value: extra,
		})
	}

	return row, nil
}
