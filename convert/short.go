// SPDX-License-Identifier: MIT

// Package convert: the short interchange codec.
// One record per line with fixed column ordering
//
//	strand1 chrom1 pos1 frag1 strand2 chrom2 pos2 frag2 score
//
// where strand1/frag1/strand2 are the constant placeholder 0 and frag2 is
// the constant placeholder 1 (the dumping tool only requires frag1 != frag2
// when fragment maps are absent). Records whose score is missing (NaN) are
// omitted — the consuming tool cannot ingest them.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hicdata/httable/builder"
	"github.com/hicdata/httable/core"
)

// shortColumns is the fixed field count of a short line.
const shortColumns = 9

// WriteShort renders t as a short listing. NaN-score records are skipped.
// Complexity: O(n).
func WriteShort(w io.Writer, t *core.Table) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < t.Len(); i++ {
		r := t.Record(i)
		if math.IsNaN(r.Score) {
			continue
		}
		if _, err := fmt.Fprintf(bw, "0 %s %d 0 0 %s %d 1 %s\n",
			r.Chrom1, r.Pos1, r.Chrom2, r.Pos2,
			strconv.FormatFloat(r.Score, 'g', -1, 64)); err != nil {
			return fmt.Errorf("WriteShort: %w", err)
		}
	}

	return bw.Flush()
}

// ReadShort parses a short listing into raw builder rows. Strand/frag
// placeholder columns are not interpreted (tools disagree on them); the
// five contact fields are type-checked token by token, and any malformed
// token fails the whole read with ErrParse carrying line and value.
//
// Complexity: O(lines).
func ReadShort(r io.Reader) ([]builder.Row, error) {
	var rows []builder.Row
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != shortColumns {
			return nil, fmt.Errorf("ReadShort: line %d: %d columns, want %d: %w",
				line, len(fields), shortColumns, ErrParse)
		}

		pos1, err := parsePos(fields[2])
		if err != nil {
			return nil, fmt.Errorf("ReadShort: line %d: pos1 %q: %w", line, fields[2], ErrParse)
		}
		pos2, err := parsePos(fields[6])
		if err != nil {
			return nil, fmt.Errorf("ReadShort: line %d: pos2 %q: %w", line, fields[6], ErrParse)
		}
		score, err := strconv.ParseFloat(fields[8], 64)
		if err != nil {
			return nil, fmt.Errorf("ReadShort: line %d: score %q: %w", line, fields[8], ErrParse)
		}

		rows = append(rows, builder.Row{
			Chrom1: fields[1],
			Pos1:   pos1,
			Chrom2: fields[5],
			Pos2:   pos2,
			Score:  score,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadShort: %w", err)
	}

	return rows, nil
}

// parsePos parses a 32-bit genomic position token.
func parsePos(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}
