// SPDX-License-Identifier: MIT
// Package: httable/convert
//
// hic.go — port to the Java dumping tool (.hic containers).
//
// The tool is a black box: export goes through a temporary short listing
// handed to its "pre" command, import goes through its "dump" command into
// a temporary 3-column text file. Temp files are uniquely named so
// concurrent per-chromosome loads never collide, and removed on return.

package convert

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/hicdata/httable/builder"
	"github.com/hicdata/httable/core"
)

// HicTool drives the Java dumping tool through a Runner.
type HicTool struct {
	// Runner executes the tool; inject a fake in tests.
	Runner Runner

	// Java is the JVM binary; empty means "java" from PATH.
	Java string

	// Jar is the path to the dumping tool's jar. Required.
	Jar string

	// TempDir hosts interchange files; empty means os.TempDir().
	TempDir string
}

func (h HicTool) java() string {
	if h.Java != "" {
		return h.Java
	}

	return "java"
}

// tempFile returns a unique interchange path; uniqueness makes concurrent
// per-chromosome operations safe without coordination.
func (h HicTool) tempFile(suffix string) string {
	dir := h.TempDir
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "httable-"+uuid.NewString()+suffix)
}

// Export packages t into a multi-resolution .hic container at out.
//
//	Stage 1: render a temporary short listing (NaN rows dropped).
//	Stage 2: candidate resolutions = allow-listed values ≥ the table's own
//	         resolution (the table's own bin size when the ladder has no
//	         such rung).
//	Stage 3: run "pre -r <candidates> -n <short> <out> <genome>"; any
//	         non-zero exit is fatal and not retried.
//
// The envelope must carry a genome — the container format requires one.
func (h HicTool) Export(ctx context.Context, t *core.Table, out string) error {
	meta := t.Meta()
	if meta.Genome == "" {
		return fmt.Errorf("HicTool.Export: genome required for .hic: %w", core.ErrEmptyMetaString)
	}

	shortPath := h.tempFile(".short")
	f, err := os.Create(shortPath)
	if err != nil {
		return fmt.Errorf("HicTool.Export: %w", err)
	}
	defer os.Remove(shortPath)
	if err = WriteShort(f, t); err != nil {
		f.Close()

		return fmt.Errorf("HicTool.Export: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("HicTool.Export: %w", err)
	}

	cands := Candidates(meta.Resolution)
	if len(cands) == 0 {
		cands = []int32{meta.Resolution}
	}
	parts := make([]string, len(cands))
	for i, r := range cands {
		parts[i] = strconv.FormatInt(int64(r), 10)
	}

	err = h.Runner.Run(ctx, h.java(),
		"-jar", h.Jar, "pre",
		"-r", strings.Join(parts, ","),
		"-n", // normalization is a label here, never computed during packaging
		shortPath, out, meta.Genome)
	if err != nil {
		return fmt.Errorf("HicTool.Export: %w", err)
	}

	return nil
}

// Load extracts one chromosome's cis matrix from a .hic container into a
// canonical table. The template supplies resolution (required), type and
// norm (defaulted to observed/NONE), and optional genome/sample carried
// onto the result.
func (h HicTool) Load(ctx context.Context, path, chrom string, tpl core.Metadata) (*core.Table, error) {
	if tpl.Resolution <= 0 {
		return nil, fmt.Errorf("HicTool.Load: resolution=%d: %w", tpl.Resolution, core.ErrBadResolution)
	}
	typ := tpl.Type
	if typ == "" {
		typ = core.Observed
	}
	norm := tpl.Norm
	if norm == "" {
		norm = core.NormNone
	}

	dumpPath := h.tempFile(".txt")
	defer os.Remove(dumpPath)

	err := h.Runner.Run(ctx, h.java(),
		"-jar", h.Jar, "dump",
		string(typ), string(norm),
		path, chrom, chrom,
		"BP", strconv.FormatInt(int64(tpl.Resolution), 10),
		dumpPath)
	if err != nil {
		return nil, fmt.Errorf("HicTool.Load: chromosome %q: %w", chrom, err)
	}

	rows, err := readDump(dumpPath, chrom)
	if err != nil {
		return nil, fmt.Errorf("HicTool.Load: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("HicTool.Load: chromosome %q: %w", chrom, ErrChromEmpty)
	}

	tbl, err := builder.Build(rows, typ, norm, builder.WithTemplate(tpl))
	if err != nil {
		return nil, fmt.Errorf("HicTool.Load: %w", err)
	}

	return tbl, nil
}

// LoadAll bulk-loads several chromosomes with per-chromosome isolation:
// a chromosome that fails (typically ErrChromEmpty) is logged as a warning
// and skipped, the rest proceed. Context cancellation still aborts the
// whole batch. When nothing at all loads the batch fails with
// ErrNoChromosomes.
func (h HicTool) LoadAll(ctx context.Context, path string, chroms []string, tpl core.Metadata) (map[string]*core.Table, error) {
	out := make(map[string]*core.Table, len(chroms))
	for _, chrom := range chroms {
		tbl, err := h.Load(ctx, path, chrom, tpl)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("HicTool.LoadAll: %w", ctx.Err())
			}
			warnf("chromosome %q skipped: %v", chrom, err)

			continue
		}
		out[chrom] = tbl
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("HicTool.LoadAll: %w", ErrNoChromosomes)
	}

	return out, nil
}

// readDump parses the dump command's 3-column text (pos1 pos2 score) into
// raw rows on the given chromosome.
func readDump(path, chrom string) ([]builder.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []builder.Row
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("dump line %d: %d columns, want 3: %w", line, len(fields), ErrParse)
		}
		pos1, err := parsePos(fields[0])
		if err != nil {
			return nil, fmt.Errorf("dump line %d: pos1 %q: %w", line, fields[0], ErrParse)
		}
		pos2, err := parsePos(fields[1])
		if err != nil {
			return nil, fmt.Errorf("dump line %d: pos2 %q: %w", line, fields[1], ErrParse)
		}
		score, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("dump line %d: score %q: %w", line, fields[2], ErrParse)
		}
		rows = append(rows, builder.Row{Chrom1: chrom, Pos1: pos1, Chrom2: chrom, Pos2: pos2, Score: score})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
