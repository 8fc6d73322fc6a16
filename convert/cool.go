// SPDX-License-Identifier: MIT
// Package: httable/convert
//
// cool.go — port to the cooler CLI (.cool containers).
//
// The interval rendering doubles as cooler's bg2 pixel text: the seven
// leading columns are chrom1 start1 end1 chrom2 start2 end2 score. Export
// writes a headerless body (cooler does not skip our comment block);
// import goes through "dump -t pixels --join" into a temp file parsed with
// the same line grammar.

package convert

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/hicdata/httable/builder"
	"github.com/hicdata/httable/core"
)

// CoolTool drives the cooler CLI through a Runner.
type CoolTool struct {
	// Runner executes the tool; inject a fake in tests.
	Runner Runner

	// Cooler is the CLI binary; empty means "cooler" from PATH.
	Cooler string

	// TempDir hosts interchange files; empty means os.TempDir().
	TempDir string
}

func (c CoolTool) cooler() string {
	if c.Cooler != "" {
		return c.Cooler
	}

	return "cooler"
}

func (c CoolTool) tempFile(suffix string) string {
	dir := c.TempDir
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "httable-"+uuid.NewString()+suffix)
}

// Export packages t into a single-resolution .cool container at out.
// chromSizes is the assembly's chromosome-sizes file cooler bins against.
func (c CoolTool) Export(ctx context.Context, t *core.Table, chromSizes, out string) error {
	body := c.tempFile(".bg2")
	f, err := os.Create(body)
	if err != nil {
		return fmt.Errorf("CoolTool.Export: %w", err)
	}
	defer os.Remove(body)
	if err = writeIntervalBody(f, t); err != nil {
		f.Close()

		return fmt.Errorf("CoolTool.Export: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("CoolTool.Export: %w", err)
	}

	bins := fmt.Sprintf("%s:%d", chromSizes, t.Meta().Resolution)
	if err = c.Runner.Run(ctx, c.cooler(), "load", "-f", "bg2", bins, body, out); err != nil {
		return fmt.Errorf("CoolTool.Export: %w", err)
	}

	return nil
}

// Load reads a whole .cool container back into a canonical table. The
// template supplies type/norm (defaulted to observed/NONE); resolution may
// be left unset — the dumped intervals carry end coordinates, so the
// builder infers it.
func (c CoolTool) Load(ctx context.Context, path string, tpl core.Metadata) (*core.Table, error) {
	typ := tpl.Type
	if typ == "" {
		typ = core.Observed
	}
	norm := tpl.Norm
	if norm == "" {
		norm = core.NormNone
	}

	dumpPath := c.tempFile(".bg2")
	defer os.Remove(dumpPath)

	err := c.Runner.Run(ctx, c.cooler(), "dump", "-t", "pixels", "--join", "-o", dumpPath, path)
	if err != nil {
		return nil, fmt.Errorf("CoolTool.Load: %w", err)
	}

	rows, err := readPixels(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("CoolTool.Load: %w", err)
	}

	tbl, err := builder.Build(rows, typ, norm, builder.WithTemplate(tpl))
	if err != nil {
		return nil, fmt.Errorf("CoolTool.Load: %w", err)
	}

	return tbl, nil
}

// writeIntervalBody renders only the data lines of the interval format.
// Shared by WriteInterval (which prepends the metadata block) and the
// cooler export path (which must not have one).
func writeIntervalBody(w io.Writer, t *core.Table) error {
	bw := bufio.NewWriter(w)
	res := t.Meta().Resolution
	for i := 0; i < t.Len(); i++ {
		r := t.Record(i)
		fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t%d\t%d\t%s",
			r.Chrom1, r.Pos1, r.Pos1+res,
			r.Chrom2, r.Pos2, r.Pos2+res,
			strconv.FormatFloat(r.Score, 'g', -1, 64))
		for _, f := range r.Extra {
			fmt.Fprintf(bw, "\t%v", f.Value)
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// readPixels parses joined pixel text (bg2) with the interval line grammar.
func readPixels(path string) ([]builder.Row, error) {
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
		if sc.Text() == "" {
			continue
		}
		row, err := parseIntervalLine(sc.Text(), line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
