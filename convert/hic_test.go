package convert_test

import (
	"bytes"
	"context"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hicdata/httable/builder"
	"github.com/hicdata/httable/convert"
	"github.com/hicdata/httable/core"
)

// fakeRunner records every invocation and delegates to an optional
// callback, so tool adapters are testable without java/cooler installed.
type fakeRunner struct {
	calls [][]string
	onRun func(name string, args []string) error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.onRun != nil {
		return f.onRun(name, args)
	}

	return nil
}

func hicTable(t *testing.T) *core.Table {
	t.Helper()
	tbl, err := builder.Build([]builder.Row{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 5},
		{Chrom1: "1", Pos1: 10000, Chrom2: "1", Pos2: 30000, Score: 2},
	}, core.Observed, core.NormNone,
		builder.WithResolution(10000), builder.WithGenome("hg19"))
	require.NoError(t, err)

	return tbl
}

func TestHicTool_Export(t *testing.T) {
	var shortBody string
	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		// The temp short listing must exist while the tool runs.
		data, err := os.ReadFile(args[6])
		require.NoError(t, err)
		shortBody = string(data)

		return nil
	}}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar", TempDir: t.TempDir()}

	require.NoError(t, tool.Export(context.Background(), hicTable(t), "out.hic"))
	require.Len(t, fake.calls, 1)

	call := fake.calls[0]
	require.Equal(t, "java", call[0])
	require.Equal(t, []string{"-jar", "juicer_tools.jar", "pre", "-r"}, call[1:5])
	require.Equal(t, "2500000,1000000,500000,250000,100000,50000,25000,10000", call[5])
	require.Equal(t, "-n", call[6])
	require.True(t, strings.HasSuffix(call[7], ".short"))
	require.Equal(t, "out.hic", call[8])
	require.Equal(t, "hg19", call[9])

	require.Equal(t, "0 1 0 0 0 1 10000 1 5\n0 1 10000 0 0 1 30000 1 2\n", shortBody)

	// Interchange files never outlive the call.
	_, err := os.Stat(call[7])
	require.True(t, os.IsNotExist(err))
}

func TestHicTool_ExportRequiresGenome(t *testing.T) {
	tbl, err := builder.Build(nil, core.Observed, core.NormNone, builder.WithResolution(10000))
	require.NoError(t, err)

	fake := &fakeRunner{}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar"}
	err = tool.Export(context.Background(), tbl, "out.hic")
	require.ErrorIs(t, err, core.ErrEmptyMetaString)
	require.Empty(t, fake.calls, "nothing runs when validation fails")
}

func TestHicTool_ExportToolFailureNotRetried(t *testing.T) {
	fake := &fakeRunner{onRun: func(_ string, _ []string) error {
		return &convert.ExitError{Cmd: "java ...", Code: 1}
	}}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar", TempDir: t.TempDir()}

	err := tool.Export(context.Background(), hicTable(t), "out.hic")
	require.ErrorIs(t, err, convert.ErrSubprocess)
	require.Len(t, fake.calls, 1, "non-zero exit is fatal, never retried")
}

func TestHicTool_Load(t *testing.T) {
	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		// dump <type> <norm> <file> <chr> <chr> BP <res> <out>
		require.Equal(t, "dump", args[2])
		require.Equal(t, "observed", args[3])
		require.Equal(t, "NONE", args[4])
		require.Equal(t, "in.hic", args[5])
		require.Equal(t, []string{"7", "7", "BP", "10000"}, args[6:10])

		return os.WriteFile(args[10], []byte("10000 0 5\n0 0 2\n"), 0o644)
	}}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar", TempDir: t.TempDir()}

	tbl, err := tool.Load(context.Background(), "in.hic", "7",
		core.Metadata{Resolution: 10000, Genome: "hg19"})
	require.NoError(t, err)
	require.Equal(t, core.Metadata{
		Resolution: 10000, Type: core.Observed, Norm: core.NormNone, Genome: "hg19",
	}, tbl.Meta())

	// Dump order is arbitrary; the builder canonicalizes.
	require.Equal(t, []core.Record{
		{Chrom1: "7", Pos1: 0, Chrom2: "7", Pos2: 0, Score: 2},
		{Chrom1: "7", Pos1: 10000, Chrom2: "7", Pos2: 0, Score: 5},
	}, tbl.Records())
}

func TestHicTool_LoadRequiresResolution(t *testing.T) {
	tool := convert.HicTool{Runner: &fakeRunner{}, Jar: "juicer_tools.jar"}
	_, err := tool.Load(context.Background(), "in.hic", "7", core.Metadata{})
	require.ErrorIs(t, err, core.ErrBadResolution)
}

func TestHicTool_LoadEmptyDump(t *testing.T) {
	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		return os.WriteFile(args[10], nil, 0o644)
	}}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar", TempDir: t.TempDir()}

	_, err := tool.Load(context.Background(), "in.hic", "Y", core.Metadata{Resolution: 10000})
	require.ErrorIs(t, err, convert.ErrChromEmpty)
}

func TestHicTool_LoadAllIsolation(t *testing.T) {
	var warnings bytes.Buffer
	convert.SetLogger(log.New(&warnings, "", 0))
	defer convert.SetLogger(nil)

	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		if args[6] == "Y" { // no data for Y
			return os.WriteFile(args[10], nil, 0o644)
		}

		return os.WriteFile(args[10], []byte("0 10000 3\n"), 0o644)
	}}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar", TempDir: t.TempDir()}

	got, err := tool.LoadAll(context.Background(), "in.hic", []string{"1", "Y", "2"},
		core.Metadata{Resolution: 10000})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Contains(t, got, "1")
	require.Contains(t, got, "2")
	require.NotContains(t, got, "Y")

	// The failing chromosome surfaced as a warning, not an error.
	require.Contains(t, warnings.String(), `"Y"`)
	require.Contains(t, warnings.String(), "skipped")
}

func TestHicTool_LoadAllNothingLoaded(t *testing.T) {
	convert.SetLogger(nil)
	defer convert.SetLogger(log.Default())

	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		return os.WriteFile(args[10], nil, 0o644)
	}}
	tool := convert.HicTool{Runner: fake, Jar: "juicer_tools.jar", TempDir: t.TempDir()}

	_, err := tool.LoadAll(context.Background(), "in.hic", []string{"1", "2"},
		core.Metadata{Resolution: 10000})
	require.ErrorIs(t, err, convert.ErrNoChromosomes)
}
