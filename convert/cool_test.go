package convert_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hicdata/httable/convert"
	"github.com/hicdata/httable/core"
)

func TestCoolTool_Export(t *testing.T) {
	var body string
	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		data, err := os.ReadFile(args[4])
		require.NoError(t, err)
		body = string(data)

		return nil
	}}
	tool := convert.CoolTool{Runner: fake, TempDir: t.TempDir()}

	require.NoError(t, tool.Export(context.Background(), hicTable(t), "hg19.chrom.sizes", "out.cool"))
	require.Len(t, fake.calls, 1)

	call := fake.calls[0]
	require.Equal(t, "cooler", call[0])
	require.Equal(t, []string{"load", "-f", "bg2"}, call[1:4])
	require.Equal(t, "hg19.chrom.sizes:10000", call[4])
	require.True(t, strings.HasSuffix(call[5], ".bg2"))
	require.Equal(t, "out.cool", call[6])

	// Headerless bg2 body: cooler would choke on a comment block.
	require.Equal(t,
		"1\t0\t10000\t1\t10000\t20000\t5\n"+
			"1\t10000\t20000\t1\t30000\t40000\t2\n", body)
	require.NotContains(t, body, "#")
}

func TestCoolTool_Load(t *testing.T) {
	fake := &fakeRunner{onRun: func(_ string, args []string) error {
		require.Equal(t, []string{"dump", "-t", "pixels", "--join", "-o"}, args[:5])
		require.Equal(t, "in.cool", args[6])

		return os.WriteFile(args[5], []byte("1\t0\t5000\t1\t20000\t25000\t4\n"), 0o644)
	}}
	tool := convert.CoolTool{Runner: fake, TempDir: t.TempDir()}

	// No resolution in the template: inferred from the dumped intervals.
	tbl, err := tool.Load(context.Background(), "in.cool", core.Metadata{Sample: "s1"})
	require.NoError(t, err)
	require.Equal(t, core.Metadata{
		Resolution: 5000, Type: core.Observed, Norm: core.NormNone, Sample: "s1",
	}, tbl.Meta())
	require.Equal(t, 1, tbl.Len())
	require.Equal(t, 4.0, tbl.Record(0).Score)
}

func TestCoolTool_LoadToolFailure(t *testing.T) {
	fake := &fakeRunner{onRun: func(_ string, _ []string) error {
		return &convert.ExitError{Cmd: "cooler dump", Code: 2}
	}}
	tool := convert.CoolTool{Runner: fake, TempDir: t.TempDir()}

	_, err := tool.Load(context.Background(), "in.cool", core.Metadata{})
	require.ErrorIs(t, err, convert.ErrSubprocess)
	require.Len(t, fake.calls, 1)
}
