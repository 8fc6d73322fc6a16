package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hicdata/httable/convert"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want convert.Format
	}{
		{"sample.short", convert.FormatShort},
		{"/data/runs/gm12878.SHORT", convert.FormatShort},
		{"table.ht", convert.FormatInterval},
		{"table.ht.gz", convert.FormatInterval},
		{"matrix.hic", convert.FormatHic},
		{"matrix.cool", convert.FormatCool},
		{"matrix.mcool", convert.FormatMcool},
	}
	for _, tc := range cases {
		got, err := convert.Detect(tc.path)
		require.NoError(t, err, tc.path)
		require.Equal(t, tc.want, got, tc.path)
	}
}

func TestDetect_Unknown(t *testing.T) {
	for _, path := range []string{"table.tsv", "table", "archive.tar.gz", "x.hic.bak"} {
		got, err := convert.Detect(path)
		require.ErrorIs(t, err, convert.ErrUnknownFormat, path)
		require.Equal(t, convert.FormatUnknown, got)
	}
}

func TestFormat_Text(t *testing.T) {
	require.True(t, convert.FormatShort.Text())
	require.True(t, convert.FormatInterval.Text())
	require.False(t, convert.FormatHic.Text())
	require.False(t, convert.FormatCool.Text())
	require.False(t, convert.FormatUnknown.Text())
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "short", convert.FormatShort.String())
	require.Equal(t, "interval", convert.FormatInterval.String())
	require.Equal(t, "unknown", convert.FormatUnknown.String())
}
