package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hicdata/httable/core"
)

func validMeta() core.Metadata {
	return core.Metadata{Resolution: 10000, Type: core.Observed, Norm: core.NormNone}
}

func TestNew_ValidTable(t *testing.T) {
	recs := []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 5},
		{Chrom1: "1", Pos1: 10000, Chrom2: "1", Pos2: 10000, Score: 2},
		{Chrom1: "2", Pos1: 0, Chrom2: "2", Pos2: 0, Score: math.NaN()},
	}
	tbl, err := core.New(validMeta(), recs)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, validMeta(), tbl.Meta())

	// The input slice was copied: mutating it must not reach the table.
	recs[0].Score = 99
	require.Equal(t, 5.0, tbl.Record(0).Score)
}

func TestNew_EmptyTableAllowed(t *testing.T) {
	tbl, err := core.New(validMeta(), nil)
	require.NoError(t, err)
	require.Zero(t, tbl.Len())
}

func TestNew_DuplicateKeysPreserved(t *testing.T) {
	recs := []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 1},
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 2},
	}
	tbl, err := core.New(validMeta(), recs)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
}

func TestNew_Rejections(t *testing.T) {
	ok := core.Record{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000}

	_, err := core.New(core.Metadata{Resolution: 0, Type: core.Observed, Norm: core.NormNone}, nil)
	require.ErrorIs(t, err, core.ErrBadResolution)

	_, err = core.New(validMeta(), []core.Record{{Chrom1: "", Pos1: 0, Chrom2: "1", Pos2: 0}})
	require.ErrorIs(t, err, core.ErrEmptyChrom)

	_, err = core.New(validMeta(), []core.Record{{Chrom1: "1", Pos1: -1, Chrom2: "1", Pos2: 0}})
	require.ErrorIs(t, err, core.ErrNegativePos)

	// Out-of-order input is rejected, not silently re-sorted.
	later := core.Record{Chrom1: "1", Pos1: 20000, Chrom2: "1", Pos2: 20000}
	_, err = core.New(validMeta(), []core.Record{later, ok})
	require.ErrorIs(t, err, core.ErrUnsorted)
}

func TestTable_Chromosomes(t *testing.T) {
	tbl, err := core.New(validMeta(), []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "2", Pos2: 0, Score: 1},
		{Chrom1: "1", Pos1: 0, Chrom2: "X", Pos2: 5000, Score: 1},
		{Chrom1: "2", Pos1: 0, Chrom2: "2", Pos2: 0, Score: 1},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "X"}, tbl.Chromosomes())
}

func TestTable_Cis(t *testing.T) {
	tbl, err := core.New(validMeta(), []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 5},
		{Chrom1: "1", Pos1: 0, Chrom2: "2", Pos2: 0, Score: 7},
		{Chrom1: "2", Pos1: 0, Chrom2: "2", Pos2: 10000, Score: 9},
	})
	require.NoError(t, err)

	cis := tbl.Cis("2")
	require.Equal(t, 1, cis.Len())
	require.Equal(t, 9.0, cis.Record(0).Score)
	require.Equal(t, tbl.Meta(), cis.Meta())

	// Trans pairs never land in a cis subset; unknown chromosomes yield an
	// empty table, not an error.
	require.Zero(t, tbl.Cis("Y").Len())
	require.Equal(t, 3, tbl.Len())
}

func TestTable_WithMetadata(t *testing.T) {
	tbl, err := core.New(validMeta(), []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 5},
	})
	require.NoError(t, err)

	meta2 := validMeta()
	meta2.Norm = core.NormKR
	tbl2, err := tbl.WithMetadata(meta2)
	require.NoError(t, err)
	require.Equal(t, core.NormKR, tbl2.Meta().Norm)
	require.Equal(t, core.NormNone, tbl.Meta().Norm)
	require.Equal(t, tbl.Records(), tbl2.Records())

	meta2.Resolution = -1
	_, err = tbl.WithMetadata(meta2)
	require.ErrorIs(t, err, core.ErrBadResolution)
}

func TestTable_CloneIsDeep(t *testing.T) {
	tbl, err := core.New(validMeta(), []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 5,
			Extra: []core.Field{{Name: "qual", Value: 30}}},
	})
	require.NoError(t, err)

	cl := tbl.Clone()
	require.Equal(t, tbl.Records(), cl.Records())

	got := cl.Record(0)
	got.Extra[0] = core.Field{Name: "qual", Value: 0}
	require.Equal(t, 30, tbl.Record(0).Extra[0].Value)
}

func TestTable_RecordsDefensiveCopy(t *testing.T) {
	tbl, err := core.New(validMeta(), []core.Record{
		{Chrom1: "1", Pos1: 0, Chrom2: "1", Pos2: 10000, Score: 5},
	})
	require.NoError(t, err)

	recs := tbl.Records()
	recs[0].Score = 123
	require.Equal(t, 5.0, tbl.Record(0).Score)
}
