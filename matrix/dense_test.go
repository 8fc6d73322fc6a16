package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hicdata/httable/matrix"
)

func TestNewDense_FillAndShape(t *testing.T) {
	m, err := matrix.NewDense(2, 3, -1)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, -1.0, v)
		}
	}
}

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense(3, -1, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_SetAtBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2, 0)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 42))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

func TestDense_SetSym(t *testing.T) {
	m, err := matrix.NewDense(3, 3, math.NaN())
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 2, 7))

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
	v, err = m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	rect, err := matrix.NewDense(2, 3, 0)
	require.NoError(t, err)
	require.ErrorIs(t, rect.SetSym(0, 1, 1), matrix.ErrNonSquare)
}

func TestDense_CloneIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2, 0)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 5))

	cl := m.Clone()
	require.NoError(t, cl.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}
