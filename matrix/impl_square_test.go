// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstrassen/matrix"
)

func TestNew_SizesAndErrors(t *testing.T) {
	t.Parallel()

	m, err := matrix.New(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}

	empty, err := matrix.New(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Size())
	require.Empty(t, empty.Rows())

	_, err = matrix.New(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFromRows_CopiesAndRejectsRagged(t *testing.T) {
	t.Parallel()

	rows := [][]matrix.Element{{1, 2}, {3, 4}}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99 // caller mutation must not leak into m
	if diff := cmp.Diff([][]matrix.Element{{1, 2}, {3, 4}}, m.Rows()); diff != "" {
		t.Fatalf("Rows() mismatch (-want +got):\n%s", diff)
	}

	_, err = matrix.NewFromRows([][]matrix.Element{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewFromRows([][]matrix.Element{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestNewFromFlat_LengthCheck(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromFlat(2, []matrix.Element{1, 2, 3, 4})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Element(3), v)

	_, err = matrix.NewFromFlat(2, []matrix.Element{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromFlat(-2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2)
	require.NoError(t, m.Set(1, 1, 7))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.Element(7), v)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}

	var nilM *matrix.Square
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, nilM.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Equal(t, 0, nilM.Size())
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	m := Sequential(t, 3)
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 0, -5))
	require.False(t, m.Equal(c))

	var nilM *matrix.Square
	require.Nil(t, nilM.Clone())
}

func TestEqual_Cases(t *testing.T) {
	t.Parallel()

	a := Sequential(t, 2)
	require.True(t, a.Equal(Sequential(t, 2)))
	require.False(t, a.Equal(Sequential(t, 3)))
	require.False(t, a.Equal(nil))

	var nilM *matrix.Square
	require.True(t, nilM.Equal(nil))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	want := [][]matrix.Element{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if diff := cmp.Diff(want, id.Rows()); diff != "" {
		t.Fatalf("Identity(3) mismatch (-want +got):\n%s", diff)
	}

	_, err = matrix.Identity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestString(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]matrix.Element{{1, -2}, {3, 4}})
	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())

	var nilM *matrix.Square
	require.Equal(t, "<nil>", nilM.String())
}
