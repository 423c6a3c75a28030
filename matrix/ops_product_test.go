// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstrassen/matrix"
)

// naiveProduct is the textbook i-j-k dot product used as an oracle.
func naiveProduct(a, b [][]matrix.Element) [][]matrix.Element {
	n := len(a)
	out := make([][]matrix.Element, n)
	for i := 0; i < n; i++ {
		out[i] = make([]matrix.Element, n)
		for j := 0; j < n; j++ {
			var s int64
			for k := 0; k < n; k++ {
				s += int64(a[i][k]) * int64(b[k][j])
			}
			out[i][j] = matrix.Element(s)
		}
	}

	return out
}

func TestBruteForce_TwoByTwo(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]matrix.Element{{1, 2}, {3, 4}})
	b := MustRows(t, [][]matrix.Element{{5, 6}, {7, 8}})
	c, err := matrix.BruteForce(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]matrix.Element{{19, 22}, {43, 50}}, c.Rows())
}

func TestBruteForce_ThreeByThree(t *testing.T) {
	t.Parallel()

	a := Sequential(t, 3)
	c, err := matrix.BruteForce(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]matrix.Element{
		{30, 36, 42},
		{66, 81, 96},
		{102, 126, 150},
	}, c.Rows())
}

func TestBruteForce_MatchesNaive(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 5, 16, 33} {
		a := MustRandom(t, n, 50, int64(n)+10)
		b := MustRandom(t, n, 50, int64(n)+20)
		c, err := matrix.BruteForce(a, b)
		require.NoError(t, err)
		require.Equal(t, n, c.Size())
		if n > 0 {
			require.Equal(t, naiveProduct(a.Rows(), b.Rows()), c.Rows(), "n=%d", n)
		}
	}
}

func TestBruteForce_IdentityAndZero(t *testing.T) {
	t.Parallel()

	a := MustRandom(t, 9, 100, 7)
	id, err := matrix.Identity(9)
	require.NoError(t, err)

	left, err := matrix.BruteForce(id, a)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	right, err := matrix.BruteForce(a, id)
	require.NoError(t, err)
	require.True(t, right.Equal(a))

	z, err := matrix.BruteForce(a, MustNew(t, 9))
	require.NoError(t, err)
	require.True(t, z.Equal(MustNew(t, 9)))
}

func TestBruteForce_WideAccumulation(t *testing.T) {
	t.Parallel()

	// Each partial product overflows int32, the final sum does not.
	big := matrix.Element(1 << 20)
	a := MustRows(t, [][]matrix.Element{{big, big}, {0, 0}})
	b := MustRows(t, [][]matrix.Element{{big, 0}, {-big, 0}})
	c, err := matrix.BruteForce(a, b)
	require.NoError(t, err)
	v, _ := c.At(0, 0)
	require.Equal(t, matrix.Element(0), v)

	// A true overflow keeps the low 32 bits, like the oracle.
	m := MustRows(t, [][]matrix.Element{{math.MaxInt32, math.MaxInt32}, {1, 1}})
	got, err := matrix.BruteForce(m, m)
	require.NoError(t, err)
	require.Equal(t, naiveProduct(m.Rows(), m.Rows()), got.Rows())
}

func TestBruteForce_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.BruteForce(MustNew(t, 2), MustNew(t, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.BruteForce(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
