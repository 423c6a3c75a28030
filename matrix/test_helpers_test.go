// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstrassen/matrix"
)

// MustRows builds a Square from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]matrix.Element) *matrix.Square {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustNew allocates an n×n zero matrix or fails the test.
func MustNew(t testing.TB, n int) *matrix.Square {
	t.Helper()
	m, err := matrix.New(n)
	require.NoError(t, err)

	return m
}

// MustRandom returns a seeded n×n matrix with entries in [-bound, bound].
func MustRandom(t testing.TB, n int, bound matrix.Element, seed int64) *matrix.Square {
	t.Helper()
	m, err := matrix.Random(n, bound, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return m
}

// Sequential fills an n×n matrix with 1, 2, 3, ... in row-major order.
func Sequential(t testing.TB, n int) *matrix.Square {
	t.Helper()
	data := make([]matrix.Element, n*n)
	for i := range data {
		data[i] = matrix.Element(i + 1)
	}
	m, err := matrix.NewFromFlat(n, data)
	require.NoError(t, err)

	return m
}
