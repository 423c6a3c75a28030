// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - The brute-force O(n³) product used directly for small operands and as
//     the base case of divide-and-conquer multiplication.
//
// Design:
//   - i→k→j loop order: row i of a is scanned once, row k of b is streamed
//     contiguously, and a per-row accumulator of Wide values collects the
//     partial dot products for every column j.
//   - Accumulation in Wide (int64), narrowed to Element once per entry.

package matrix

const ctxBruteForce = "BruteForce"

// BruteForce returns the standard product a·b where
// out[i,j] = Σ_k a[i,k]·b[k,j].
// MAIN DESCRIPTION:
//   - Exact reference product; every other multiplication strategy in this
//     module is checked against it.
//
// Implementation:
//   - Stage 1: validate operands (nil, size).
//   - Stage 2: for each row i, zero a length-n Wide accumulator, add
//     a[i,k]·b[k,·] for every k, then narrow into out[i,·].
//
// Behavior highlights:
//   - Products and sums are computed in int64; the narrowing to int32
//     keeps the low 32 bits (two's complement wrap).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "BruteForce").
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result plus O(n) accumulator.
func BruteForce(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(ctxBruteForce, err)
	}
	n := a.n
	out := alloc(n)
	acc := make([]Wide, n)
	for i := 0; i < n; i++ {
		for j := range acc {
			acc[j] = 0
		}
		rowA := a.data[i*n : (i+1)*n]
		for k, aik := range rowA {
			if aik == 0 {
				continue // zero rows from padding contribute nothing
			}
			w := Wide(aik)
			rowB := b.data[k*n : (k+1)*n]
			for j, bkj := range rowB {
				acc[j] += w * Wide(bkj)
			}
		}
		rowC := out.data[i*n : (i+1)*n]
		for j, s := range acc {
			rowC[j] = Element(s)
		}
	}

	return out, nil
}
