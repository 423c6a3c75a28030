// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels (sum, difference) over equally-sized squares.
//   - Keep all loops deterministic and cache-friendly: a single flat pass
//     over the row-major buffer.
//
// Determinism & Performance:
//   - Fixed loop order 0..n²-1.
//   - No hidden allocations beyond the output Square; O(n²) time and space.

package matrix

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
)

// Add returns a + b.
// Implementation:
//   - Stage 1: validate both operands (nil, size).
//   - Stage 2: allocate the result and sum over the flat buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(ctxAdd, err)
	}
	out := alloc(a.n)
	for i, v := range a.data {
		out.data[i] = v + b.data[i]
	}

	return out, nil
}

// Sub returns a - b. Same contract as Add.
func Sub(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(ctxSub, err)
	}
	out := alloc(a.n)
	for i, v := range a.data {
		out.data[i] = v - b.data[i]
	}

	return out, nil
}
