// SPDX-License-Identifier: MIT

// Package matrix - quadrant decomposition and recomposition.
//
// Purpose:
//   - Split an even-sized square into four half-size copies (TL, TR, BL, BR).
//   - Join four equally-sized quadrants back into one square.
//
// Join(Split(M)) == M for every even-sized M.

package matrix

import "fmt"

const (
	ctxSplit = "Split"
	ctxJoin  = "Join"
)

// Split decomposes m into its four quadrants, sliced at the row/column midpoint.
// MAIN DESCRIPTION:
//   - Copy-based: each quadrant owns its buffer, so the parent may be
//     discarded or mutated without affecting the blocks.
//
// Implementation:
//   - Stage 1: validate non-nil and even size.
//   - Stage 2: for every parent row i < h copy the two halves into A11/A12;
//     for every row i >= h into A21/A22 (one copy() per half-row).
//
// Errors:
//   - ErrNilMatrix; ErrOddSize when m.Size() is odd.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Split(m *Square) (Quadrants, error) {
	if err := ValidateEven(m); err != nil {
		return Quadrants{}, matrixErrorf(ctxSplit, err)
	}
	n := m.n
	h := n / 2
	q := Quadrants{A11: alloc(h), A12: alloc(h), A21: alloc(h), A22: alloc(h)}
	for i := 0; i < h; i++ {
		top := m.data[i*n : (i+1)*n]
		bottom := m.data[(i+h)*n : (i+h+1)*n]
		copy(q.A11.data[i*h:(i+1)*h], top[:h])
		copy(q.A12.data[i*h:(i+1)*h], top[h:])
		copy(q.A21.data[i*h:(i+1)*h], bottom[:h])
		copy(q.A22.data[i*h:(i+1)*h], bottom[h:])
	}

	return q, nil
}

// Join assembles q into a square of size 2h, placing each quadrant at its
// corresponding position.
//
// Errors:
//   - ErrNilMatrix if any quadrant is nil.
//   - ErrDimensionMismatch if the quadrants differ in size.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Join(q Quadrants) (*Square, error) {
	for _, part := range [...]*Square{q.A11, q.A12, q.A21, q.A22} {
		if err := ValidateNotNil(part); err != nil {
			return nil, matrixErrorf(ctxJoin, err)
		}
	}
	h := q.A11.n
	if q.A12.n != h || q.A21.n != h || q.A22.n != h {
		return nil, fmt.Errorf("%s: quadrant sizes %d/%d/%d/%d: %w",
			ctxJoin, h, q.A12.n, q.A21.n, q.A22.n, ErrDimensionMismatch)
	}
	n := 2 * h
	out := alloc(n)
	for i := 0; i < h; i++ {
		top := out.data[i*n : (i+1)*n]
		bottom := out.data[(i+h)*n : (i+h+1)*n]
		copy(top[:h], q.A11.data[i*h:(i+1)*h])
		copy(top[h:], q.A12.data[i*h:(i+1)*h])
		copy(bottom[:h], q.A21.data[i*h:(i+1)*h])
		copy(bottom[h:], q.A22.data[i*h:(i+1)*h])
	}

	return out, nil
}

// JoinParts is Join over four loose quadrants.
func JoinParts(c11, c12, c21, c22 *Square) (*Square, error) {
	return Join(Quadrants{A11: c11, A12: c12, A21: c21, A22: c22})
}
