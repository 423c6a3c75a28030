// SPDX-License-Identifier: MIT

// Package matrix - zero padding to power-of-two sizes and the inverse crop.
//
// Zero padding is safe for multiplication: the extra rows of a and the
// extra columns of b only produce entries in the extra rows/columns of the
// product, which Unpad discards.

package matrix

import "fmt"

const (
	ctxPad   = "Pad"
	ctxUnpad = "Unpad"
)

// NextPowerOfTwo returns the smallest power of two >= n.
// n <= 0 maps to 1; a power of two maps to itself.
// Complexity: O(log n).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	if IsPowerOfTwo(n) {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Pad returns a newSize×newSize matrix equal to m in the top-left block and
// zero elsewhere.
// Implementation:
//   - Stage 1: validate m and newSize >= m.Size().
//   - Stage 2: if sizes are equal return m unchanged (no copy).
//   - Stage 3: allocate and copy each source row into the wider buffer.
//
// Errors:
//   - ErrNilMatrix; ErrBadPadSize if newSize < m.Size().
//
// Notes:
//   - The no-op case returns the same pointer. Callers that intend to mutate
//     the result must Clone first.
//
// Complexity:
//   - Time O(newSize²), Space O(newSize²).
func Pad(m *Square, newSize int) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxPad, err)
	}
	if newSize < m.n {
		return nil, fmt.Errorf("%s: %d -> %d: %w", ctxPad, m.n, newSize, ErrBadPadSize)
	}
	if newSize == m.n {
		return m, nil
	}
	out := alloc(newSize)
	for i := 0; i < m.n; i++ {
		copy(out.data[i*newSize:i*newSize+m.n], m.data[i*m.n:(i+1)*m.n])
	}

	return out, nil
}

// Unpad returns the top-left originalSize×originalSize block of m as a new matrix.
//
// Errors:
//   - ErrNilMatrix; ErrBadPadSize if originalSize < 0 or > m.Size().
//
// Complexity:
//   - Time O(originalSize²), Space O(originalSize²).
func Unpad(m *Square, originalSize int) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxUnpad, err)
	}
	if originalSize < 0 || originalSize > m.n {
		return nil, fmt.Errorf("%s: %d -> %d: %w", ctxUnpad, m.n, originalSize, ErrBadPadSize)
	}
	out := alloc(originalSize)
	for i := 0; i < originalSize; i++ {
		copy(out.data[i*originalSize:(i+1)*originalSize], m.data[i*m.n:i*m.n+originalSize])
	}

	return out, nil
}
