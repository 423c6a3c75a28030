// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Clone: O(n²); Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxNew      = "New"
	ctxFromRows = "NewFromRows"
	ctxFromFlat = "NewFromFlat"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Square is a concrete row-major n×n matrix of Elements.
//   - n holds the size (rows == cols == n, n >= 0).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
type Square struct {
	n    int       // size; 0 is a legal empty matrix
	data []Element // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square)(nil)

// New creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with size validation.
//
// Implementation:
//   - Stage 1: validate n >= 0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - n == 0 is legal and yields an empty matrix (len(data) == 0).
//
// Errors:
//   - ErrInvalidDimensions on negative n.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int) (*Square, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}

	return alloc(n), nil
}

// alloc is the internal constructor for sizes already known to be valid.
func alloc(n int) *Square {
	return &Square{n: n, data: make([]Element, n*n)}
}

// NewFromRows builds a Square from row slices, copying the data.
// Implementation:
//   - Stage 1: n = len(rows); every row must hold exactly n values.
//   - Stage 2: copy rows into the flat buffer.
//
// Errors:
//   - ErrNonSquare (wrapped with the offending row index) on ragged input.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows(rows [][]Element) (*Square, error) {
	n := len(rows)
	m := alloc(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// NewFromFlat builds an n×n Square from a row-major slice of length n*n.
// The slice is copied; later writes to data do not affect the matrix.
func NewFromFlat(n int, data []Element) (*Square, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxFromFlat, ErrInvalidDimensions)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%s: %d values for size %d: %w",
			ctxFromFlat, len(data), n, ErrDimensionMismatch)
	}
	m := alloc(n)
	copy(m.data, data)

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Square, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxIdentity, ErrInvalidDimensions)
	}
	m := alloc(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Size returns n. A nil receiver reports 0.
// Complexity: O(1).
func (m *Square) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; At/Set wrap it with coordinates.
func (m *Square) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col).
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when out of bounds.
//
// Complexity: O(1).
func (m *Square) At(row, col int) (Element, error) {
	if m == nil {
		return 0, squareErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrNilMatrix on a nil receiver.
//   - ErrOutOfRange when out of bounds.
//
// Complexity: O(1).
func (m *Square) Set(row, col int, v Element) error {
	if m == nil {
		return squareErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy. Mutations of the copy do not affect m.
// A nil receiver clones to nil.
func (m *Square) Clone() *Square {
	if m == nil {
		return nil
	}
	cp := make([]Element, len(m.data))
	copy(cp, m.data)

	return &Square{n: m.n, data: cp}
}

// Rows returns a freshly allocated [][]Element view of the data.
func (m *Square) Rows() [][]Element {
	if m == nil {
		return nil
	}
	out := make([][]Element, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]Element, m.n)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		out[i] = row
	}

	return out
}

// Equal reports whether m and other have the same size and identical entries.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Square) Equal(other *Square) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String renders the rows for diagnostics. Not for hot paths.
func (m *Square) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
