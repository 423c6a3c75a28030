// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with matrixErrorf so the
// operation name is visible; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> dimension mismatch -> structural violations (odd, pad).

var (
	// ErrInvalidDimensions indicates that a requested size is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g., Add of a 2×2 and a 3×3, or quadrants of different sizes in Join.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that row data given to a constructor is ragged or
	// does not form an n×n layout.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOddSize is returned by Split when the matrix size is not even.
	ErrOddSize = errors.New("matrix: split requires an even size")

	// ErrBadPadSize is returned by Pad/Unpad when the target size would
	// shrink (Pad) or grow (Unpad) the matrix, or is negative.
	ErrBadPadSize = errors.New("matrix: invalid pad size")

	// ErrInvalidBound is returned by Random for a negative bound.
	ErrInvalidBound = errors.New("matrix: random bound must be >= 0")

	// ErrNeedRandSource is returned by Random when rng is nil.
	ErrNeedRandSource = errors.New("matrix: random source is required")
)

// matrixErrorf wraps an underlying sentinel with the operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
