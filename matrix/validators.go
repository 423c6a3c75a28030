// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → SameSize).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b are both non-nil and of equal size.
//
// Errors: ErrNilMatrix, then ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b *Square) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if a.n != b.n {
		return fmt.Errorf("ValidateSameSize: %d vs %d: %w", a.n, b.n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateEven ensures m is non-nil and has an even size, the precondition of Split.
func ValidateEven(m *Square) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateEven", err)
	}
	if m.n%2 != 0 {
		return fmt.Errorf("ValidateEven: size %d: %w", m.n, ErrOddSize)
	}

	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
