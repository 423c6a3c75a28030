// SPDX-License-Identifier: MIT
// Package: matrix
//
// builder.go - deterministic random fixtures for tests, benchmarks and the CLI.
//
// Contract:
//   - n >= 0 (else ErrInvalidDimensions).
//   - bound >= 0 (else ErrInvalidBound); entries are uniform in [-bound, bound].
//   - rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Fill order is row-major; a fixed seed yields a fixed matrix.

package matrix

import (
	"fmt"
	"math/rand"
)

const methodRandom = "Random"

// Random returns an n×n matrix with entries drawn uniformly from [-bound, bound].
// Complexity: O(n²).
func Random(n int, bound Element, rng *rand.Rand) (*Square, error) {
	if n < 0 {
		return nil, matrixErrorf(methodRandom, ErrInvalidDimensions)
	}
	if bound < 0 {
		return nil, fmt.Errorf("%s: bound=%d: %w", methodRandom, bound, ErrInvalidBound)
	}
	if rng == nil {
		return nil, matrixErrorf(methodRandom, ErrNeedRandSource)
	}
	m := alloc(n)
	span := int64(bound)*2 + 1
	for i := range m.data {
		m.data[i] = Element(rng.Int63n(span) - int64(bound))
	}

	return m, nil
}
