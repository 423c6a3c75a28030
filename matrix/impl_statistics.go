// SPDX-License-Identifier: MIT

// Package matrix - scalar reductions in the wide integer type.

package matrix

const (
	ctxSumOfEntries = "SumOfEntries"
	ctxTrace        = "Trace"
)

// SumOfEntries returns Σ m[i,j] accumulated in Wide.
// An empty matrix sums to 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(n²).
func SumOfEntries(m *Square) (Wide, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(ctxSumOfEntries, err)
	}
	var sum Wide
	for _, v := range m.data {
		sum += Wide(v)
	}

	return sum, nil
}

// Trace returns Σ m[i,i] accumulated in Wide.
func Trace(m *Square) (Wide, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(ctxTrace, err)
	}
	var sum Wide
	for i := 0; i < m.n; i++ {
		sum += Wide(m.data[i*m.n+i])
	}

	return sum, nil
}
