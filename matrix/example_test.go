// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvstrassen/matrix"
)

// ExampleBruteForce multiplies two 2×2 matrices and reports the sum of entries.
func ExampleBruteForce() {
	a, _ := matrix.NewFromRows([][]matrix.Element{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]matrix.Element{{5, 6}, {7, 8}})

	c, err := matrix.BruteForce(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sum, _ := matrix.SumOfEntries(c)
	fmt.Print(c)
	fmt.Println("sum:", sum)
	// Output:
	// [19, 22]
	// [43, 50]
	// sum: 134
}

// ExampleSplit shows the quadrant layout of a 4×4 matrix.
func ExampleSplit() {
	m, _ := matrix.NewFromRows([][]matrix.Element{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	q, _ := matrix.Split(m)
	fmt.Print("A12:\n", q.A12)
	fmt.Print("A21:\n", q.A21)
	// Output:
	// A12:
	// [3, 4]
	// [7, 8]
	// A21:
	// [9, 10]
	// [13, 14]
}

// ExamplePad zero-extends a 3×3 matrix to the next power of two.
func ExamplePad() {
	m, _ := matrix.NewFromRows([][]matrix.Element{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	p, _ := matrix.Pad(m, matrix.NextPowerOfTwo(m.Size()))
	fmt.Print(p)
	// Output:
	// [1, 2, 3, 0]
	// [4, 5, 6, 0]
	// [7, 8, 9, 0]
	// [0, 0, 0, 0]
}
