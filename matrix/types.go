// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the square storage and the block
// operations. Errors live in errors.go, validation in validators.go.
package matrix

// Element is the scalar stored in a Square.
type Element = int32

// Wide is the accumulator type used wherever sums of Elements may exceed the
// Element range (dot products, reductions).
type Wide = int64

// Quadrants is the ordered 4-tuple produced by Split of an even-sized square:
// top-left, top-right, bottom-left, bottom-right. Each block has size n/2.
type Quadrants struct {
	A11 *Square // top-left
	A12 *Square // top-right
	A21 *Square // bottom-left
	A22 *Square // bottom-right
}
