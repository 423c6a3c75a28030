// SPDX-License-Identifier: MIT

// Package matrixio reads square integer matrices from text and writes them
// back as tables.
//
// Input format:
//
//	Any sequence of decimal integers separated by whitespace. The characters
//	'{', '}' and ',' are treated as blanks, so C-style array literals such as
//	"{{1, 2}, {3, 4}}" parse the same as "1 2\n3 4". The count of integers
//	must be a perfect square n²; values fill the n×n matrix row by row.
//
// Errors (sentinel):
//
//   - ErrEmptyInput: no integers were found.
//   - ErrNotSquare:  the integer count is not a perfect square.
//   - ErrSyntax:     a token is not a decimal int32.
package matrixio
