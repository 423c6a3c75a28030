// SPDX-License-Identifier: MIT

// Package matrix provides square integer matrices and the building blocks
// that divide-and-conquer multiplication is made of.
//
// The matrix package provides:
//
//   - Square: a row-major n×n matrix of int32 with safe accessors (At/Set
//     return errors instead of panicking).
//   - Basic ops: Add, Sub and BruteForce (triple loop, int64 accumulation).
//   - Blocks: Split a square of even size into four Quadrants and Join them back.
//   - Padding: NextPowerOfTwo, Pad (zero extension) and Unpad (top-left crop).
//   - Reductions: SumOfEntries and Trace in the wide integer type.
//
// Every operation allocates a fresh result and never mutates its inputs.
// Contract violations (nil operands, mismatched sizes, odd split, bad pad
// size) are reported as sentinel errors from errors.go; match them with
// errors.Is.
//
// Overflow:
//
//	Element arithmetic wraps modulo 2³² (Go defines two's complement
//	wrapping for signed integers). BruteForce accumulates in int64 before
//	narrowing, so moderately large values survive; products whose true
//	entries exceed int32 are reduced modulo 2³².
//
// Complexity quicksheet:
//   - New/Clone/Add/Sub/Pad/Unpad/Split/Join: O(n²).
//   - BruteForce: O(n³) time, O(n²) space.
package matrix
