// Package lvstrassen multiplies square integer matrices with Strassen's
// divide-and-conquer algorithm.
//
// What is inside?
//
//	matrix/   Square type, Add/Sub, brute-force product, Split/Join,
//	            padding to a power of two, sums, validators
//	strassen/ the recursive engine and the Multiply driver with functional
//	            options (threshold, parallel depth, zap logger, stats)
//	matrixio/ tolerant text parser and tab-separated table writer
//	config/   YAML, .env and environment settings resolved to options
//	cmd/      the strassen CLI (multiply, bench)
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]matrix.Element{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]matrix.Element{{5, 6}, {7, 8}})
//	c, _ := strassen.Multiply(a, b)
//	sum, _ := matrix.SumOfEntries(c) // 134
//
// Arithmetic is int32 with int64 accumulation in the brute-force base case.
// Go integer arithmetic wraps, so results are exact modulo 2³².
package lvstrassen
