// Package strassen multiplies square integer matrices with Strassen's
// seven-multiplication divide-and-conquer scheme.
//
// Overview:
//
//   - Each level splits both operands into quadrants, forms ten sums and
//     differences, performs seven half-size products instead of eight and
//     recombines them, for O(n^log2(7)) ≈ O(n^2.807) time.
//   - Below a cutover threshold (default 32) the brute-force kernel
//     matrix.BruteForce is cheaper than further decomposition and is used
//     as the base case.
//   - Any size works: operands are zero-padded to the next power of two and
//     the product is cropped back. Zero rows/columns of a factor only feed
//     the rows/columns that the crop discards.
//
// Recurrence (A, B split into quadrants):
//
//	S1 = B12 − B22   S2 = A11 + A12   S3 = A21 + A22   S4 = B21 − B11
//	S5 = A11 + A22   S6 = B11 + B22   S7 = A12 − A22   S8 = B21 + B22
//	S9 = A11 − A21   S10 = B11 + B12
//
//	P1 = A11·S1   P2 = S2·B22   P3 = S3·B11   P4 = A22·S4
//	P5 = S5·S6    P6 = S7·S8    P7 = S9·S10
//
//	C11 = P5 + P4 − P2 + P6   C12 = P1 + P2
//	C21 = P3 + P4             C22 = P5 + P1 − P3 − P7
//
// Key features:
//
//   - Functional options: WithThreshold, WithParallelDepth, WithLogger, WithStats.
//   - Parallelism: at the top WithParallelDepth levels the seven products run
//     concurrently (errgroup). Each task reads its own operands and writes its
//     own slot, so no locking is involved.
//   - Cancellation: MultiplyContext checks the context on every recursive call.
//
// Error handling (sentinel errors):
//
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch: invalid operands.
//   - ErrNotPowerOfTwo: MultiplyPowerOfTwo given a size that is not a power of two.
//   - ErrBadThreshold, ErrBadParallelDepth, ErrNilLogger: invalid options.
//   - context.Canceled / context.DeadlineExceeded (wrapped) from MultiplyContext.
//
// Numeric model:
//
//	Elements are int32 and all arithmetic wraps modulo 2³². Strassen's
//	identities hold in that ring, so the result equals matrix.BruteForce
//	entry for entry even when intermediate sums wrap. Entries of the true
//	product outside the int32 range are reported modulo 2³².
//
// Complexity:
//
//   - Time:  O(n^2.807) above the threshold, O(n³) at or below it.
//   - Space: O(n²) live matrices per level; recursion depth O(log n).
package strassen
