package strassen

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvstrassen/matrix"
)

const (
	opMultiply           = "strassen.Multiply"
	opMultiplyPowerOfTwo = "strassen.MultiplyPowerOfTwo"
)

// Multiply returns the exact product a·b for square operands of any equal
// size, including sizes that are odd or not powers of two.
//
// Steps:
//
//  1. Validate operands and options.
//  2. Pad both operands with zeros to target = matrix.NextPowerOfTwo(n).
//  3. Run the recursive core on the padded operands.
//  4. Crop the target-sized product back to n×n.
//
// The result is identical to matrix.BruteForce(a, b). A 0×0 input yields a
// 0×0 product.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for invalid operands.
//   - ErrBadThreshold, ErrBadParallelDepth, ErrNilLogger for invalid options.
func Multiply(a, b *matrix.Square, opts ...Option) (*matrix.Square, error) {
	return MultiplyContext(context.Background(), a, b, opts...)
}

// MultiplyContext is Multiply with cancellation. The context is checked on
// every recursive call; a cancelled run returns an error wrapping ctx.Err().
func MultiplyContext(ctx context.Context, a, b *matrix.Square, opts ...Option) (*matrix.Square, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	if err = matrix.ValidateSameSize(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	start := time.Now()
	n := a.Size()
	target := matrix.NextPowerOfTwo(n)

	pa, err := matrix.Pad(a, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	pb, err := matrix.Pad(b, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	pc, err := newEngine(o).multiply(ctx, pa, pb, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	c, err := matrix.Unpad(pc, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	o.Logger.Debug("strassen multiply",
		zap.Int("size", n),
		zap.Int("padded", target),
		zap.Int("threshold", o.Threshold),
		zap.Int("parallel_depth", o.ParallelDepth),
		zap.Duration("elapsed", time.Since(start)),
	)

	return c, nil
}

// MultiplyPowerOfTwo runs the recursive core directly, without padding.
// Both operands must have the same size n, and n must be a power of two.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrNotPowerOfTwo.
//   - ErrBadThreshold, ErrBadParallelDepth, ErrNilLogger for invalid options.
func MultiplyPowerOfTwo(a, b *matrix.Square, opts ...Option) (*matrix.Square, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiplyPowerOfTwo, err)
	}
	if err = matrix.ValidateSameSize(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiplyPowerOfTwo, err)
	}
	if !matrix.IsPowerOfTwo(a.Size()) {
		return nil, fmt.Errorf("%s: size %d: %w", opMultiplyPowerOfTwo, a.Size(), ErrNotPowerOfTwo)
	}

	c, err := newEngine(o).multiply(context.Background(), a, b, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiplyPowerOfTwo, err)
	}

	return c, nil
}
