package strassen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvstrassen/matrix"
)

// numProducts is the number of half-size multiplications per level.
const numProducts = 7

// engine carries the resolved options through the recursion.
type engine struct {
	threshold     int
	parallelDepth int
	stats         *Stats
}

func newEngine(o Options) *engine {
	return &engine{
		threshold:     o.Threshold,
		parallelDepth: o.ParallelDepth,
		stats:         o.Stats,
	}
}

// multiply is the recursive core. a and b have equal power-of-two size.
// Complexity: T(n) = 7·T(n/2) + O(n²) above the threshold.
func (e *engine) multiply(ctx context.Context, a, b *matrix.Square, depth int) (*matrix.Square, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("strassen: depth %d: %w", depth, err)
	}
	e.stats.observeDepth(depth)

	// Base case: brute force is cheaper than further decomposition.
	if a.Size() <= e.threshold {
		e.stats.addBase()
		return matrix.BruteForce(a, b)
	}

	qa, err := matrix.Split(a)
	if err != nil {
		return nil, err
	}
	qb, err := matrix.Split(b)
	if err != nil {
		return nil, err
	}
	e.stats.addSplit()

	var ar arith
	s1 := ar.sub(qb.A12, qb.A22)
	s2 := ar.add(qa.A11, qa.A12)
	s3 := ar.add(qa.A21, qa.A22)
	s4 := ar.sub(qb.A21, qb.A11)
	s5 := ar.add(qa.A11, qa.A22)
	s6 := ar.add(qb.A11, qb.A22)
	s7 := ar.sub(qa.A12, qa.A22)
	s8 := ar.add(qb.A21, qb.A22)
	s9 := ar.sub(qa.A11, qa.A21)
	s10 := ar.add(qb.A11, qb.A12)
	if ar.err != nil {
		return nil, ar.err
	}

	factors := [numProducts][2]*matrix.Square{
		{qa.A11, s1}, // P1
		{s2, qb.A22}, // P2
		{s3, qb.A11}, // P3
		{qa.A22, s4}, // P4
		{s5, s6},     // P5
		{s7, s8},     // P6
		{s9, s10},    // P7
	}
	p, err := e.products(ctx, factors, depth)
	if err != nil {
		return nil, err
	}

	c11 := ar.add(ar.sub(ar.add(p[4], p[3]), p[1]), p[5]) // P5 + P4 − P2 + P6
	c12 := ar.add(p[0], p[1])                              // P1 + P2
	c21 := ar.add(p[2], p[3])                              // P3 + P4
	c22 := ar.sub(ar.sub(ar.add(p[4], p[0]), p[2]), p[6]) // P5 + P1 − P3 − P7
	if ar.err != nil {
		return nil, ar.err
	}

	return matrix.JoinParts(c11, c12, c21, c22)
}

// products computes the seven half-size products, concurrently when depth
// is within the parallel budget. Slot i only ever holds factors[i]'s product.
func (e *engine) products(ctx context.Context, factors [numProducts][2]*matrix.Square, depth int) ([numProducts]*matrix.Square, error) {
	var p [numProducts]*matrix.Square

	if depth >= e.parallelDepth {
		for i, f := range factors {
			r, err := e.multiply(ctx, f[0], f[1], depth+1)
			if err != nil {
				return p, err
			}
			p[i] = r
		}
		return p, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range factors {
		i, f := i, f
		g.Go(func() error {
			r, err := e.multiply(gctx, f[0], f[1], depth+1)
			if err != nil {
				return err
			}
			p[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return p, err
	}

	return p, nil
}

// arith chains matrix.Add/Sub keeping the first error; once an error is
// recorded every later call returns nil.
type arith struct {
	err error
}

func (a *arith) add(x, y *matrix.Square) *matrix.Square {
	if a.err != nil {
		return nil
	}
	r, err := matrix.Add(x, y)
	if err != nil {
		a.err = err
	}

	return r
}

func (a *arith) sub(x, y *matrix.Square) *matrix.Square {
	if a.err != nil {
		return nil
	}
	r, err := matrix.Sub(x, y)
	if err != nil {
		a.err = err
	}

	return r
}
