// Package strassen defines configuration options, sentinel errors and the
// optional statistics sink of the Strassen multiplier.
//
// Options:
//
//	– Threshold:     base-case cutover; sizes ≤ Threshold use brute force. Must be ≥ 1.
//	– ParallelDepth: number of top recursion levels whose seven products run
//	                 concurrently. 0 (default) is fully sequential. At most MaxParallelDepth.
//	– Logger:        zap logger for one debug entry per top-level call. Must be non-nil.
//	– Stats:         optional counters, updated atomically.
//
// Example usage:
//
//	c, err := strassen.Multiply(a, b,
//	    strassen.WithThreshold(64),
//	    strassen.WithParallelDepth(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
package strassen

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Strassen implementation.
var (
	// ErrBadThreshold indicates that Threshold was set below 1.
	ErrBadThreshold = errors.New("strassen: threshold must be >= 1")

	// ErrBadParallelDepth indicates that ParallelDepth is negative or above MaxParallelDepth.
	ErrBadParallelDepth = errors.New("strassen: parallel depth out of range")

	// ErrNilLogger indicates that WithLogger was given a nil logger.
	ErrNilLogger = errors.New("strassen: logger is nil")

	// ErrNotPowerOfTwo indicates that MultiplyPowerOfTwo received operands
	// whose size is not a positive power of two.
	ErrNotPowerOfTwo = errors.New("strassen: size is not a power of two")
)

const (
	// DefaultThreshold is the base-case cutover size.
	DefaultThreshold = 32

	// DefaultParallelDepth keeps the recursion sequential.
	DefaultParallelDepth = 0

	// MaxParallelDepth bounds the fan-out at 7^4 = 2401 concurrent products.
	MaxParallelDepth = 4
)

// Options configures the behavior of the multiplier.
type Options struct {
	Threshold     int         // base-case cutover, ≥ 1
	ParallelDepth int         // concurrent levels, 0..MaxParallelDepth
	Logger        *zap.Logger // never nil after DefaultOptions
	Stats         *Stats      // optional; nil disables counting
}

// Option represents a functional option for configuring the multiplier.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		ParallelDepth: DefaultParallelDepth,
		Logger:        zap.NewNop(),
	}
}

// WithThreshold sets the base-case cutover. Values below 1 cause ErrBadThreshold.
func WithThreshold(n int) Option {
	return func(o *Options) {
		o.Threshold = n
	}
}

// WithParallelDepth runs the seven products concurrently at the top d levels.
// Values outside [0, MaxParallelDepth] cause ErrBadParallelDepth.
func WithParallelDepth(d int) Option {
	return func(o *Options) {
		o.ParallelDepth = d
	}
}

// WithLogger sets the logger. A nil logger causes ErrNilLogger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStats records counters of the run into s. s may be shared across
// calls; counters accumulate until Reset.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Threshold < 1 {
		return o, ErrBadThreshold
	}
	if o.ParallelDepth < 0 || o.ParallelDepth > MaxParallelDepth {
		return o, ErrBadParallelDepth
	}
	if o.Logger == nil {
		return o, ErrNilLogger
	}

	return o, nil
}

// Stats counts what the recursion did. All methods are safe for concurrent
// use; a nil *Stats ignores updates.
type Stats struct {
	baseProducts atomic.Int64 // brute-force products at the leaves
	splits       atomic.Int64 // recursive levels that split their operands
	maxDepth     atomic.Int64 // deepest recursion level reached (root = 0)
}

// BaseProducts returns the number of brute-force leaf products.
func (s *Stats) BaseProducts() int64 { return s.baseProducts.Load() }

// Splits returns the number of recursive (non-leaf) calls.
func (s *Stats) Splits() int64 { return s.splits.Load() }

// MaxDepth returns the deepest recursion level reached; the root call is level 0.
func (s *Stats) MaxDepth() int64 { return s.maxDepth.Load() }

// Reset zeroes all counters.
func (s *Stats) Reset() {
	s.baseProducts.Store(0)
	s.splits.Store(0)
	s.maxDepth.Store(0)
}

func (s *Stats) addBase() {
	if s != nil {
		s.baseProducts.Add(1)
	}
}

func (s *Stats) addSplit() {
	if s != nil {
		s.splits.Add(1)
	}
}

func (s *Stats) observeDepth(depth int) {
	if s == nil {
		return
	}
	d := int64(depth)
	for {
		cur := s.maxDepth.Load()
		if d <= cur || s.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}
