// Package matrix_test provides benchmarks for the basic square operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvstrassen/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Square
	sinkQ matrix.Quadrants
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustRandom(b, n, 1000, 1337)
			y := MustRandom(b, n, 1000, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkBruteForce(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustRandom(b, n, 1000, 1)
			y := MustRandom(b, n, 1000, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.BruteForce(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSplitJoin(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustRandom(b, n, 1000, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, err := matrix.Split(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkQ = q
				m, err := matrix.Join(q)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
