package scan_test

import (
	"fmt"
	"testing"

	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/gen"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/scan"
)

// Sink variable to prevent the compiler from eliminating benchmark loops
var sinkOut []int

func benchSizes() []int {
	return []int{100_000, 1_000_000, 10_000_000}
}

func BenchmarkScan_Sequential(b *testing.B) {
	for _, n := range benchSizes() {
		input := gen.UniformSeeded(n, 1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkOut = scan.Inclusive(input)
			}
		})
	}
}

func BenchmarkScan_Chunked(b *testing.B) {
	for _, n := range benchSizes() {
		input := gen.UniformSeeded(n, 1)
		for _, threads := range []int{2, 4, 8, 16} {
			sc := scan.NewChunked[int](threads)
			b.Run(fmt.Sprintf("n=%d/threads=%d", n, threads), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkOut = sc.Scan(input)
				}
			})
		}
	}
}

func BenchmarkScan_ChunkedPool(b *testing.B) {
	for _, n := range benchSizes() {
		input := gen.UniformSeeded(n, 1)
		for _, threads := range []int{2, 4, 8, 16} {
			sc := scan.NewChunkedPool[int](threads)
			b.Run(fmt.Sprintf("n=%d/threads=%d", n, threads), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkOut = sc.Scan(input)
				}
			})
		}
	}
}
