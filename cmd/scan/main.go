// Command scan benchmarks inclusive prefix-sum strategies on one input.
//
// Usage:
//
//	go run ./cmd/scan -n 10000000 -threads 8
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/gen"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/scan"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/timer"
)

type scannerInfo struct {
	name string
	sc   scan.Scanner[int]
}

func main() {
	size := flag.Int("n", 10_000_000, "input size (elements)")
	threads := flag.Int("threads", runtime.NumCPU(), "worker count for the parallel scanners")
	seed := flag.Int64("seed", 0, "input seed (0 = from the clock)")
	flag.Parse()

	var data []int
	if *seed != 0 {
		data = gen.UniformSeeded(*size, *seed)
	} else {
		data = gen.Uniform(*size)
	}

	fmt.Printf("Benchmarking inclusive scan (%d elements, %d threads)\n", *size, *threads)
	fmt.Printf("Architecture: %s/%s, NumCPU: %d\n", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	fmt.Println("─────────────────────────────────────────────────")

	scanners := []scannerInfo{
		{"Sequential", scan.Sequential[int]{}},
		{"Chunked", scan.NewChunked[int](*threads)},
		{"ChunkedPool", scan.NewChunkedPool[int](*threads)},
	}

	var tm timer.Wall
	var out []int
	results := make([]float64, len(scanners))

	for i, info := range scanners {
		sc := info.sc
		results[i] = timer.Millis(tm.Measure(func() {
			out = sc.Scan(data)
		}))
	}
	_ = out

	fmt.Printf("\nResults:\n")
	baseline := results[0]

	for i, info := range scanners {
		perElem := results[i] * 1e6 / float64(*size) // ns per element
		speedup := baseline / results[i]

		fmt.Printf("  %-14s %10.3f ms  %6.2f ns/elem  %6.2fx\n",
			info.name, results[i], perElem, speedup)
	}
}
