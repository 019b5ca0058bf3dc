// Command sweep runs the full inclusive-scan benchmark report: for each
// input size it measures the sequential baseline, compares the scan
// strategies, then sweeps the chunked scanner's thread count and
// reports the best-performing K.
//
// Usage:
//
//	go run ./cmd/sweep -sizes 100000,1000000,10000000
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/gen"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/scan"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/sweep"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/timer"
)

func main() {
	sizesArg := flag.String("sizes", "100000,1000000,10000000", "comma-separated input sizes")
	maxK := flag.Int("maxk", sweep.DefaultMaxK(), "upper bound of the thread-count sweep")
	seed := flag.Int64("seed", 0, "input seed (0 = from the clock)")
	flag.Parse()

	sizes, err := parseSizes(*sizesArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sweep:", err)
		os.Exit(1)
	}

	fmt.Println("Inclusive scan benchmark report")
	fmt.Printf("Architecture: %s/%s, NumCPU: %d, maxK: %d\n",
		runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), *maxK)
	fmt.Println("═════════════════════════════════════════════════")

	for _, size := range sizes {
		var data []int
		if *seed != 0 {
			data = gen.UniformSeeded(size, *seed)
		} else {
			data = gen.Uniform(size)
		}

		fmt.Printf("\n### Input size: %d elements ###\n", size)
		runBaseline(data)
		runStrategies(data)
		runSweep(data, *maxK)
	}
}

func parseSizes(arg string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(arg, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid size %q", field)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func runBaseline(data []int) {
	var tm timer.Wall
	var out []int

	elapsed := tm.Measure(func() {
		out = scan.Inclusive(data)
	})
	_ = out

	fmt.Printf("\n--- Sequential baseline ---\n")
	fmt.Printf("Execution time: %.3f ms\n", timer.Millis(elapsed))
}

func runStrategies(data []int) {
	threads := runtime.NumCPU()
	scanners := []struct {
		name string
		sc   scan.Scanner[int]
	}{
		{"Sequential", scan.Sequential[int]{}},
		{"Chunked", scan.NewChunked[int](threads)},
		{"ChunkedPool", scan.NewChunkedPool[int](threads)},
	}

	fmt.Printf("\n--- Strategy comparison (%d threads) ---\n", threads)

	var tm timer.Wall
	var out []int
	var baseline float64

	for i, info := range scanners {
		sc := info.sc
		ms := timer.Millis(tm.Measure(func() {
			out = sc.Scan(data)
		}))
		if i == 0 {
			baseline = ms
		}
		fmt.Printf("  %-14s %10.3f ms  %6.2fx\n", info.name, ms, baseline/ms)
	}
	_ = out
}

func runSweep(data []int, maxK int) {
	fmt.Printf("\n--- Thread-count sweep (K = 1..%d) ---\n", maxK)
	fmt.Printf("%5s %12s %10s\n", "K", "Time (ms)", "Speedup")
	fmt.Println(strings.Repeat("─", 30))

	res := sweep.Run(data, maxK, timer.Wall{})

	for _, s := range res.PerK {
		fmt.Printf("%5d %12.3f %9.2fx\n", s.K, timer.Millis(s.Time), s.Speedup)
	}

	fmt.Printf("\n--- Sweep results ---\n")
	fmt.Printf("Best K:            %d\n", res.BestK)
	fmt.Printf("Time at best K:    %.3f ms\n", timer.Millis(res.BestTime))
	fmt.Printf("Maximum speedup:   %.2fx\n", res.MaxSpeedup())
	fmt.Printf("Mean speedup:      %.2fx (stddev %.2f)\n", res.MeanSpeedup(), res.SpeedupStdDev())
	fmt.Printf("Best K / NumCPU:   %.2f\n", float64(res.BestK)/float64(runtime.NumCPU()))

	if res.OverheadDominated(maxK) {
		fmt.Printf("\nNote: past K=%d the timings grow again; goroutine creation\n", res.BestK)
		fmt.Printf("and synchronization overhead outweighs the added parallelism.\n")
	}
}
