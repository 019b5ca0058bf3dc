// Package sweep measures the chunked parallel scan across a range of
// thread counts and reports the best-performing count.
//
// A sweep is strictly sequential: one scan per thread count, measured
// one at a time, so individual measurements never contend with each
// other. Timings are single-run by design; this is a comparative
// sweep, not a statistically rigorous benchmark.
package sweep

import (
	"runtime"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/scan"
	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/timer"
)

// Sweep bounds. The upper cap keeps the report readable on very wide
// machines; the multiplier deliberately sweeps past the hardware
// thread count to expose where synchronization overhead takes over.
const (
	Cap        = 32
	Multiplier = 4
)

// DefaultMaxK returns min(Cap, NumCPU * Multiplier), the default upper
// bound of the thread-count sweep.
func DefaultMaxK() int {
	return min(Cap, runtime.NumCPU()*Multiplier)
}

// Sample is one measured configuration point.
type Sample struct {
	K       int           // thread count
	Time    time.Duration // one scan at K threads
	Speedup float64       // baseline / Time
}

// Result holds the outcome of one sweep.
type Result struct {
	Baseline time.Duration // one sequential scan, measured once
	PerK     []Sample      // one entry per K in 1..maxK, in order
	BestK    int           // K with the minimum time, first occurrence on ties
	BestTime time.Duration
}

// Run measures one Chunked scan per thread count in 1..maxK and
// returns the recorded samples together with the best configuration.
//
// The sequential baseline is measured once before the sweep and used
// for every sample's speedup ratio.
func Run[T scan.Integer](input []T, maxK int, tm timer.Timer) Result {
	var res Result

	var sink []T
	res.Baseline = tm.Measure(func() {
		sink = scan.Inclusive(input)
	})
	_ = sink

	res.PerK = make([]Sample, 0, maxK)
	res.BestK = 1
	res.BestTime = time.Duration(1<<63 - 1)

	for k := 1; k <= maxK; k++ {
		sc := scan.NewChunked[T](k)
		elapsed := tm.Measure(func() {
			sink = sc.Scan(input)
		})
		_ = sink

		res.PerK = append(res.PerK, Sample{
			K:       k,
			Time:    elapsed,
			Speedup: float64(res.Baseline) / float64(elapsed),
		})

		if elapsed < res.BestTime {
			res.BestTime = elapsed
			res.BestK = k
		}
	}

	return res
}

// MaxSpeedup returns the speedup of the best configuration.
func (r Result) MaxSpeedup() float64 {
	return float64(r.Baseline) / float64(r.BestTime)
}

// MeanSpeedup returns the mean speedup across all swept thread counts.
func (r Result) MeanSpeedup() float64 {
	return stat.Mean(r.speedups(), nil)
}

// SpeedupStdDev returns the sample standard deviation of the speedups.
func (r Result) SpeedupStdDev() float64 {
	return stat.StdDev(r.speedups(), nil)
}

func (r Result) speedups() []float64 {
	s := make([]float64, len(r.PerK))
	for i, p := range r.PerK {
		s[i] = p.Speedup
	}
	return s
}

// OverheadDominated reports whether the best thread count sits in the
// lower half of the sweep, the usual sign that goroutine creation and
// synchronization costs outweigh added parallelism beyond BestK.
func (r Result) OverheadDominated(maxK int) bool {
	return r.BestK < maxK/2
}
