// Package gen produces random integer inputs for the scan benchmarks.
package gen

import (
	"time"

	rng "github.com/leesper/go_rng"
)

// Generated values are uniform in [MinValue, MaxValue]. Small positive
// values keep 10M-element prefix sums far from overflowing an int.
const (
	MinValue = 1
	MaxValue = 100
)

// Uniform returns n integers uniform in [MinValue, MaxValue], seeded
// from the clock.
func Uniform(n int) []int {
	return UniformSeeded(n, time.Now().UnixNano())
}

// UniformSeeded is Uniform with an explicit seed, for reproducible
// inputs in tests and benchmarks.
func UniformSeeded(n int, seed int64) []int {
	ug := rng.NewUniformGenerator(seed)
	data := make([]int, n)
	for i := range data {
		data[i] = int(ug.Int64Range(MinValue, MaxValue+1))
	}
	return data
}
