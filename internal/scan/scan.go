// Package scan provides inclusive prefix-sum (scan) implementations for
// benchmarking.
//
// This package offers three implementations of the Scanner interface:
//   - Sequential: Single-threaded reference scan
//   - Chunked: Two-phase chunked scan-with-carry, goroutines spawned per call
//   - ChunkedPool: Same chunk geometry, jobs distributed to a worker pool
//
// An inclusive scan computes output[i] = input[0] + input[1] + ... + input[i].
// The parallel implementations partition the input into contiguous chunks,
// scan each chunk independently, then propagate per-chunk carries so the
// result is identical to the sequential scan for every thread count.
package scan

// Integer is the element constraint for all scanners.
// The combining operation is fixed to addition.
type Integer interface {
	~int | ~int32 | ~int64
}

// Scanner computes an inclusive prefix sum.
//
// Scan must not mutate its input and must return a fresh slice of the
// same length. Implementations are safe for concurrent use as long as
// their configuration fields are not modified between calls.
type Scanner[T Integer] interface {
	// Scan returns the inclusive prefix sum of input.
	Scan(input []T) []T
}

// DefaultThreshold is the input length below which the parallel
// scanners fall back to the sequential scan. Goroutine spawn and join
// overhead dominates below this size.
const DefaultThreshold = 1000

// Inclusive computes the inclusive prefix sum of input sequentially.
//
// This is the reference implementation: the parallel scanners must
// produce exactly this result for every thread count.
func Inclusive[T Integer](input []T) []T {
	output := make([]T, len(input))
	inclusiveInto(input, output)
	return output
}

// inclusiveInto writes the inclusive scan of input into output.
// The two slices must have equal length and must not overlap.
func inclusiveInto[T Integer](input, output []T) {
	var sum T
	for i, v := range input {
		sum += v
		output[i] = sum
	}
}

// Sequential wraps Inclusive for the Scanner interface.
//
// This is the baseline every parallel implementation is compared against.
type Sequential[T Integer] struct{}

// Scan returns the inclusive prefix sum of input.
func (Sequential[T]) Scan(input []T) []T {
	return Inclusive(input)
}
