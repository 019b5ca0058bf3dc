package scan

import "sync"

// chunkJob describes one worker's slice of the input.
//
// Workers receive their parameters as a value struct rather than
// capturing loop variables, so there is no ambiguity about what each
// goroutine sees.
type chunkJob struct {
	index int // chunk index, also the carry slot
	start int // inclusive
	end   int // exclusive, clamped to len(input)
}

// Chunked is the two-phase chunked scan-with-carry algorithm.
//
// Phase 1 partitions the input into Threads contiguous chunks of size
// ceil(n/Threads) and scans each chunk independently in parallel,
// recording the chunk's total (its carry). After a full join, the
// carry list itself is scanned sequentially. Phase 2 then adds, in
// parallel, each chunk's preceding carry prefix to every element the
// chunk wrote. Chunk 0 is never adjusted.
//
// Goroutines are spawned per Scan call and joined before it returns;
// there is no persistent pool. The output slice is the only shared
// mutable state and every goroutine writes a disjoint index range, so
// the WaitGroup joins between phases are the only synchronization.
type Chunked[T Integer] struct {
	// Threads is the requested worker count. Values <= 1 run the
	// sequential scan directly.
	Threads int

	// Threshold is the minimum input length worth parallelizing.
	// Zero means DefaultThreshold.
	Threshold int
}

// NewChunked creates a Chunked scanner with the default threshold.
func NewChunked[T Integer](threads int) *Chunked[T] {
	return &Chunked[T]{Threads: threads, Threshold: DefaultThreshold}
}

// Scan returns the inclusive prefix sum of input.
//
// The result is identical to Inclusive(input) for every Threads value,
// including zero, negative, and values exceeding len(input).
func (c *Chunked[T]) Scan(input []T) []T {
	n := len(input)
	output := make([]T, n)

	threshold := c.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	// Sequential fallback. Threads <= 1 also covers zero and negative
	// counts, which would otherwise corrupt the chunk-size division.
	if c.Threads <= 1 || n < threshold {
		inclusiveInto(input, output)
		return output
	}

	threads := c.Threads
	chunkSize := (n + threads - 1) / threads

	// Carry slots default to zero, which is the identity for addition.
	// Chunks whose start lies past the end of the input never touch
	// their slot, so trailing entries stay zero and the carry-prefix
	// scan below remains correct.
	carries := make([]T, threads)

	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		job := chunkJob{
			index: t,
			start: t * chunkSize,
			end:   min((t+1)*chunkSize, n),
		}
		if job.start >= n {
			continue
		}
		wg.Add(1)
		go func(job chunkJob) {
			defer wg.Done()
			inclusiveInto(input[job.start:job.end], output[job.start:job.end])
			carries[job.index] = output[job.end-1]
		}(job)
	}
	wg.Wait()

	// Every chunk's offset depends on the full carry list, so this
	// runs single-threaded between the two parallel phases.
	prefixes := Inclusive(carries)

	for t := 1; t < threads; t++ {
		job := chunkJob{
			index: t,
			start: t * chunkSize,
			end:   min((t+1)*chunkSize, n),
		}
		if job.start >= n {
			continue
		}
		wg.Add(1)
		go func(job chunkJob) {
			defer wg.Done()
			offset := prefixes[job.index-1]
			for i := job.start; i < job.end; i++ {
				output[i] += offset
			}
		}(job)
	}
	wg.Wait()

	return output
}
