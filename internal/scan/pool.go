package scan

import "sync"

// poolJob is one unit of work for a ChunkedPool worker.
//
// Phase 2 jobs carry their own offset so workers never read shared
// state that the coordinator writes between phases.
type poolJob[T Integer] struct {
	chunkJob
	phase  int
	offset T
}

// ChunkedPool runs the same two-phase chunked algorithm as Chunked,
// but spawns its workers once per Scan call and feeds both phases'
// jobs through a buffered channel instead of spawning a goroutine per
// chunk per phase.
//
// Chunk geometry is identical to Chunked, so results match the
// sequential scan for every thread count. This implementation exists
// to measure whether reusing goroutines across the two phases beats
// the spawn-per-phase approach.
type ChunkedPool[T Integer] struct {
	// Threads is the requested worker count. Values <= 1 run the
	// sequential scan directly.
	Threads int

	// Threshold is the minimum input length worth parallelizing.
	// Zero means DefaultThreshold.
	Threshold int
}

// NewChunkedPool creates a ChunkedPool scanner with the default threshold.
func NewChunkedPool[T Integer](threads int) *ChunkedPool[T] {
	return &ChunkedPool[T]{Threads: threads, Threshold: DefaultThreshold}
}

// Scan returns the inclusive prefix sum of input.
func (c *ChunkedPool[T]) Scan(input []T) []T {
	n := len(input)
	output := make([]T, n)

	threshold := c.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	if c.Threads <= 1 || n < threshold {
		inclusiveInto(input, output)
		return output
	}

	threads := c.Threads
	chunkSize := (n + threads - 1) / threads
	carries := make([]T, threads)

	jobs := make(chan poolJob[T], threads)
	var phase sync.WaitGroup

	var workers sync.WaitGroup
	for w := 0; w < threads; w++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for job := range jobs {
				switch job.phase {
				case 1:
					inclusiveInto(input[job.start:job.end], output[job.start:job.end])
					carries[job.index] = output[job.end-1]
				case 2:
					for i := job.start; i < job.end; i++ {
						output[i] += job.offset
					}
				}
				phase.Done()
			}
		}()
	}

	enqueue := func(job poolJob[T]) {
		phase.Add(1)
		jobs <- job
	}

	for t := 0; t < threads; t++ {
		start := t * chunkSize
		if start >= n {
			continue
		}
		enqueue(poolJob[T]{
			chunkJob: chunkJob{index: t, start: start, end: min(start+chunkSize, n)},
			phase:    1,
		})
	}
	phase.Wait()

	prefixes := Inclusive(carries)

	for t := 1; t < threads; t++ {
		start := t * chunkSize
		if start >= n {
			continue
		}
		enqueue(poolJob[T]{
			chunkJob: chunkJob{index: t, start: start, end: min(start+chunkSize, n)},
			phase:    2,
			offset:   prefixes[t-1],
		})
	}
	phase.Wait()

	close(jobs)
	workers.Wait()

	return output
}
