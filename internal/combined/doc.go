// Package combined provides interaction benchmarks that test multiple
// components together.
//
// The benchmarks here measure the carry-collection step of the chunked
// scan under several strategies: indexed writes into a shared slice
// (what the scanners use), a buffered channel, and a sharded lock-free
// MPSC ring. They are more representative of the algorithm's phase-1
// synchronization cost than isolated micro-benchmarks.
package combined
