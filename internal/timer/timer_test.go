package timer_test

import (
	"testing"
	"time"

	"github.com/randomizedcoder/prefix-scan-benchmarks/internal/timer"
)

func testMeasure(t *testing.T, tm timer.Timer, name string) {
	t.Helper()

	calls := 0
	sleep := 20 * time.Millisecond

	elapsed := tm.Measure(func() {
		calls++
		time.Sleep(sleep)
	})

	if calls != 1 {
		t.Errorf("%s: expected fn to run exactly once, ran %d times", name, calls)
	}
	if elapsed < sleep {
		t.Errorf("%s: expected elapsed >= %v, got %v", name, sleep, elapsed)
	}
	// Generous upper bound; catches a broken clock, not scheduler jitter.
	if elapsed > sleep+time.Second {
		t.Errorf("%s: expected elapsed near %v, got %v", name, sleep, elapsed)
	}
}

func TestWall(t *testing.T) {
	testMeasure(t, timer.Wall{}, "Wall")
}

func TestMonotonic(t *testing.T) {
	testMeasure(t, timer.Monotonic{}, "Monotonic")
}

func TestWallAndMonotonicAgree(t *testing.T) {
	work := func() { time.Sleep(30 * time.Millisecond) }

	w := timer.Wall{}.Measure(work)
	m := timer.Monotonic{}.Measure(work)

	diff := w - m
	if diff < 0 {
		diff = -diff
	}
	if diff > 20*time.Millisecond {
		t.Errorf("Wall (%v) and Monotonic (%v) diverge by %v", w, m, diff)
	}
}

func TestMillis(t *testing.T) {
	if got := timer.Millis(1500 * time.Microsecond); got != 1.5 {
		t.Errorf("expected 1.5, got %f", got)
	}
	if got := timer.Millis(2 * time.Second); got != 2000 {
		t.Errorf("expected 2000, got %f", got)
	}
}
