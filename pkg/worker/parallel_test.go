package worker

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestParallelForVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10000
	var counts [n]atomic.Int32

	ParallelFor(0, n, func(i int, s *State) {
		counts[i].Add(1)
	})

	for i := range counts {
		if counts[i].Load() != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, counts[i].Load())
		}
	}
}

func TestParallelForEmptyRangeDoesNothing(t *testing.T) {
	called := false
	ParallelFor(5, 5, func(i int, s *State) { called = true })
	ParallelFor(5, 2, func(i int, s *State) { called = true })
	if called {
		t.Errorf("ParallelFor invoked action on an empty or inverted range")
	}
}

func TestParallelForGivesEachWorkerAPrivateState(t *testing.T) {
	var total atomic.Int64
	var owners sync.Map // worker index -> *State
	ParallelFor(0, 1000, func(i int, s *State) {
		if s == nil {
			t.Errorf("nil state passed to action")
			return
		}
		if prev, loaded := owners.LoadOrStore(s.Index, s); loaded && prev.(*State) != s {
			t.Errorf("worker %d was handed two different states", s.Index)
		}
		total.Add(int64(s.Rand.IntN(1)))
	})
	if total.Load() != 0 {
		t.Errorf("unexpected accumulation: %d", total.Load())
	}

	rands := make(map[any]any)
	owners.Range(func(k, v any) bool {
		r := v.(*State).Rand
		if other, dup := rands[r]; dup {
			t.Errorf("workers %v and %v share one random generator", other, k)
		}
		rands[r] = k
		return true
	})
}
