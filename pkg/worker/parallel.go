// Package worker provides a cooperative work-stealing primitive for
// partitioning an integer range across a fixed pool of goroutines.
package worker

import (
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// State is the per-worker handle passed into each action: a worker
// index and a private random generator seeded from it. Nothing here is
// shared across workers.
type State struct {
	Index int
	Rand  *rand.Rand
}

// ParallelFor partitions [begin, end) across min(runtime.NumCPU(), end-begin)
// workers. Each worker repeatedly claims the next unclaimed index from a
// shared atomic counter and calls action(index, state) -- the state is
// private to that worker for the lifetime of the call. Action must only
// touch memory addressed by its own index; ParallelFor performs no other
// synchronization between actions.
func ParallelFor(begin, end int, action func(index int, state *State)) {
	if end <= begin {
		return
	}

	n := end - begin
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	var current atomic.Int64
	current.Store(int64(begin))

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			state := &State{Index: w, Rand: rand.New(rand.NewPCG(uint64(w), uint64(w)*0x9e3779b97f4a7c15))}
			for {
				idx := int(current.Add(1)) - 1
				if idx >= end {
					return nil
				}
				action(idx, state)
			}
		})
	}
	_ = g.Wait()
}
