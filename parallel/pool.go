// Package parallel runs indexed jobs on a bounded number of goroutines and
// hands their results back in index order.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a bounded worker count. A Pool of one worker runs every job on the
// calling goroutine.
type Pool struct {
	workers int
}

// New creates a pool of numWorkers workers, or GOMAXPROCS workers when
// numWorkers is below 1.
func New(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: numWorkers}
}

func (p *Pool) Workers() int {
	return p.workers
}

// Map calls fn for every index in [0, n) and returns the results in index
// order. On failure the error of the lowest failing index is returned, and
// jobs with a higher index that have not started yet are skipped.
func Map[T any](p *Pool, n int, fn func(i int) (T, error)) ([]T, error) {
	res := make([]T, n)

	if p.workers == 1 || n < 2 {
		for i := range n {
			v, err := fn(i)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	}

	errs := make([]error, n)
	var failed atomic.Int64
	failed.Store(int64(n))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for range min(p.workers, n) {
		wg.Go(func() {
			for i := range indexes {
				if int64(i) > failed.Load() {
					continue
				}
				v, err := fn(i)
				if err != nil {
					errs[i] = err
					lowerFailed(&failed, int64(i))
					continue
				}
				res[i] = v
			}
		})
	}

	for i := range n {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if i := failed.Load(); i < int64(n) {
		return nil, errs[i]
	}
	return res, nil
}

func lowerFailed(failed *atomic.Int64, i int64) {
	for {
		cur := failed.Load()
		if i >= cur || failed.CompareAndSwap(cur, i) {
			return
		}
	}
}
