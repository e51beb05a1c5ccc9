package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs band tasks on a fixed set of goroutines.
//
// All workers pull from one queue. A render submits at most one task per
// worker, so there is nothing to balance beyond first come, first served.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	running atomic.Bool

	// mu orders sends on tasks against Close.
	mu sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// ExecuteAll runs every function in work and returns once all of them
// have finished. On a closed pool the work runs on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for _, fn := range work {
			fn()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(work))
	for _, fn := range work {
		p.tasks <- func() {
			defer done.Done()
			fn()
		}
	}
	p.mu.RUnlock()

	done.Wait()
}

// Close stops the workers after queued work has finished. It is safe to
// call more than once.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
