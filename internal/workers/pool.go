// Package workers runs row-parallel jobs for the sandbox's offline rasters.
package workers

import (
	"context"
	"runtime"
	"sync"
)

// Pool manages a fixed set of worker goroutines fed from a job queue
type Pool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a pool; numWorkers <= 0 means one worker per CPU.
// The pool does nothing until Start.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &Pool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// NewStartedPool creates a pool and starts its workers
func NewStartedPool(numWorkers int) *Pool {
	p := NewPool(numWorkers)
	p.Start()
	return p
}

// Workers reports the worker count
func (p *Pool) Workers() int {
	return p.numWorkers
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	for {
		select {
		case job := <-p.jobQueue:
			job()
			p.wg.Done()
		case <-p.quit:
			return
		}
	}
}

// Submit queues a job. Blocks while the queue is full.
func (p *Pool) Submit(job func()) {
	p.wg.Add(1)
	p.jobQueue <- job
}

// Wait blocks until every submitted job has finished
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Stop shuts the workers down. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
}

// ParallelFor runs fn for every index in [start, end), split into one chunk per
// worker, and waits for all of them. Chunks stop early once ctx is done.
func (p *Pool) ParallelFor(ctx context.Context, start, end int, fn func(int)) error {
	if start >= end {
		return ctx.Err()
	}

	total := end - start
	chunkSize := max(1, (total+p.numWorkers-1)/p.numWorkers)

	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		p.Submit(func() {
			for j := chunkStart; j < chunkEnd; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					fn(j)
				}
			}
		})
	}
	p.Wait()
	return ctx.Err()
}
