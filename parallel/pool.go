// Package parallel runs independent jobs on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is a unit of work. A non-nil error counts the job as failed.
type Job func() error

// Stats counts finished jobs.
type Stats struct {
	Processed uint64
	Errors    uint64
}

// Total returns the number of finished jobs.
func (s Stats) Total() uint64 {
	return s.Processed + s.Errors
}

// Pool dispatches jobs to its workers. With a single worker jobs run
// inline on the submitting goroutine.
type Pool struct {
	wg        sync.WaitGroup
	work      chan Job
	processed atomic.Uint64
	errors    atomic.Uint64
	stop      func()
}

// Start returns a pool with numWorkers workers, or GOMAXPROCS workers when
// numWorkers is less than one.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{stop: func() {}}
	if numWorkers > 1 {
		pool.work = make(chan Job, numWorkers)
		for range numWorkers {
			pool.wg.Go(func() {
				for job := range pool.work {
					pool.run(job)
				}
			})
		}
		pool.stop = sync.OnceFunc(func() { close(pool.work) })
	}

	return pool
}

// Go submits job. It blocks while every worker is busy and the queue is
// full. Go must not be called after Wait.
func (p *Pool) Go(job Job) {
	if p.work == nil {
		p.run(job)
		return
	}
	p.work <- job
}

// Wait stops accepting jobs, waits for the submitted ones to finish and
// returns the counters.
func (p *Pool) Wait() Stats {
	p.stop()
	p.wg.Wait()
	return p.Stats()
}

// Stats returns the counters so far.
func (p *Pool) Stats() Stats {
	return Stats{Processed: p.processed.Load(), Errors: p.errors.Load()}
}

func (p *Pool) run(job Job) {
	if err := job(); err != nil {
		p.errors.Add(1)
		return
	}
	p.processed.Add(1)
}
