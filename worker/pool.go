package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	typeguard "github.com/typeguard/validator"
)

// Pool manages worker goroutines that validate submitted values in
// parallel. Sharing one validator across workers is sound because
// validators are stateless and safe for concurrent use.
type Pool struct {
	workers   int
	jobs      chan Job
	results   chan JobResult
	validator typeguard.Validator
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closed    atomic.Bool

	// mu orders sends on jobs against closing it: submitters hold the
	// read lock, Close holds the write lock around close(p.jobs).
	mu sync.RWMutex

	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	jobsRejected  atomic.Uint64
}

// NewPool creates a pool validating against v with the specified number
// of workers. If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(v typeguard.Validator, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:   workers,
		jobs:      make(chan Job, workers*2),
		results:   make(chan JobResult, workers*2),
		validator: v,
		ctx:       ctx,
		cancel:    cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		start := time.Now()
		res := p.validator.Validate(job.Value)
		elapsed := time.Since(start)

		p.jobsCompleted.Add(1)
		if !res.Valid() {
			p.jobsRejected.Add(1)
		}

		select {
		case p.results <- JobResult{ID: job.ID, Result: res, Duration: elapsed}:
		case <-p.ctx.Done():
			return
		}
	}
}

// Submit queues a job, blocking while the queue is full.
// Returns false once the pool is closed.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- job:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// TrySubmit queues a job without blocking.
// Returns false if the queue is full or the pool is closed.
func (p *Pool) TrySubmit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobs <- job:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel delivering job results.
func (p *Pool) Results() <-chan JobResult {
	return p.results
}

// Close shuts down the pool, discarding any results not yet consumed,
// and waits for all workers to finish.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	// Cancel first so a submitter blocked on a full queue releases the
	// read lock before the jobs channel is closed under the write lock.
	p.cancel()
	p.mu.Lock()
	close(p.jobs)
	p.mu.Unlock()

	// Drain in the background so workers blocked on the results channel
	// can exit.
	done := make(chan struct{})
	go func() {
		for range p.results {
		}
		close(done)
	}()

	p.wg.Wait()
	close(p.results)
	<-done
}

// CloseAndWait stops accepting jobs, lets the queued ones finish, and
// returns the collected batch result.
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	// Start consuming results before closing the queue: workers then
	// never stall on the results channel, so a submitter blocked on a
	// full queue drains out and releases the read lock.
	br := &BatchResult{}
	done := make(chan struct{})
	go func() {
		for r := range p.results {
			br.Results = append(br.Results, r)
			br.CompletedJobs++
			if !r.Result.Valid() {
				br.RejectedJobs++
			}
			br.TotalDuration += r.Duration
		}
		close(done)
	}()

	p.mu.Lock()
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.results)
	<-done
	p.cancel()

	br.TotalJobs = int(p.jobsSubmitted.Load())
	return br
}

// Stats returns the submitted, completed, and rejected job counts.
func (p *Pool) Stats() (submitted, completed, rejected uint64) {
	return p.jobsSubmitted.Load(), p.jobsCompleted.Load(), p.jobsRejected.Load()
}
