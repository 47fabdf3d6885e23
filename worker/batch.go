package worker

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	typeguard "github.com/typeguard/validator"
)

// BatchValidator validates a slice of values against one validator,
// fanning out across workers for larger batches.
type BatchValidator struct {
	validator typeguard.Validator
	workers   int

	// MaxFailures stops the batch after this many rejected values.
	// Zero means unlimited.
	MaxFailures int
}

// NewBatchValidator creates a batch validator over v.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewBatchValidator(v typeguard.Validator, workers int) *BatchValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchValidator{
		validator: v,
		workers:   workers,
	}
}

// ValidateBatch validates values, preserving input order in the results.
// Jobs not reached before ctx is cancelled or the failure budget is spent
// are left out of the result.
func (bv *BatchValidator) ValidateBatch(ctx context.Context, values []any) *BatchResult {
	if len(values) == 0 {
		return &BatchResult{Results: []JobResult{}}
	}

	// Parallelism is not worth the fan-out for tiny batches.
	if len(values) <= 2 || bv.workers == 1 {
		return bv.validateSequential(ctx, values)
	}

	return bv.validateParallel(ctx, values)
}

func (bv *BatchValidator) validateSequential(ctx context.Context, values []any) *BatchResult {
	br := &BatchResult{
		Results:   make([]JobResult, 0, len(values)),
		TotalJobs: len(values),
	}

	for i, v := range values {
		select {
		case <-ctx.Done():
			return br
		default:
		}

		start := time.Now()
		res := bv.validator.Validate(v)
		elapsed := time.Since(start)

		br.Results = append(br.Results, JobResult{
			ID:       strconv.Itoa(i),
			Result:   res,
			Duration: elapsed,
		})
		br.CompletedJobs++
		br.TotalDuration += elapsed
		if !res.Valid() {
			br.RejectedJobs++
			if bv.MaxFailures > 0 && br.RejectedJobs >= bv.MaxFailures {
				return br
			}
		}
	}

	return br
}

func (bv *BatchValidator) validateParallel(ctx context.Context, values []any) *BatchResult {
	workers := bv.workers
	if workers > len(values) {
		workers = len(values)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	indexes := make(chan int)
	slots := make([]JobResult, len(values))
	var completed, rejected atomic.Int64

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				start := time.Now()
				res := bv.validator.Validate(values[i])
				elapsed := time.Since(start)

				slots[i] = JobResult{
					ID:       strconv.Itoa(i),
					Result:   res,
					Duration: elapsed,
				}
				completed.Add(1)
				if !res.Valid() {
					n := rejected.Add(1)
					if bv.MaxFailures > 0 && n >= int64(bv.MaxFailures) {
						cancel()
					}
				}
			}
		}()
	}

feed:
	for i := range values {
		select {
		case <-runCtx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	br := &BatchResult{
		Results:       make([]JobResult, 0, len(values)),
		TotalJobs:     len(values),
		CompletedJobs: int(completed.Load()),
		RejectedJobs:  int(rejected.Load()),
	}
	for _, r := range slots {
		if r.ID == "" {
			continue // never reached
		}
		br.Results = append(br.Results, r)
		br.TotalDuration += r.Duration
	}
	return br
}
