package worker

import (
	"time"

	typeguard "github.com/typeguard/validator"
)

// Job is one dynamic value queued for validation.
type Job struct {
	// ID correlates this job with its result.
	ID string

	// Value is the materialized dynamic value to validate.
	Value any
}

// JobResult is the outcome of one Job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Result is the validation outcome.
	Result typeguard.Result

	// Duration is the time taken to validate.
	Duration time.Duration
}

// BatchResult aggregates the results of a batch run.
type BatchResult struct {
	// Results holds one entry per completed job.
	Results []JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs that ran to completion.
	CompletedJobs int

	// RejectedJobs is the number of jobs whose value was rejected.
	RejectedJobs int

	// TotalDuration sums the individual validation durations.
	TotalDuration time.Duration
}

// Valid reports whether every completed job accepted its value.
func (br *BatchResult) Valid() bool {
	return br.RejectedJobs == 0
}

// Rejected returns the results whose values were rejected.
func (br *BatchResult) Rejected() []JobResult {
	var out []JobResult
	for _, r := range br.Results {
		if !r.Result.Valid() {
			out = append(out, r)
		}
	}
	return out
}
