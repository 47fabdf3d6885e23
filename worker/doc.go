// Package worker provides parallel batch validation on top of the core
// validators.
//
// Two shapes are offered: Pool, a long-lived submit/results worker pool
// for streaming workloads, and BatchValidator, a one-shot helper that
// validates a slice of values and aggregates the outcome. Both share a
// single validator instance across goroutines, which the core's
// statelessness guarantee makes safe.
package worker
