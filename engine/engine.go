// Package engine wraps a composed validator with configuration, metrics,
// and batch execution. The core validators stay pure; everything
// observable lives here.
package engine

import (
	"context"
	"time"

	typeguard "github.com/typeguard/validator"
	"github.com/typeguard/validator/pkg/logger"
	"github.com/typeguard/validator/worker"
)

// Engine is an instrumented validator. It satisfies typeguard.Validator,
// so it composes anywhere a plain validator does.
type Engine struct {
	root    typeguard.Validator
	options *typeguard.Options
	metrics *typeguard.Metrics
	log     *logger.Logger
}

// New creates an Engine around root. A nil root is a construction-time
// programmer error.
func New(root typeguard.Validator, opts ...typeguard.Option) *Engine {
	if root == nil {
		panic("engine: root validator must not be nil")
	}

	options := typeguard.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Engine{
		root:    root,
		options: options,
		metrics: typeguard.NewMetrics(),
		log:     options.Logger,
	}
}

// Validate runs the root validator, recording metrics when enabled.
func (e *Engine) Validate(value any) typeguard.Result {
	start := time.Now()
	res := e.root.Validate(value)

	if e.options.CollectMetrics {
		e.metrics.RecordValidation(time.Since(start), res.Valid())
	}
	if !res.Valid() {
		e.log.Debug("value rejected: %s", res.Err().Message())
	}
	return res
}

// Check reports whether value conforms, discarding error detail.
func (e *Engine) Check(value any) bool {
	if e.options.CollectMetrics {
		e.metrics.RecordCheck()
	}
	return e.Validate(value).Valid()
}

// Assert validates value and returns a *typeguard.AssertionError on
// rejection.
func (e *Engine) Assert(value any, context ...string) error {
	if e.options.CollectMetrics {
		e.metrics.RecordAssert()
	}
	res := e.Validate(value)
	if res.Valid() {
		return nil
	}
	ctx := typeguard.DefaultAssertContext
	if len(context) > 0 && context[0] != "" {
		ctx = context[0]
	}
	return &typeguard.AssertionError{Context: ctx, Cause: res.Err()}
}

// ValidateBatch validates values in parallel according to the engine's
// worker and failure-budget options. Metrics cover every value validated.
func (e *Engine) ValidateBatch(ctx context.Context, values []any) *worker.BatchResult {
	bv := worker.NewBatchValidator(e, e.options.WorkerCount)
	bv.MaxFailures = e.options.MaxFailures
	return bv.ValidateBatch(ctx, values)
}

// Metrics returns the engine's metrics.
func (e *Engine) Metrics() *typeguard.Metrics {
	return e.metrics
}
