package typeguard

import (
	"runtime"

	"github.com/typeguard/validator/pkg/logger"
)

// Option configures an engine built on top of the core validators.
type Option func(*Options)

// Options holds configuration for instrumented validation. The core
// combinators themselves take no configuration; these knobs apply to the
// engine and batch layers wrapped around them.
type Options struct {
	// WorkerCount is the number of workers used for batch validation.
	WorkerCount int

	// MaxFailures stops a batch run after this many rejected values.
	// Use 0 for unlimited.
	MaxFailures int

	// CollectMetrics enables per-validation metrics recording.
	CollectMetrics bool

	// Logger receives debug/trace output. The pure core never logs.
	Logger *logger.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		WorkerCount:    runtime.NumCPU(),
		MaxFailures:    0,
		CollectMetrics: true,
		Logger:         logger.Default(),
	}
}

// WithWorkerCount sets the number of workers for batch validation.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithMaxFailures stops batch validation after the given number of
// rejected values. Use 0 for unlimited.
func WithMaxFailures(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxFailures = n
		}
	}
}

// WithMetrics enables or disables metrics collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}

// WithLogger sets the logger used by the engine.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// FastOptions returns options optimized for throughput: metrics off,
// one worker per CPU.
func FastOptions() []Option {
	return []Option{
		WithMetrics(false),
		WithWorkerCount(runtime.NumCPU()),
	}
}

// DebugOptions returns options useful when diagnosing rejections:
// metrics on and sequential batches so failures arrive in input order.
func DebugOptions() []Option {
	return []Option{
		WithMetrics(true),
		WithWorkerCount(1),
	}
}
