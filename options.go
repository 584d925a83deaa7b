package goalseek

import "math"

const (
	// DefaultThreshold is the interval half-width and error magnitude below
	// which the seek stops narrowing.
	DefaultThreshold = 1e-10

	// DefaultIterationLimit caps the number of compute calls per seek.
	DefaultIterationLimit = 10_000_000

	// DefaultScale divides the midpoint before it is handed to the compute
	// function, so bounds are expressed in percent.
	DefaultScale = 100.0

	// DefaultConcurrency is the number of problems SeekAll solves at once.
	DefaultConcurrency = 4
)

type options struct {
	threshold        float64
	iterationLimit   int
	scale            float64
	concurrency      int
	logger           *Logger
	metricsCollector MetricsCollector
	observer         Observer
}

// Option configures a Seeker.
type Option func(*options)

func defaultOptions() options {
	return options{
		threshold:        DefaultThreshold,
		iterationLimit:   DefaultIterationLimit,
		scale:            DefaultScale,
		concurrency:      DefaultConcurrency,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// WithThreshold sets the convergence threshold. It must be positive and finite.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithIterationLimit sets the maximum number of iterations. It must be positive.
//
// Lowering the limit is mostly useful in tests: a compute function that keeps
// returning NaN spins until the limit is exhausted.
func WithIterationLimit(limit int) Option {
	return func(o *options) {
		o.iterationLimit = limit
	}
}

// WithScale sets the divisor applied to the midpoint before calling the
// compute function. Use 1 to pass the midpoint through unchanged.
func WithScale(scale float64) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithConcurrency sets how many problems SeekAll solves in parallel.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger configures structured logging for seeks.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := goalseek.NewJSONLogger(slog.LevelDebug)
//	s, _ := goalseek.New(goalseek.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
//	metrics := &goalseek.BasicMetricsCollector{}
//	s, _ := goalseek.New(goalseek.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithObserver registers a callback invoked after every iteration.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

func (o *options) validate() error {
	if o.threshold <= 0 || math.IsNaN(o.threshold) || math.IsInf(o.threshold, 0) {
		return &InvalidOptionError{Name: "threshold", Value: o.threshold}
	}
	if o.iterationLimit <= 0 {
		return &InvalidOptionError{Name: "iteration limit", Value: o.iterationLimit}
	}
	if o.scale == 0 || math.IsNaN(o.scale) || math.IsInf(o.scale, 0) {
		return &InvalidOptionError{Name: "scale", Value: o.scale}
	}
	if o.concurrency <= 0 {
		return &InvalidOptionError{Name: "concurrency", Value: o.concurrency}
	}
	return nil
}
