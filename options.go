package kmeans3d

import (
	"log/slog"
	"math/rand"

	"github.com/hupe1980/kmeans3d/internal/kmeans"
)

// RandSource supplies the randomness used for centroid initialization
// (Perm) and empty-cluster reseeding (Intn). *rand.Rand satisfies it.
type RandSource = kmeans.Source

type options struct {
	rand             RandSource
	metricsCollector MetricsCollector
	logger           *Logger
	rejectNaN        bool
}

// Option configures a clustering run.
type Option func(*options)

// WithRand sets the random source. Pass a seeded source for reproducible
// runs; if nil is passed, a clock-seeded source is used.
func WithRand(src RandSource) Option {
	return func(o *options) {
		o.rand = src
	}
}

// WithSeed is a convenience wrapper for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewSource(seed)) // nolint gosec
	}
}

// WithRejectNaN makes Cluster fail with an InvalidPointError when a point
// has a NaN coordinate. By default such points are accepted and their
// labels are arbitrary.
func WithRejectNaN(reject bool) Option {
	return func(o *options) {
		o.rejectNaN = reject
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans3d.BasicMetricsCollector{}
//	labels, _ := kmeans3d.Cluster(points, 4, 50, kmeans3d.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Iterations: %d\n", stats.ClusterCount, stats.IterationCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans3d.NewJSONLogger(os.Stderr, slog.LevelDebug)
//	labels, _ := kmeans3d.Cluster(points, 4, 50, kmeans3d.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(nil, level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(nil, level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
