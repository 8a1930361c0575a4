package kmeans3d

import (
	"sync/atomic"
	"time"
)

// RunStats summarizes one clustering run.
type RunStats struct {
	Points     int
	K          int
	Iterations int
	Converged  bool
	Reseeds    int
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCluster is called after each clustering run.
	// duration is the total time taken, err is nil if successful.
	RecordCluster(stats RunStats, duration time.Duration, err error)

	// RecordIteration is called after every assignment + update round.
	// empty is the number of clusters reseeded in that round.
	RecordIteration(movement float64, empty int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCluster(RunStats, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(float64, int)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClusterCount      atomic.Int64
	ClusterErrors     atomic.Int64
	ClusterTotalNanos atomic.Int64
	ConvergedCount    atomic.Int64
	PointsTotal       atomic.Int64
	IterationCount    atomic.Int64
	ReseedCount       atomic.Int64
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(stats RunStats, duration time.Duration, err error) {
	b.ClusterCount.Add(1)
	b.ClusterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ClusterErrors.Add(1)
		return
	}
	b.PointsTotal.Add(int64(stats.Points))
	if stats.Converged {
		b.ConvergedCount.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ float64, empty int) {
	b.IterationCount.Add(1)
	b.ReseedCount.Add(int64(empty))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClusterCount:    b.ClusterCount.Load(),
		ClusterErrors:   b.ClusterErrors.Load(),
		ClusterAvgNanos: b.getAvgClusterNanos(),
		ConvergedCount:  b.ConvergedCount.Load(),
		PointsTotal:     b.PointsTotal.Load(),
		IterationCount:  b.IterationCount.Load(),
		ReseedCount:     b.ReseedCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgClusterNanos() int64 {
	count := b.ClusterCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClusterTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClusterCount    int64
	ClusterErrors   int64
	ClusterAvgNanos int64
	ConvergedCount  int64
	PointsTotal     int64
	IterationCount  int64
	ReseedCount     int64
}
