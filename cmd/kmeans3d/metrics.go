package main

import (
	"time"

	"github.com/hupe1980/kmeans3d"
	"github.com/prometheus/client_golang/prometheus"
)

// promCollector exports clustering metrics through a Prometheus registry.
type promCollector struct {
	runs       *prometheus.CounterVec
	duration   prometheus.Histogram
	points     prometheus.Gauge
	iterations prometheus.Counter
	reseeds    prometheus.Counter
	movement   prometheus.Gauge
}

var _ kmeans3d.MetricsCollector = (*promCollector)(nil)

func newPromCollector(reg prometheus.Registerer) *promCollector {
	c := &promCollector{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kmeans3d",
				Subsystem: "cluster",
				Name:      "runs_total",
				Help:      "clustering runs by outcome",
			}, []string{"result"}),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "kmeans3d",
				Subsystem: "cluster",
				Name:      "duration_seconds",
				Help:      "clustering run durations",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2.0, 20),
			}),
		points: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "kmeans3d",
				Subsystem: "cluster",
				Name:      "points",
				Help:      "number of points in the last run",
			}),
		iterations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kmeans3d",
				Subsystem: "cluster",
				Name:      "iterations_total",
				Help:      "completed assignment and update rounds",
			}),
		reseeds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "kmeans3d",
				Subsystem: "cluster",
				Name:      "reseeds_total",
				Help:      "empty clusters reseeded from a random point",
			}),
		movement: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "kmeans3d",
				Subsystem: "cluster",
				Name:      "last_movement",
				Help:      "total centroid movement of the latest round",
			}),
	}

	reg.MustRegister(c.runs, c.duration, c.points, c.iterations, c.reseeds, c.movement)
	return c
}

func (c *promCollector) RecordCluster(stats kmeans3d.RunStats, duration time.Duration, err error) {
	c.duration.Observe(duration.Seconds())
	if err != nil {
		c.runs.WithLabelValues("error").Inc()
		return
	}
	c.points.Set(float64(stats.Points))
	if stats.Converged {
		c.runs.WithLabelValues("converged").Inc()
		return
	}
	c.runs.WithLabelValues("capped").Inc()
}

func (c *promCollector) RecordIteration(movement float64, empty int) {
	c.iterations.Inc()
	c.reseeds.Add(float64(empty))
	c.movement.Set(movement)
}
