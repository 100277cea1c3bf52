// Package metrics provides Prometheus instrumentation for parly components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for parly components.
type Registry struct {
	// Worker Pool Metrics
	WorkerPoolSize   *prometheus.GaugeVec
	WorkerPoolActive *prometheus.GaugeVec
	WorkerPoolQueued *prometheus.GaugeVec
	JobsSubmitted    *prometheus.CounterVec
	JobsExecuted     *prometheus.CounterVec
	JobDuration      *prometheus.HistogramVec

	// Parallel Iteration Metrics
	IterationsTotal   *prometheus.CounterVec
	IterationElements *prometheus.CounterVec
	IterationWorkers  *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by parly components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		WorkerPoolSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "parly",
				Subsystem: "pool",
				Name:      "size",
				Help:      "Current worker pool size",
			},
			[]string{"pool_name"},
		),

		WorkerPoolActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "parly",
				Subsystem: "pool",
				Name:      "active_jobs",
				Help:      "Number of jobs currently executing",
			},
			[]string{"pool_name"},
		),

		WorkerPoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "parly",
				Subsystem: "pool",
				Name:      "queued_jobs",
				Help:      "Number of jobs waiting in the queue",
			},
			[]string{"pool_name"},
		),

		JobsSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "parly",
				Subsystem: "pool",
				Name:      "jobs_submitted_total",
				Help:      "Total number of jobs submitted to the pool",
			},
			[]string{"pool_name"},
		),

		JobsExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "parly",
				Subsystem: "pool",
				Name:      "jobs_executed_total",
				Help:      "Total number of jobs executed by the pool",
			},
			[]string{"pool_name"},
		),

		JobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "parly",
				Subsystem: "pool",
				Name:      "job_duration_seconds",
				Help:      "Time spent executing jobs",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		IterationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "parly",
				Subsystem: "iterate",
				Name:      "iterations_total",
				Help:      "Total number of parallel iteration calls",
			},
			[]string{"mode"},
		),

		IterationElements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "parly",
				Subsystem: "iterate",
				Name:      "elements_total",
				Help:      "Total number of elements visited by parallel iteration",
			},
			[]string{"mode"},
		),

		IterationWorkers: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "parly",
				Subsystem: "iterate",
				Name:      "effective_workers",
				Help:      "Effective worker count used per iteration call",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
			[]string{"mode"},
		),
	}
}
