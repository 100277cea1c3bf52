package iterate

import (
	"time"

	"github.com/parlygo/parly/pkg/metrics"
	"github.com/parlygo/parly/pkg/pool"
)

// Config holds configuration options for a single iteration call. The zero
// value is ready to use: host core count, tight-spin idle, no metrics.
type Config struct {
	// Workers is the requested worker count. Zero resolves to
	// pool.CoreCount(); the effective count never exceeds the element count.
	Workers int

	// IdleInterval is forwarded to the ephemeral pool. Iteration pools are
	// never expected to idle, so the default tight spin is usually right.
	IdleInterval time.Duration

	// Name labels the ephemeral pool's metrics. Defaults to the iteration
	// mode ("uniform" or "weighted").
	Name string

	// Metrics is the registry used for Prometheus instrumentation.
	// Nil disables instrumentation.
	Metrics *metrics.Registry
}

// Iterate calls fn once for every element of seq, in parallel across
// min(workers, len(seq)) workers. A workers value of zero uses the host
// core count. The call is synchronous: it returns only after every element
// has been visited. An empty seq returns immediately with no pool built.
func Iterate[T any](fn Visitor[T], workers int, seq []T) {
	IterateWithConfig(Config{Workers: workers}, fn, seq)
}

// IterateWithConfig is Iterate with an explicit configuration.
func IterateWithConfig[T any](cfg Config, fn Visitor[T], seq []T) {
	n := len(seq)
	if n == 0 {
		return
	}
	workers := effectiveWorkers(cfg.Workers, n)

	// One externally-owned job per element. The arena outlives the pool:
	// the pool only holds pointers into it and is joined before return.
	jobs := make([]pool.Job, n)
	for i := range seq {
		jobs[i] = pool.MakeJob(func() {
			fn(&seq[i], i, seq)
		})
	}

	p := pool.NewWithConfig(poolConfig(cfg, workers, "uniform"))
	p.EnqueueBatch(jobs)
	p.Close()

	observe(cfg.Metrics, "uniform", n, workers)
}

// IterateWeighted calls fn once for every element of seq, splitting the
// slice into min(workers, len(seq)) contiguous ranges of approximately
// equal total weight. weight estimates the cost of one element. The call is
// synchronous and an empty seq returns immediately.
func IterateWeighted[T any](fn Visitor[T], weight WeightFunc[T], workers int, seq []T) {
	IterateWeightedWithConfig(Config{Workers: workers}, fn, weight, seq)
}

// IterateWeightedWithConfig is IterateWeighted with an explicit
// configuration.
func IterateWeightedWithConfig[T any](cfg Config, fn Visitor[T], weight WeightFunc[T], seq []T) {
	n := len(seq)
	if n == 0 {
		return
	}
	workers := effectiveWorkers(cfg.Workers, n)
	ranges := partition(seq, weight, workers)

	// One externally-owned job per range, each sweeping its span.
	jobs := make([]pool.Job, len(ranges))
	for ri, r := range ranges {
		jobs[ri] = pool.MakeJob(func() {
			for i := r.Start; i < r.End; i++ {
				fn(&seq[i], i, seq)
			}
		})
	}

	p := pool.NewWithConfig(poolConfig(cfg, workers, "weighted"))
	for i := range jobs {
		p.Enqueue(&jobs[i])
	}
	p.Close()

	observe(cfg.Metrics, "weighted", n, workers)
}

// effectiveWorkers clamps the requested count to [1, elements].
func effectiveWorkers(requested, elements int) int {
	if requested == 0 {
		requested = pool.CoreCount()
	}
	if requested > elements {
		requested = elements
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}

func poolConfig(cfg Config, workers int, mode string) pool.Config {
	name := cfg.Name
	if name == "" {
		name = mode
	}
	return pool.Config{
		Workers:      workers,
		IdleInterval: cfg.IdleInterval,
		Name:         name,
		Metrics:      cfg.Metrics,
	}
}

func observe(reg *metrics.Registry, mode string, elements, workers int) {
	if reg == nil {
		return
	}
	reg.IterationsTotal.WithLabelValues(mode).Inc()
	reg.IterationElements.WithLabelValues(mode).Add(float64(elements))
	reg.IterationWorkers.WithLabelValues(mode).Observe(float64(workers))
}
