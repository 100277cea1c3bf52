/*
Package parly provides an in-process worker pool with parallel iteration
over slices.

Worker Pool (pkg/pool):
  - pool: fixed set of worker goroutines sharing one LIFO job queue, with
    fire-and-forget submission and idle-wait barriers

Parallel Iteration (pkg/iterate):
  - Iterate: one job per element, uniform split across workers
  - IterateWeighted: contiguous index ranges balanced by a per-element
    weight function

Instrumentation (pkg/metrics):
  - Prometheus gauges, counters and histograms for pool and iteration activity

Example usage:

	import (
		"github.com/parlygo/parly/pkg/iterate"
		"github.com/parlygo/parly/pkg/pool"
	)

	p := pool.New(4, 0) // 4 workers, tight-spin idle
	defer p.Close()

	p.Submit(func() { doWork() })
	p.WaitForIdle()

	data := loadSamples()
	iterate.Iterate(iterate.Each(func(v *float64) {
		*v = transform(*v)
	}), 0, data) // 0 workers = host core count
*/
package parly
