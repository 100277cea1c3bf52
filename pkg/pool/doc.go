/*
Package pool implements a fixed-size worker pool backed by a mutex-guarded
LIFO job queue.

A pool owns a set of worker goroutines that repeatedly claim the most
recently queued job and execute it. Submission is fire-and-forget: there is
no result channel and no error propagation, and a panic inside a job is not
recovered by the pool. Callers that need recovery wrap it into the job body.

Basic usage:

	p := pool.New(4, 0) // 4 workers, tight-spin idle
	defer p.Close()

	for _, item := range items {
		item := item
		p.Submit(func() { process(item) })
	}
	p.WaitForIdle()

Construction resolves the worker count through pool.CoreCount when zero, and
clamps it to at least one. The idle interval controls how long an idle worker
sleeps between queue checks; zero keeps workers spinning, which trades CPU
for the lowest possible pickup latency and suits short-lived pools that are
never expected to sit idle.

Queue discipline is LIFO: with a single consumer, the job queued last runs
first. No ordering is guaranteed between jobs claimed by different workers.

Waiting:

Two barriers observe the composite idle condition (empty queue and no job
mid-execution). WaitForIdle blocks on a condition variable and is the right
choice for long-running pools. BusyWaitForIdle spins on the same condition,
spending CPU for minimal wakeup latency; prefer it only for short waits on
hot paths.

Shutdown:

Close marks the pool as destroying and joins every worker. The flag is a
liveness signal, not a drain barrier: workers keep claiming jobs while the
queue is non-empty, but a job enqueued concurrently with Close may be left
unexecuted. Close is idempotent and the pool is unusable afterwards.

Externally-owned jobs:

The iteration algorithms in pkg/iterate batch-allocate jobs in a slice arena
and hand the pool pointers into that arena via Enqueue and EnqueueBatch. The
arena must outlive the pool; the pool never retains job pointers past
execution.

Instrumentation:

Config.Metrics attaches a Prometheus registry (see pkg/metrics). Pool size,
active and queued gauges, submission and execution counters and a job
duration histogram are labelled with Config.Name. A nil registry disables
instrumentation entirely.
*/
package pool
