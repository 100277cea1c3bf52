package pool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/parlygo/parly/pkg/metrics"
)

// Config holds configuration options for creating a pool.
type Config struct {
	// Workers is the number of worker goroutines.
	// Zero resolves to CoreCount(); values below 1 are clamped to 1.
	Workers int

	// IdleInterval is how long an idle worker sleeps between queue checks.
	// Zero keeps idle workers spinning. Non-zero values suit pools that are
	// expected to sit idle for long stretches.
	IdleInterval time.Duration

	// Name labels this pool's metrics. Defaults to "pool".
	Name string

	// Metrics is the registry used for Prometheus instrumentation.
	// Nil disables instrumentation.
	Metrics *metrics.Registry
}

// Pool is a fixed set of worker goroutines sharing one LIFO job queue.
type Pool struct {
	workers      int
	idleInterval time.Duration

	mu      sync.Mutex
	cond    *sync.Cond
	pending []*Job

	// active counts jobs claimed but not yet finished. Incremented under mu
	// at claim time so the composite idle check (pending and active both
	// zero) is consistent; decremented outside the lock after execution.
	active atomic.Int64

	// destroying is monotonic: once set it is never cleared.
	destroying atomic.Bool
	closeOnce  sync.Once
	wg         sync.WaitGroup

	name     string
	registry *metrics.Registry
}

// CoreCount reports the host's available hardware parallelism. It is the
// single external query used whenever a worker count of zero is requested.
func CoreCount() int {
	return runtime.NumCPU()
}

// New creates a pool with the given worker count and idle interval.
// A worker count of zero resolves to CoreCount().
func New(workers int, idleInterval time.Duration) *Pool {
	return NewWithConfig(Config{
		Workers:      workers,
		IdleInterval: idleInterval,
	})
}

// NewWithConfig creates a pool from cfg. Workers start immediately and run
// until Close is called.
func NewWithConfig(cfg Config) *Pool {
	workers := cfg.Workers
	if workers == 0 {
		workers = CoreCount()
	}
	if workers < 1 {
		workers = 1
	}

	name := cfg.Name
	if name == "" {
		name = "pool"
	}

	p := &Pool{
		workers:      workers,
		idleInterval: cfg.IdleInterval,
		name:         name,
		registry:     cfg.Metrics,
	}
	p.cond = sync.NewCond(&p.mu)

	if p.registry != nil {
		p.registry.WorkerPoolSize.WithLabelValues(p.name).Set(float64(workers))
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for a single worker goroutine. It claims the most
// recently queued job, executes it outside the queue lock, and loops. An
// empty queue check falls through to the destroying flag; a worker only
// terminates when it finds no work and the pool is shutting down.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		if j := p.take(); j != nil {
			p.run(j)
			continue
		}

		if p.destroying.Load() {
			return
		}

		if p.idleInterval > 0 {
			time.Sleep(p.idleInterval)
		} else {
			runtime.Gosched()
		}
	}
}

// take claims the last queued job, or returns nil if the queue is empty.
func (p *Pool) take() *Job {
	p.mu.Lock()
	n := len(p.pending)
	if n == 0 {
		p.mu.Unlock()
		return nil
	}
	j := p.pending[n-1]
	p.pending[n-1] = nil
	p.pending = p.pending[:n-1]
	p.active.Add(1)
	p.mu.Unlock()

	if p.registry != nil {
		p.registry.WorkerPoolQueued.WithLabelValues(p.name).Set(float64(n - 1))
		p.registry.WorkerPoolActive.WithLabelValues(p.name).Inc()
	}
	return j
}

func (p *Pool) run(j *Job) {
	start := time.Now()
	j.Execute()

	if p.registry != nil {
		p.registry.JobDuration.WithLabelValues(p.name).Observe(time.Since(start).Seconds())
		p.registry.JobsExecuted.WithLabelValues(p.name).Inc()
		p.registry.WorkerPoolActive.WithLabelValues(p.name).Dec()
	}

	if p.active.Add(-1) == 0 {
		// Possibly idle now; wake any WaitForIdle callers. The predicate is
		// re-checked under the lock, so a spurious wake is harmless.
		p.mu.Lock()
		if len(p.pending) == 0 {
			p.cond.Broadcast()
		}
		p.mu.Unlock()
	}
}

// Submit adds a function to the pool to be executed by the next available
// worker. Fire-and-forget: no handle, no result, no error propagation.
// Submitting to a pool that is already destroying is not rejected, but the
// job may never run.
func (p *Pool) Submit(fn func()) {
	p.Enqueue(NewJob(fn))
}

// Enqueue appends one externally-owned job to the queue. The job storage
// must remain valid until the job has executed or the pool is closed.
func (p *Pool) Enqueue(j *Job) {
	p.mu.Lock()
	p.pending = append(p.pending, j)
	n := len(p.pending)
	p.mu.Unlock()

	if p.registry != nil {
		p.registry.JobsSubmitted.WithLabelValues(p.name).Inc()
		p.registry.WorkerPoolQueued.WithLabelValues(p.name).Set(float64(n))
	}
}

// EnqueueBatch appends every job in the arena under a single lock
// acquisition, minimizing contention when submitting large batches. The
// arena must outlive the pool.
func (p *Pool) EnqueueBatch(jobs []Job) {
	if len(jobs) == 0 {
		return
	}

	p.mu.Lock()
	if cap(p.pending)-len(p.pending) < len(jobs) {
		grown := make([]*Job, len(p.pending), len(p.pending)+len(jobs))
		copy(grown, p.pending)
		p.pending = grown
	}
	for i := range jobs {
		p.pending = append(p.pending, &jobs[i])
	}
	n := len(p.pending)
	p.mu.Unlock()

	if p.registry != nil {
		p.registry.JobsSubmitted.WithLabelValues(p.name).Add(float64(len(jobs)))
		p.registry.WorkerPoolQueued.WithLabelValues(p.name).Set(float64(n))
	}
}

// Pending returns the current number of queued jobs.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// Active returns the number of jobs currently executing.
func (p *Pool) Active() int {
	return int(p.active.Load())
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return p.workers
}

// Destroying reports whether Close has been called.
func (p *Pool) Destroying() bool {
	return p.destroying.Load()
}

// WaitForIdle blocks until the queue is empty and no job is mid-execution.
// It waits on a condition variable and spends no CPU while blocked. Calling
// it on a closed pool that still holds queued jobs will never return.
func (p *Pool) WaitForIdle() {
	p.mu.Lock()
	for len(p.pending) > 0 || p.active.Load() > 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// BusyWaitForIdle spins until the queue is empty and no job is
// mid-execution. It trades CPU for the lowest possible return latency;
// prefer WaitForIdle on long-running pools.
func (p *Pool) BusyWaitForIdle() {
	for p.Pending() > 0 || p.active.Load() > 0 {
		runtime.Gosched()
	}
}

// Close marks the pool as destroying and joins every worker. Workers drain
// the queue naturally before observing the flag, but Close makes no drain
// guarantee for jobs enqueued concurrently with it. Idempotent; later calls
// wait for the same join.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.destroying.Store(true)
	})
	p.wg.Wait()

	if p.registry != nil {
		p.registry.WorkerPoolSize.WithLabelValues(p.name).Set(0)
	}
}
