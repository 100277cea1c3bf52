package pool

// Job is a single schedulable unit of work. Bound arguments are captured by
// the wrapped closure. A Job is executed exactly once by exactly one worker;
// re-enqueueing an already-executed Job is undefined.
//
// Ad-hoc submission via Submit allocates one boxed Job per call. Bulk
// callers (pkg/iterate) allocate a []Job arena and enqueue pointers into it,
// so the arena storage must outlive the pool that drains it.
type Job struct {
	fn func()
}

// MakeJob builds a Job value, for placement into a caller-owned arena.
func MakeJob(fn func()) Job {
	return Job{fn: fn}
}

// NewJob builds a boxed Job.
func NewJob(fn func()) *Job {
	return &Job{fn: fn}
}

// Execute runs the job body. Called by exactly one worker.
func (j *Job) Execute() {
	j.fn()
}
