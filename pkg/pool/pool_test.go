package pool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/parlygo/parly/internal/testutil"
)

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		wantWorkers int
	}{
		{"explicit count", 3, 3},
		{"single worker", 1, 1},
		{"zero resolves to core count", 0, CoreCount()},
		{"negative clamps to one", -4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewWithConfig(Config{Workers: tt.workers})
			defer p.Close()

			testutil.AssertEqual(t, p.Size(), tt.wantWorkers)
			testutil.AssertEqual(t, p.Pending(), 0)
			testutil.AssertEqual(t, p.Active(), 0)
			testutil.AssertEqual(t, p.Destroying(), false)
		})
	}
}

func TestCoreCount(t *testing.T) {
	testutil.AssertEqual(t, CoreCount() >= 1, true)
}

func TestSubmitExecutesAll(t *testing.T) {
	p := New(4, 0)
	defer p.Close()

	const jobs = 200
	var executed int32
	for i := 0; i < jobs; i++ {
		p.Submit(func() {
			atomic.AddInt32(&executed, 1)
		})
	}

	p.WaitForIdle()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(jobs))
	testutil.AssertEqual(t, p.Pending(), 0)
	testutil.AssertEqual(t, p.Active(), 0)
}

func TestBusyWaitForIdle(t *testing.T) {
	p := New(2, 0)
	defer p.Close()

	const jobs = 50
	var executed int32
	for i := 0; i < jobs; i++ {
		p.Submit(func() {
			atomic.AddInt32(&executed, 1)
		})
	}

	p.BusyWaitForIdle()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(jobs))
}

func TestWaitForIdleOnIdlePool(t *testing.T) {
	p := New(2, 0)
	defer p.Close()

	// Returns immediately when there was never any work.
	p.WaitForIdle()
	p.BusyWaitForIdle()
}

func TestDequeueLIFO(t *testing.T) {
	p := New(1, 0)
	defer p.Close()

	// Occupy the single worker so subsequent jobs stay queued.
	gate := make(chan struct{})
	p.Submit(func() { <-gate })
	testutil.Eventually(t, func() bool { return p.Active() == 1 },
		time.Second, time.Millisecond, "worker did not claim gate job")

	var mu sync.Mutex
	var order []string
	record := func(id string) func() {
		return func() {
			mu.Lock()
			order = append(order, id)
			mu.Unlock()
		}
	}

	p.Submit(record("A"))
	p.Submit(record("B"))
	close(gate)

	p.WaitForIdle()

	mu.Lock()
	defer mu.Unlock()
	testutil.AssertEqual(t, len(order), 2)
	testutil.AssertEqual(t, order[0], "B")
	testutil.AssertEqual(t, order[1], "A")
}

func TestPending(t *testing.T) {
	p := New(1, 0)
	defer p.Close()

	gate := make(chan struct{})
	p.Submit(func() { <-gate })
	testutil.Eventually(t, func() bool { return p.Active() == 1 },
		time.Second, time.Millisecond, "worker did not claim gate job")

	for i := 0; i < 3; i++ {
		p.Submit(func() {})
	}
	testutil.AssertEqual(t, p.Pending(), 3)

	close(gate)
	p.WaitForIdle()
	testutil.AssertEqual(t, p.Pending(), 0)
}

func TestEnqueueBatch(t *testing.T) {
	p := New(3, 0)
	defer p.Close()

	const jobs = 64
	var executed int32
	arena := make([]Job, jobs)
	for i := range arena {
		arena[i] = MakeJob(func() {
			atomic.AddInt32(&executed, 1)
		})
	}

	p.EnqueueBatch(arena)
	p.WaitForIdle()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(jobs))
}

func TestEnqueueBatchEmpty(t *testing.T) {
	p := New(1, 0)
	defer p.Close()

	p.EnqueueBatch(nil)
	testutil.AssertEqual(t, p.Pending(), 0)
}

func TestEnqueueExternallyOwnedJob(t *testing.T) {
	p := New(1, 0)
	defer p.Close()

	var executed int32
	j := MakeJob(func() { atomic.AddInt32(&executed, 1) })
	p.Enqueue(&j)

	p.WaitForIdle()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(1))
}

func TestCloseRunsQueuedJobs(t *testing.T) {
	p := New(2, 0)

	const jobs = 100
	var executed int32
	for i := 0; i < jobs; i++ {
		p.Submit(func() {
			atomic.AddInt32(&executed, 1)
		})
	}

	// Workers drain the queue before observing the destroy flag, and Close
	// joins them, so every job queued before Close has run when it returns.
	p.Close()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(jobs))
}

func TestDestroyingIsMonotonic(t *testing.T) {
	p := New(2, 0)
	testutil.AssertEqual(t, p.Destroying(), false)

	p.Close()
	testutil.AssertEqual(t, p.Destroying(), true)

	// Idempotent: a second Close waits for the same join.
	p.Close()
	testutil.AssertEqual(t, p.Destroying(), true)
}

func TestIdleIntervalStillPicksUpWork(t *testing.T) {
	p := New(2, time.Millisecond)
	defer p.Close()

	// Let workers settle into their sleep cycle before submitting.
	time.Sleep(5 * time.Millisecond)

	var executed int32
	p.Submit(func() { atomic.AddInt32(&executed, 1) })

	p.WaitForIdle()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(1))
}

func TestConcurrentSubmit(t *testing.T) {
	p := New(4, 0)
	defer p.Close()

	const goroutines = 8
	const jobsPerGoroutine = 50

	var executed int32
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < jobsPerGoroutine; i++ {
				p.Submit(func() {
					atomic.AddInt32(&executed, 1)
				})
			}
		}()
	}
	wg.Wait()

	p.WaitForIdle()
	testutil.AssertEqual(t, atomic.LoadInt32(&executed), int32(goroutines*jobsPerGoroutine))
}

func TestJobExecutesOutsideQueueLock(t *testing.T) {
	p := New(2, 0)
	defer p.Close()

	// A job that touches the queue would deadlock if workers held the queue
	// lock during execution.
	done := make(chan struct{})
	p.Submit(func() {
		_ = p.Pending()
		p.Submit(func() {})
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job could not use the pool from inside its own body")
	}
	p.WaitForIdle()
}
