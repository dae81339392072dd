package threadpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/threadpool/observe"
)

func TestNew_StartsExactlyNWorkers(t *testing.T) {
	for _, size := range []int{1, 2, 4, 16} {
		rec := observe.NewRecorder()

		p, err := New(size, WithObserver(rec))
		require.NoError(t, err)

		// Every worker has entered its receive loop before New returns.
		require.Len(t, rec.StartedWorkers(), size)
		require.Equal(t, size, rec.PoolSize())
		require.Equal(t, size, p.Size())

		require.NoError(t, p.Shutdown())
	}
}

func TestNew_WorkerIDsAreSequential(t *testing.T) {
	rec := observe.NewRecorder()

	p, err := New(3, WithObserver(rec))
	require.NoError(t, err)
	defer p.Shutdown()

	require.ElementsMatch(t, []int{1, 2, 3}, rec.StartedWorkers())
}

func TestNew_RejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		p, err := New(size)
		require.ErrorIs(t, err, ErrInvalidSize)
		require.Nil(t, p)
	}
}

func TestExecute_EveryJobRunsExactlyOnce(t *testing.T) {
	const jobs = 1000

	p, err := New(8)
	require.NoError(t, err)

	var counter atomic.Int64
	for range jobs {
		require.NoError(t, p.Execute(func() { counter.Add(1) }))
	}

	require.NoError(t, p.Shutdown())
	require.Equal(t, int64(jobs), counter.Load())
}

func TestExecute_ConcurrentProducers(t *testing.T) {
	const (
		producers       = 10
		jobsPerProducer = 200
	)

	p, err := New(4)
	require.NoError(t, err)

	var counter atomic.Int64
	var wg sync.WaitGroup
	wg.Add(producers)
	for range producers {
		go func() {
			defer wg.Done()
			for range jobsPerProducer {
				require.NoError(t, p.Execute(func() { counter.Add(1) }))
			}
		}()
	}
	wg.Wait()

	require.NoError(t, p.Shutdown())
	require.Equal(t, int64(producers*jobsPerProducer), counter.Load())
}

func TestExecute_NilJob(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)
	defer p.Shutdown()

	require.ErrorIs(t, p.Execute(nil), ErrNilJob)
}

func TestExecute_AfterShutdownFails(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)
	require.NoError(t, p.Shutdown())

	ran := make(chan struct{}, 1)
	err = p.Execute(func() { ran <- struct{}{} })
	require.ErrorIs(t, err, ErrClosed)

	select {
	case <-ran:
		t.Fatal("job submitted after shutdown was executed")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmit_AliasesExecute(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)

	var counter atomic.Int64
	require.NoError(t, p.Submit(func() { counter.Add(1) }))
	require.NoError(t, p.Shutdown())

	require.Equal(t, int64(1), counter.Load())
	require.ErrorIs(t, p.Submit(func() {}), ErrClosed)
}

func TestShutdown_Idempotent(t *testing.T) {
	rec := observe.NewRecorder()

	p, err := New(3, WithObserver(rec))
	require.NoError(t, err)

	first := p.Shutdown()
	second := p.Shutdown()
	require.NoError(t, first)
	require.Equal(t, first, second)

	begun, done := rec.ShutdownCounts()
	require.Equal(t, 1, begun)
	require.Equal(t, 1, done)
	require.Len(t, rec.StoppedWorkers(), 3)
}

func TestShutdown_ConcurrentCalls(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	wg.Add(callers)
	for range callers {
		go func() {
			defer wg.Done()
			require.NoError(t, p.Shutdown())
		}()
	}
	wg.Wait()
}

func TestShutdown_WaitsForInFlightJobs(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)

	var counter atomic.Int64
	for range 4 {
		require.NoError(t, p.Execute(func() {
			time.Sleep(30 * time.Millisecond)
			counter.Add(1)
		}))
	}

	require.NoError(t, p.Shutdown())
	// Shutdown returns only after every accepted job has run to completion.
	require.Equal(t, int64(4), counter.Load())
}

func TestPool_SlowJobDoesNotBlockOthers(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		out []string
	)
	appendOut := func(s string) {
		mu.Lock()
		out = append(out, s)
		mu.Unlock()
	}

	require.NoError(t, p.Execute(func() {
		time.Sleep(50 * time.Millisecond)
		appendOut("A")
	}))
	require.NoError(t, p.Execute(func() { appendOut("B") }))

	require.NoError(t, p.Shutdown())

	mu.Lock()
	defer mu.Unlock()
	require.ElementsMatch(t, []string{"A", "B"}, out)
}

func TestPool_SingleWorkerPreservesSubmissionOrder(t *testing.T) {
	p, err := New(1)
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		out []int
	)
	for i := range 5 {
		require.NoError(t, p.Execute(func() {
			mu.Lock()
			out = append(out, i)
			mu.Unlock()
		}))
	}

	require.NoError(t, p.Shutdown())

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{0, 1, 2, 3, 4}, out)
}

func TestPool_JobPanicTerminatesOnlyThatWorker(t *testing.T) {
	rec := observe.NewRecorder()

	p, err := New(2, WithObserver(rec))
	require.NoError(t, err)

	require.NoError(t, p.Execute(func() { panic("job blew up") }))

	// The surviving worker keeps executing jobs.
	var counter atomic.Int64
	for range 10 {
		require.NoError(t, p.Execute(func() { counter.Add(1) }))
	}

	err = p.Shutdown()
	require.ErrorIs(t, err, ErrWorkerPanicked)
	require.Contains(t, err.Error(), "job blew up")
	require.Equal(t, int64(10), counter.Load())

	var abnormal int
	for _, stopErr := range rec.StoppedWorkers() {
		if stopErr != nil {
			abnormal++
		}
	}
	require.Equal(t, 1, abnormal)
}

func TestShutdown_ReportsEveryPanickedWorker(t *testing.T) {
	p, err := New(2)
	require.NoError(t, err)

	var released sync.WaitGroup
	released.Add(2)
	for range 2 {
		require.NoError(t, p.Execute(func() {
			released.Done()
			released.Wait() // both workers panic, not just the first
			panic("boom")
		}))
	}

	err = p.Shutdown()
	require.ErrorIs(t, err, ErrWorkerPanicked)
	// One worker failing to stop cleanly never prevents joining the rest.
	require.Contains(t, err.Error(), "worker 1")
	require.Contains(t, err.Error(), "worker 2")
}
