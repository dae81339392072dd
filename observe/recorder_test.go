package observe

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorder_CollectsLifecycleEvents(t *testing.T) {
	rec := NewRecorder()

	rec.PoolStarted("p", 2)
	rec.WorkerStarted(1)
	rec.WorkerStarted(2)
	rec.JobStarted(1)
	rec.JobStarted(2)
	rec.JobStarted(1)
	rec.ShutdownStarted("p")
	rec.WorkerStopped(1, nil)
	stopErr := errors.New("panic")
	rec.WorkerStopped(2, stopErr)
	rec.ShutdownCompleted("p")

	require.Equal(t, 2, rec.PoolSize())
	require.ElementsMatch(t, []int{1, 2}, rec.StartedWorkers())
	require.Equal(t, 3, rec.JobsStarted())

	stopped := rec.StoppedWorkers()
	require.NoError(t, stopped[1])
	require.ErrorIs(t, stopped[2], stopErr)

	begun, done := rec.ShutdownCounts()
	require.Equal(t, 1, begun)
	require.Equal(t, 1, done)
}

func TestRecorder_ConcurrentUse(t *testing.T) {
	rec := NewRecorder()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for id := 1; id <= workers; id++ {
		go func() {
			defer wg.Done()
			rec.WorkerStarted(id)
			for range 100 {
				rec.JobStarted(id)
			}
			rec.WorkerStopped(id, nil)
		}()
	}
	wg.Wait()

	require.Len(t, rec.StartedWorkers(), workers)
	require.Len(t, rec.StoppedWorkers(), workers)
	require.Equal(t, workers*100, rec.JobsStarted())
}

func TestRecorder_SnapshotsAreCopies(t *testing.T) {
	rec := NewRecorder()
	rec.WorkerStopped(1, nil)

	snapshot := rec.StoppedWorkers()
	snapshot[2] = errors.New("mutated")

	require.Len(t, rec.StoppedWorkers(), 1)
}
