package observe

import (
	"sync"
)

// Recorder is an in-memory Observer. It is concurrency-safe and suitable for
// tests, examples, and lightweight introspection.
type Recorder struct {
	mu sync.Mutex

	poolStarted   int
	poolSize      int
	jobsStarted   int
	started       map[int]struct{}
	stopped       map[int]error
	shutdownBegun int
	shutdownDone  int
}

// NewRecorder constructs an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		started: make(map[int]struct{}),
		stopped: make(map[int]error),
	}
}

func (r *Recorder) PoolStarted(_ string, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.poolStarted++
	r.poolSize = size
}

func (r *Recorder) WorkerStarted(worker int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started[worker] = struct{}{}
}

func (r *Recorder) JobStarted(_ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobsStarted++
}

func (r *Recorder) WorkerStopped(worker int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped[worker] = err
}

func (r *Recorder) ShutdownStarted(_ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdownBegun++
}

func (r *Recorder) ShutdownCompleted(_ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdownDone++
}

// StartedWorkers returns the ids of workers that entered their receive loop.
func (r *Recorder) StartedWorkers() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.started))
	for id := range r.started {
		ids = append(ids, id)
	}
	return ids
}

// StoppedWorkers returns, per stopped worker id, the termination error
// (nil for a clean stop).
func (r *Recorder) StoppedWorkers() map[int]error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int]error, len(r.stopped))
	for id, err := range r.stopped {
		out[id] = err
	}
	return out
}

// JobsStarted returns the number of job pickups observed.
func (r *Recorder) JobsStarted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.jobsStarted
}

// PoolSize returns the size announced by PoolStarted, or zero if the pool
// has not started.
func (r *Recorder) PoolSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.poolSize
}

// ShutdownCounts returns how many ShutdownStarted and ShutdownCompleted
// events were observed.
func (r *Recorder) ShutdownCounts() (begun, done int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdownBegun, r.shutdownDone
}
