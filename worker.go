package threadpool

import (
	"fmt"
	"sync"

	"github.com/ygrebnov/threadpool/jobqueue"
	"github.com/ygrebnov/threadpool/observe"
)

// worker owns one dedicated goroutine bound to the shared consuming end of
// the job queue. Its id (1..N) exists for diagnostics only; jobs are never
// routed to a specific worker.
type worker struct {
	id   int
	done chan struct{}

	// err records an abnormal termination (a panic escaping a job).
	// Written once by the worker goroutine before done is closed; read only
	// after <-done.
	err error
}

// startWorker spawns the worker goroutine. ready is released once the worker
// has entered its receive loop, so the pool constructor can guarantee every
// worker is running before it returns.
func startWorker(id int, queue *jobqueue.Queue[Job], obs observe.Observer, ready *sync.WaitGroup) *worker {
	w := &worker{id: id, done: make(chan struct{})}
	go w.run(queue, obs, ready)
	return w
}

// run loops: block on Receive, execute the job to completion, repeat until
// the closed signal. A panic escaping a job terminates this worker only; the
// queue and the remaining workers are unaffected, and the pool does not
// respawn the worker.
func (w *worker) run(queue *jobqueue.Queue[Job], obs observe.Observer, ready *sync.WaitGroup) {
	defer close(w.done)
	defer func() {
		if r := recover(); r != nil {
			w.err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanicked, w.id, r)
		}
		obs.WorkerStopped(w.id, w.err)
	}()

	obs.WorkerStarted(w.id)
	ready.Done()

	for {
		job, ok := queue.Receive()
		if !ok {
			return
		}

		obs.JobStarted(w.id)
		job()
	}
}
