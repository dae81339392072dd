// Package observe defines the observability hook for the worker pool.
//
// The pool hard-codes no output; callers inject an Observer to receive
// lifecycle events (worker start/stop, job pickup, shutdown). The package
// ships three implementations: NoopObserver (the default), LogObserver
// (structured logging via logrus), and Recorder (in-memory, for tests and
// lightweight introspection).
package observe

// Observer receives pool lifecycle events.
// Implementations must be safe for concurrent use: workers emit events from
// their own goroutines.
//
// Keep this interface minimal and stable. If new capabilities are needed
// later, introduce separate optional interfaces rather than expanding this
// surface.
type Observer interface {
	// PoolStarted is emitted once, after every worker has been spawned.
	PoolStarted(pool string, size int)

	// WorkerStarted is emitted by each worker as it enters its receive loop.
	WorkerStarted(worker int)

	// JobStarted is emitted by a worker immediately before executing a
	// dequeued job.
	JobStarted(worker int)

	// WorkerStopped is emitted when a worker's loop terminates. err is nil
	// for a clean stop (queue closed and drained) and non-nil when a panic
	// escaping a job killed the worker.
	WorkerStopped(worker int, err error)

	// ShutdownStarted is emitted when the pool stops accepting jobs.
	ShutdownStarted(pool string)

	// ShutdownCompleted is emitted once every worker has been joined.
	ShutdownCompleted(pool string)
}
