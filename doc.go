// Package threadpool provides a fixed-size worker pool executing opaque,
// fire-and-forget jobs on dedicated goroutines with deterministic, ordered
// shutdown.
//
// Construction
//   - New(size, opts ...Option): spawns exactly size workers before
//     returning. size must be positive; New returns ErrInvalidSize otherwise.
//
// Submission
//   - Execute(job) / Submit(job): hand a job to the shared queue and return
//     immediately. There is no result channel and no completion handle; the
//     pool provides throughput, not futures. Submitting to a pool that has
//     begun shutting down returns ErrClosed rather than dropping the job.
//
// Shutdown
//   - Shutdown(): closes the queue exactly once, lets workers drain jobs
//     already accepted, then joins every worker in id order. Idempotent;
//     repeated calls return the same result. The conventional pattern is
//
//	p, err := threadpool.New(4)
//	if err != nil {
//		return err
//	}
//	defer p.Shutdown()
//
// Failure model
// A panic escaping a job terminates only the worker that ran it. The queue
// stays intact, the remaining workers keep executing, and the pool does not
// respawn the lost worker. Shutdown reports each such termination wrapped
// with the worker id.
//
// Observability
// The pool emits no output of its own. Inject an observe.Observer (for
// example observe.NewLogObserver) via WithObserver to receive worker
// start/stop, job pickup, and shutdown events.
package threadpool
