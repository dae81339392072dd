package threadpool

import "errors"

const Namespace = "threadpool"

var (
	ErrInvalidSize   = errors.New(Namespace + ": pool size must be a positive integer")
	ErrNilJob        = errors.New(Namespace + ": cannot execute a nil job")
	ErrClosed        = errors.New(Namespace + ": pool is shut down")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrWorkerPanicked marks a worker terminated by a panic escaping a job.
	// It surfaces from Shutdown, wrapped with the affected worker id.
	ErrWorkerPanicked = errors.New(Namespace + ": worker terminated by job panic")
)
