package threadpool

import (
	"errors"
	"strconv"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/threadpool/jobqueue"
)

// Job is a single deferred unit of work: a zero-argument, no-return callable
// capturing all state it needs. A job is executed exactly once by exactly
// one worker and carries no identity, no result channel, and no ordering
// guarantee beyond arrival order on the queue.
type Job func()

// Pool is a fixed-size worker pool. Its size is set at construction and
// never changes; workers are not respawned if a job panic terminates one.
// Methods are safe for concurrent use.
type Pool struct {
	// noCopy prevents accidental copying of the pool.
	nc noCopy

	config  *config
	queue   *jobqueue.Queue[Job]
	workers []*worker

	// mu gates submission against shutdown: Execute holds the read side
	// while sending, Shutdown takes the write side before closing the
	// queue, so a job admitted before shutdown can never be dropped.
	mu     sync.RWMutex
	closed bool

	shutdownOnce sync.Once
	shutdownErr  error
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the presence
// of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a pool of exactly size workers.
//
// size must be positive; New returns ErrInvalidSize otherwise — a zero-size
// pool is a construction contract violation, never coerced to one worker.
// Every worker has entered its receive loop by the time New returns, so no
// job submitted afterwards can be lost to a worker that has not started.
func New(size int, opts ...Option) (*Pool, error) {
	if size < 1 {
		return nil, errorc.With(ErrInvalidSize, errorc.String("size", strconv.Itoa(size)))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	p := &Pool{
		config:  &cfg,
		queue:   jobqueue.New[Job](),
		workers: make([]*worker, 0, size),
	}

	var ready sync.WaitGroup
	ready.Add(size)
	for id := 1; id <= size; id++ {
		p.workers = append(p.workers, startWorker(id, p.queue, cfg.Observer, &ready))
	}
	ready.Wait()

	cfg.Observer.PoolStarted(cfg.Name, size)
	return p, nil
}

// Execute submits a job for execution by exactly one worker and returns
// immediately. There is no completion handle; the caller cannot await the
// job or retrieve a result.
//
// Execute never blocks against worker availability: the queue is unbounded,
// so a saturated pool costs memory, not submitter latency. Submitting after
// Shutdown has begun returns ErrClosed; the job is not executed.
func (p *Pool) Execute(job Job) error {
	if job == nil {
		return ErrNilJob
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	if err := p.queue.Send(job); err != nil {
		// Unreachable while the read lock is held and closed is false;
		// kept so a queue-side refusal can never drop a job silently.
		return ErrClosed
	}
	return nil
}

// Submit is an alias for Execute.
func (p *Pool) Submit(job Job) error { return p.Execute(job) }

// Size returns the fixed number of workers the pool was constructed with.
func (p *Pool) Size() int { return len(p.workers) }

// Shutdown closes the queue exactly once, lets workers finish the jobs
// already accepted, then joins every worker in id order.
//
// Idempotent: concurrent and repeated calls all block until the first
// completes and return the same result. The returned error aggregates, per
// worker id, any abnormal terminations (ErrWorkerPanicked); one worker
// failing never prevents the rest from being joined. After Shutdown returns,
// the pool is terminal and Execute fails with ErrClosed.
func (p *Pool) Shutdown() error {
	p.shutdownOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		p.config.Observer.ShutdownStarted(p.config.Name)
		p.queue.Close()

		var errs []error
		for _, w := range p.workers {
			<-w.done
			if w.err != nil {
				errs = append(errs, w.err)
			}
		}
		p.shutdownErr = errors.Join(errs...)

		p.config.Observer.ShutdownCompleted(p.config.Name)
	})
	return p.shutdownErr
}
