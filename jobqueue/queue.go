// Package jobqueue implements the multi-producer, multi-consumer handoff
// primitive backing a worker pool: an unbounded FIFO queue whose single
// consuming endpoint is shared by all workers behind a mutex.
//
// Closing the queue is the shutdown signal. Elements accepted before Close
// are still delivered; receivers observe the closed signal only once the
// queue is drained.
package jobqueue

import (
	"errors"
	"sync"

	"github.com/eapache/queue"
)

// ErrClosed is returned by Send after Close. Sending to a closed queue is a
// usage error on the producer side and is never silently swallowed.
var ErrClosed = errors.New("jobqueue: queue is closed")

// Queue is an unbounded MPMC FIFO queue of T.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	buf      *queue.Queue
	closed   bool
}

// New creates an empty open queue.
func New[T any]() *Queue[T] {
	q := &Queue[T]{buf: queue.New()}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Send enqueues v for delivery to exactly one receiver.
// It never blocks the caller; the backing ring buffer grows as needed.
// After Close it returns ErrClosed.
func (q *Queue[T]) Send(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	q.buf.Add(v)
	q.nonEmpty.Signal()
	return nil
}

// Receive blocks until an element is available or the queue is closed and
// drained. The second return value is false only for the closed signal; two
// concurrent receivers can never observe the same element.
func (q *Queue[T]) Receive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.buf.Length() == 0 && !q.closed {
		q.nonEmpty.Wait()
	}

	if q.buf.Length() == 0 {
		var zero T
		return zero, false
	}

	return q.buf.Remove().(T), true
}

// Close disables further sends and wakes every blocked receiver.
// Elements already accepted remain deliverable. Idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.nonEmpty.Broadcast()
}

// Len reports the number of elements awaiting delivery. Diagnostic only;
// the value may be stale by the time the caller acts on it.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Length()
}
