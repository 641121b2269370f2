package async

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrPoolShutdown is the error a Pool rejects tasks with once it has been
// shut down.
var ErrPoolShutdown = errors.New("executor has been shut down")

// ErrPoolRunning is returned by Wait when the pool has not been shut down.
var ErrPoolRunning = errors.New("executor must be shut down before waiting")

// Executor runs tasks asynchronously. Go must not block waiting for the task
// to run.
type Executor interface {
	Go(task func()) error
}

// Pool is an Executor for asynchronous tasks. A cached pool runs each task on
// its own goroutine. A bounded pool runs at most its size tasks at once and
// queues the rest, starting them in submission order.
type Pool struct {
	sem *semaphore.Weighted

	mu       sync.Mutex
	queue    []func()
	pending  int
	shutdown bool
	idle     chan struct{}
}

// NewCachedPool returns a Pool without a bound on the number of tasks running
// at once.
func NewCachedPool() *Pool {
	return &Pool{idle: make(chan struct{})}
}

// NewPool returns a Pool running at most size tasks at once. A size less than
// one is treated as one.
func NewPool(size int64) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		sem:  semaphore.NewWeighted(size),
		idle: make(chan struct{}),
	}
}

// Go schedules the task. Returns ErrPoolShutdown if the pool has been shut
// down, the task is not run.
func (p *Pool) Go(task func()) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown {
		return ErrPoolShutdown
	}
	p.pending++

	if p.sem == nil {
		go func() {
			defer p.done()
			task()
		}()
		return nil
	}

	p.queue = append(p.queue, task)
	// a worker holds one unit of the semaphore until the queue is empty
	if p.sem.TryAcquire(1) {
		go p.work()
	}
	return nil
}

func (p *Pool) work() {
	for {
		p.mu.Lock()
		if len(p.queue) == 0 {
			p.sem.Release(1)
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		p.mu.Unlock()

		func() {
			defer p.done()
			task()
		}()
	}
}

func (p *Pool) done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending--
	if p.shutdown && p.pending == 0 {
		close(p.idle)
	}
}

// Shutdown stops the pool from accepting new tasks. Tasks already scheduled
// still run. Shutdown may be called more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shutdown {
		return
	}
	p.shutdown = true
	if p.pending == 0 {
		close(p.idle)
	}
}

// IsShutdown returns if the pool has been shut down.
func (p *Pool) IsShutdown() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shutdown
}

// Wait blocks until every scheduled task has returned, or the context is
// done. The pool must be shut down first, otherwise ErrPoolRunning is
// returned.
func (p *Pool) Wait(ctx context.Context) error {
	if !p.IsShutdown() {
		return ErrPoolRunning
	}

	select {
	case <-p.idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
