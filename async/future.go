package async

import (
	"context"
	"sync"

	smithy "github.com/awslabs/aws-query-go"
)

// Void is the value of futures of operations without a result.
type Void struct{}

// Future is the handle of a task submitted to an Executor. Its outcome is
// fixed once, the first of the task completing, the task being rejected, or
// the future being canceled before the task started.
type Future[T any] struct {
	done chan struct{}

	mu       sync.Mutex
	started  bool
	resolved bool
	value    T
	err      error

	cancel context.CancelFunc
}

func newFuture[T any](cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// Done returns a channel closed when the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get blocks until the future is resolved, returning the task's value and
// error. Returns the context's error if ctx is done first, the task is not
// affected.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the outcome without blocking. ok is false while the future
// is unresolved.
func (f *Future[T]) TryGet() (value T, ok bool, err error) {
	select {
	case <-f.done:
		return f.value, true, f.err
	default:
		var zero T
		return zero, false, nil
	}
}

// Cancel requests cancellation of the task. A task that has not started is
// never run and the future resolves with a *smithy.CanceledError. A running
// task has its context canceled and resolves with whatever it returns.
// Returns false if the future was already resolved.
func (f *Future[T]) Cancel() bool {
	f.mu.Lock()
	if f.resolved {
		f.mu.Unlock()
		return false
	}
	started := f.started
	if !started {
		var zero T
		f.resolveLocked(zero, &smithy.CanceledError{Err: context.Canceled})
	}
	f.mu.Unlock()

	f.cancel()
	return true
}

// start marks the task as running. Returns false if the future was resolved
// before the task started.
func (f *Future[T]) start() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved {
		return false
	}
	f.started = true
	return true
}

func (f *Future[T]) resolve(v T, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved {
		return
	}
	f.resolveLocked(v, err)
}

func (f *Future[T]) resolveLocked(v T, err error) {
	f.value, f.err = v, err
	f.resolved = true
	close(f.done)
}

// Submit schedules fn on the executor, returning its Future. The context
// passed to fn is derived from ctx and canceled when the future is canceled
// or resolved. A task rejected by the executor resolves the future with the
// executor's error, Submit itself never fails.
func Submit[T any](ctx context.Context, exec Executor, fn func(context.Context) (T, error)) *Future[T] {
	taskCtx, cancel := context.WithCancel(ctx)
	f := newFuture[T](cancel)

	err := exec.Go(func() {
		defer cancel()
		if !f.start() {
			return
		}
		v, err := fn(taskCtx)
		f.resolve(v, err)
	})
	if err != nil {
		var zero T
		f.resolve(zero, err)
		cancel()
	}

	return f
}

// SubmitVoid schedules fn on the executor, returning a Future resolved with
// Void on success.
func SubmitVoid(ctx context.Context, exec Executor, fn func(context.Context) error) *Future[Void] {
	return Submit(ctx, exec, func(ctx context.Context) (Void, error) {
		return Void{}, fn(ctx)
	})
}
