package gateway

import (
	"context"

	perr "navline/internal/platform/errors"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many blocking provider calls run at once so request
// goroutines can stay cancelable while a slow library call finishes elsewhere
type Pool struct {
	sem  *semaphore.Weighted
	size int64
}

// NewPool builds a pool with n slots, minimum 1
func NewPool(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{sem: semaphore.NewWeighted(int64(n)), size: int64(n)}
}

// Size returns the slot count
func (p *Pool) Size() int { return int(p.size) }

// Run executes fn on a pool slot. It returns when fn finishes or ctx is done;
// an abandoned fn keeps its slot until it returns
func Run[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeUnavailable, "worker pool busy")
	}

	type out struct {
		v   T
		err error
	}
	ch := make(chan out, 1)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				ch <- out{err: perr.PanicErrf("worker panic: %v", r)}
			}
		}()
		v, err := fn(ctx)
		ch <- out{v: v, err: err}
	}()

	select {
	case o := <-ch:
		return o.v, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
