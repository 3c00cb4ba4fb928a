package accounts

import (
	"context"
	"time"
)

// Pending is the deferred outcome of a directory request. The result becomes
// available once the simulated round trip has elapsed or the request context
// has ended, whichever comes first.
type Pending[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// resolve produces fn's result once after(latency) fires. If ctx ends first
// fn is never called and the result is ctx's error, so an abandoned request
// leaves the directory untouched. With a non-positive latency the result is
// computed before resolve returns.
func resolve[T any](ctx context.Context, latency time.Duration, after func(time.Duration) <-chan time.Time, fn func() (T, error)) *Pending[T] {
	if err := ctx.Err(); err != nil {
		var zero T
		return Resolved(zero, err)
	}

	if latency <= 0 {
		return Resolved(fn())
	}

	p := &Pending[T]{done: make(chan struct{})}

	go func() {
		defer close(p.done)

		select {
		case <-after(latency):
			if err := ctx.Err(); err != nil {
				p.err = err
				return
			}
			p.val, p.err = fn()
		case <-ctx.Done():
			p.err = ctx.Err()
		}
	}()

	return p
}

// Wait blocks until the request has been answered or abandoned. The context
// the request was issued with bounds how long that takes.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	return p.val, p.err
}

// Resolved returns a Pending that is already complete.
func Resolved[T any](val T, err error) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), val: val, err: err}
	close(p.done)
	return p
}
