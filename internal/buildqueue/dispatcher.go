package buildqueue

import (
	"context"
	"errors"
)

// ErrDispatcherClosed indicates a Do call on a closed Dispatcher.
var ErrDispatcherClosed = errors.New("dispatcher closed")

type task struct {
	f    func() error
	done chan error
}

// Dispatcher runs queue operations on a fixed set of worker goroutines.
// A slow or lock-contended queue operation then only occupies a worker,
// not the goroutine handling the request.
type Dispatcher struct {
	tasks  chan task
	closed chan struct{}
}

func NewDispatcher(workers int) *Dispatcher {
	d := &Dispatcher{
		tasks:  make(chan task),
		closed: make(chan struct{}),
	}
	for range workers {
		go d.work()
	}
	return d
}

func (d *Dispatcher) work() {
	for {
		select {
		case t := <-d.tasks:
			t.done <- t.f()
		case <-d.closed:
			return
		}
	}
}

// Do runs f on a worker and waits for it to finish. It returns the context's
// error if the context is done before a worker picks f up or before f
// finishes; a picked-up f still runs to completion.
func (d *Dispatcher) Do(ctx context.Context, f func() error) error {
	t := task{f: f, done: make(chan error, 1)}

	select {
	case d.tasks <- t:
	case <-d.closed:
		return ErrDispatcherClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the workers. Tasks already picked up run to completion.
// It is not safe to call concurrently with itself.
func (d *Dispatcher) Close() {
	close(d.closed)
}
