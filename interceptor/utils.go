package interceptor

import (
	"context"
	"runtime/debug"
	"sync"
)

// Drive polls op until it resolves or ctx is done, and always closes it.
//
// Between polls Drive waits on op.Wake. When ctx ends first the operation is
// polled once more and, if still pending, abandoned with ctx.Err(). Close runs on every exit path,
// including a panic raised while polling.
func Drive[Resp any](ctx context.Context, op Operation[Resp]) (Resp, error) {
	defer op.Close()

	for {
		resp, done, err := op.Poll(ctx)
		if done {
			return resp, err
		}

		select {
		case <-ctx.Done():
			// The operation may have resolved together with the cancellation.
			if resp, done, err := op.Poll(ctx); done {
				return resp, err
			}
			var zero Resp
			return zero, ctx.Err()
		case <-op.Wake():
		}
	}
}

// HandlerFunc adapts a blocking function to the Handler interface.
// It is always ready; every call runs the function through Go.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Ready always returns nil.
func (f HandlerFunc[Req, Resp]) Ready(context.Context) error {
	return nil
}

// Call returns a lazy operation running f(ctx, req).
func (f HandlerFunc[Req, Resp]) Call(ctx context.Context, req Req) Operation[Resp] {
	return Go(ctx, func(ctx context.Context) (Resp, error) {
		return f(ctx, req)
	})
}

// Go returns an operation that runs fn in its own goroutine.
//
// fn does not start until the operation is first polled. Closing the
// operation cancels the context passed to fn without waiting for it to
// return. A panic in fn resolves the operation with a *PanicError.
func Go[Resp any](ctx context.Context, fn func(ctx context.Context) (Resp, error)) Operation[Resp] {
	return &goOperation[Resp]{
		parent: ctx,
		fn:     fn,
		done:   make(chan struct{}),
	}
}

type goOperation[Resp any] struct {
	parent context.Context
	fn     func(ctx context.Context) (Resp, error)

	start  sync.Once
	cancel context.CancelFunc
	done   chan struct{}

	resp Resp
	err  error
}

func (g *goOperation[Resp]) run() {
	ctx, cancel := context.WithCancel(g.parent)
	g.cancel = cancel

	go func() {
		defer close(g.done)
		defer func() {
			if r := recover(); r != nil {
				g.err = &PanicError{Value: r, Stack: debug.Stack()}
			}
		}()
		g.resp, g.err = g.fn(ctx)
	}()
}

func (g *goOperation[Resp]) Poll(context.Context) (Resp, bool, error) {
	g.start.Do(g.run)

	select {
	case <-g.done:
		return g.resp, true, g.err
	default:
		var zero Resp
		return zero, false, nil
	}
}

func (g *goOperation[Resp]) Wake() <-chan struct{} {
	return g.done
}

func (g *goOperation[Resp]) Close() {
	// Prevent a later Poll from starting fn.
	g.start.Do(func() {})
	if g.cancel != nil {
		g.cancel()
	}
}
