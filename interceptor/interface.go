package interceptor

import (
	"context"
)

// Operation is a resumable unit of asynchronous work producing a single result.
//
// An operation is driven by exactly one goroutine at a time. The driver calls
// Poll, and when the operation is not ready yet, waits on Wake before polling
// again. Close must be called exactly once when the driver lets go of the
// operation, whether or not it resolved.
type Operation[Resp any] interface {
	// Poll advances the operation without blocking.
	// done is false while the operation is pending; resp and err are only
	// meaningful once done is true.
	Poll(ctx context.Context) (resp Resp, done bool, err error)

	// Wake returns a channel that becomes readable when a subsequent Poll
	// may make progress.
	Wake() <-chan struct{}

	// Close disposes of the operation and releases its resources.
	Close()
}

// Handler is the request-processing capability wrapped by a Layer.
//
// Any type that can report readiness and turn a request into an Operation can
// be instrumented; InstrumentedHandler implements Handler itself so layers stack.
type Handler[Req, Resp any] interface {
	// Ready blocks until the handler can accept a request.
	Ready(ctx context.Context) error

	// Call starts handling req and returns the operation producing its result.
	Call(ctx context.Context, req Req) Operation[Resp]
}

// Sink receives observation records.
//
// Emit is called concurrently from many operations and must not rely on any
// coordination between them. An error returned by Emit is logged by the
// interceptor and never reaches the caller of the wrapped handler.
type Sink interface {
	Emit(ctx context.Context, rec Record) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(ctx context.Context, rec Record) error

// Emit calls f(ctx, rec).
func (f SinkFunc) Emit(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}

type discardSink struct{}

func (discardSink) Emit(context.Context, Record) error { return nil }
