package interceptor

import (
	"context"

	"k8s.io/utils/clock"

	"github.com/aalemi-dev/reqobserve/logger"
)

// Option configures collaborators of a Layer.
type Option func(*options)

type options struct {
	sink  Sink
	clock clock.PassiveClock
	log   logger.Logger
}

// WithSink sets the destination of observation records.
// Without it records are discarded.
func WithSink(sink Sink) Option {
	return func(o *options) {
		if sink != nil {
			o.sink = sink
		}
	}
}

// WithClock replaces the wall clock used to time operations.
func WithClock(c clock.PassiveClock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger used to report records that could not be emitted.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Layer builds instrumented handlers. It holds configuration only, is safe to
// copy, and Wrap has no side effects.
type Layer[Req, Resp any] struct {
	cfg              Config
	opts             options
	requestMetadata  func(Req) RequestMetadata
	responseMetadata func(Resp) ResponseMetadata
}

// NewLayer creates a Layer.
//
// requestMetadata and responseMetadata must be total, read-only functions: the
// first runs synchronously on every incoming request, the second on every
// successful response at the moment it resolves. A panic in either one is not
// recovered.
//
// Example:
//
//	layer := interceptor.NewLayer(
//	    interceptor.Config{TimeIncompleteRequests: true},
//	    func(r Request) interceptor.RequestMetadata {
//	        return interceptor.RequestMetadata{Method: r.Verb, Path: r.Target}
//	    },
//	    func(r Response) interceptor.ResponseMetadata {
//	        return interceptor.ResponseMetadata{StatusCode: r.Code}
//	    },
//	    interceptor.WithSink(sink),
//	)
//	handler := layer.Wrap(backend)
func NewLayer[Req, Resp any](
	cfg Config,
	requestMetadata func(Req) RequestMetadata,
	responseMetadata func(Resp) ResponseMetadata,
	opts ...Option,
) Layer[Req, Resp] {
	o := options{
		sink:  discardSink{},
		clock: clock.RealClock{},
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return Layer[Req, Resp]{
		cfg:              cfg,
		opts:             o,
		requestMetadata:  requestMetadata,
		responseMetadata: responseMetadata,
	}
}

// Config returns the configuration the layer was built with.
func (l Layer[Req, Resp]) Config() Config {
	return l.cfg
}

// Logger returns the logger emission faults are reported to. Transport
// adapters use it for faults of their own.
func (l Layer[Req, Resp]) Logger() logger.Logger {
	return l.opts.log
}

// Wrap returns handler instrumented by this layer.
func (l Layer[Req, Resp]) Wrap(handler Handler[Req, Resp]) *InstrumentedHandler[Req, Resp] {
	return &InstrumentedHandler[Req, Resp]{
		layer:   l,
		handler: handler,
	}
}

// InstrumentedHandler wraps a Handler and observes every request it serves.
type InstrumentedHandler[Req, Resp any] struct {
	layer   Layer[Req, Resp]
	handler Handler[Req, Resp]
}

// Ready forwards the readiness check to the wrapped handler.
func (h *InstrumentedHandler[Req, Resp]) Ready(ctx context.Context) error {
	return h.handler.Ready(ctx)
}

// Call implements Handler by returning Observe(ctx, req).
func (h *InstrumentedHandler[Req, Resp]) Call(ctx context.Context, req Req) Operation[Resp] {
	return h.Observe(ctx, req)
}

// Observe extracts the request metadata, delegates req to the wrapped handler
// and returns the observed operation. Nothing is logged or emitted until the
// operation is driven and closed.
func (h *InstrumentedHandler[Req, Resp]) Observe(ctx context.Context, req Req) *ObservedOperation[Resp] {
	meta := h.layer.requestMetadata(req)
	inner := h.handler.Call(ctx, req)

	return &ObservedOperation[Resp]{
		inner:            inner,
		timeIncomplete:   h.layer.cfg.TimeIncompleteRequests,
		clock:            h.layer.opts.clock,
		sink:             h.layer.opts.sink,
		log:              h.layer.opts.log,
		emitCtx:          context.WithoutCancel(ctx),
		request:          meta,
		responseMetadata: h.layer.responseMetadata,
	}
}
