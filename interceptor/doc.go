// Package interceptor times requests served by an arbitrary asynchronous
// handler and emits exactly one observation record per request.
//
// # Overview
//
// A Layer holds configuration and produces an InstrumentedHandler around any
// Handler. For each request the InstrumentedHandler extracts RequestMetadata,
// delegates to the wrapped handler and returns an ObservedOperation that the
// caller drives to completion:
//
//	layer := interceptor.NewLayer(cfg, requestMeta, responseMeta,
//	    interceptor.WithSink(sink),
//	    interceptor.WithLogger(log),
//	)
//	handler := layer.Wrap(backend)
//
//	op := handler.Observe(ctx, req)
//	resp, err := interceptor.Drive[Response](ctx, op)
//
// # Exactly-once emission
//
// An ObservedOperation starts its timer on the first Poll and emits its record
// from Close. Close is reached on every path the request can end on:
//
//   - success: record with ResponseMetadata
//   - handler error: record without ResponseMetadata, only with TimeIncompleteRequests
//   - abandonment (the driver stops polling): same as handler error
//   - never polled: nothing is emitted
//
// Close is idempotent, so a second disposal never produces a second record.
// Drive defers Close; drivers written by hand must do the same.
//
// # Sinks
//
// Records go to a Sink. Sink errors and panics are logged through the
// configured logger and never reach the caller of the wrapped handler. The
// sinks package provides writers for text, zap, Prometheus, OpenTelemetry, Kafka and
// the observability.Observer interface.
//
// # Thread Safety
//
// Layer and InstrumentedHandler are safe for concurrent use. An
// ObservedOperation belongs to the single goroutine driving it.
package interceptor
