package tracer

import (
	"context"
	"time"
)

// Tracer creates spans and propagates trace context.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a span that starts now. It becomes a child of the span
	// in ctx, if any. The caller must end it.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// StartSpanAt is StartSpan with an explicit start timestamp, used to
	// record operations after they have already completed.
	StartSpanAt(ctx context.Context, name string, start time.Time) (context.Context, Span)

	// GetCarrier extracts the trace context of ctx as W3C headers.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext injects trace context from headers into ctx.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is a single traced operation.
//
// Example:
//
//	ctx, span := tr.StartSpan(ctx, "forward-request")
//	defer span.End()
//
//	if err := forward(ctx); err != nil {
//	    span.RecordError(err)
//	}
type Span interface {
	// End completes the span now.
	End()

	// EndAt completes the span at the given timestamp.
	EndAt(end time.Time)

	// SetAttributes adds attributes. Values other than string, int, int64,
	// float64 and bool are stored with fmt.Sprint.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err and sets the span status to Error.
	RecordError(err error)
}
