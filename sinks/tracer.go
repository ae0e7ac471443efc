package sinks

import (
	"context"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// TracerSink turns each record into a span named "<METHOD> <PATH>" that
// starts at the record's start and lasts its duration.
type TracerSink struct {
	tracer tracer.Tracer
}

// NewTracerSink returns a sink creating spans with tr.
func NewTracerSink(tr tracer.Tracer) *TracerSink {
	return &TracerSink{tracer: tr}
}

func (s *TracerSink) Emit(ctx context.Context, rec interceptor.Record) error {
	_, span := s.tracer.StartSpanAt(ctx, rec.Request.Method+" "+rec.Request.Path, rec.Start)

	attrs := map[string]interface{}{
		"http.request.method": rec.Request.Method,
		"url.path":            rec.Request.Path,
		"outcome":             rec.Outcome.String(),
	}
	if rec.Response != nil {
		attrs["http.response.status_code"] = rec.Response.StatusCode
	}
	span.SetAttributes(attrs)

	switch rec.Outcome {
	case interceptor.OutcomeFailure:
		span.RecordError(interceptor.ErrRequestFailed)
	case interceptor.OutcomeAbandoned:
		span.RecordError(interceptor.ErrRequestAbandoned)
	}

	span.EndAt(rec.Start.Add(rec.Duration))
	return nil
}
