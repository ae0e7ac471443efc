package tracer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// spanImpl adapts an OpenTelemetry span to Span.
type spanImpl struct {
	span traceSpan.Span
}

func (s *spanImpl) End() {
	s.span.End()
}

func (s *spanImpl) EndAt(end time.Time) {
	s.span.End(traceSpan.WithTimestamp(end))
}

func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	s.span.SetAttributes(attributes...)
}

func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a span starting now as a child of the span in ctx.
//
// Example:
//
//	ctx, span := tr.StartSpan(ctx, "resolve-upstream")
//	defer span.End()
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := t.tracer.Tracer(instrumentationName).Start(ctx, name)
	return ctx, &spanImpl{span: otSpan}
}

// StartSpanAt creates a span whose start timestamp is start.
//
// Example:
//
//	_, span := tr.StartSpanAt(ctx, "GET /", rec.Start)
//	span.EndAt(rec.Start.Add(rec.Duration))
func (t *TracerClient) StartSpanAt(ctx context.Context, name string, start time.Time) (context.Context, Span) {
	ctx, otSpan := t.tracer.Tracer(instrumentationName).Start(ctx, name, traceSpan.WithTimestamp(start))
	return ctx, &spanImpl{span: otSpan}
}

// GetCarrier returns the W3C trace context of ctx ("traceparent" and, when
// present, "tracestate" and "baggage") for an outgoing request.
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext continues the trace described by carrier, typically
// the headers of an incoming request.
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
