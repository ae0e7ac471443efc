package sinks

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aalemi-dev/reqobserve/interceptor"
)

// OTelSink records requests on OpenTelemetry instruments:
// a "http.server.request.count" counter and a "http.server.request.duration"
// histogram in seconds.
type OTelSink struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTelSink creates the instruments on meter.
func NewOTelSink(meter metric.Meter) (*OTelSink, error) {
	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of observed requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of observed requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &OTelSink{requests: requests, duration: duration}, nil
}

func (s *OTelSink) Emit(ctx context.Context, rec interceptor.Record) error {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", rec.Request.Method),
		attribute.String("url.path", rec.Request.Path),
		attribute.String("outcome", rec.Outcome.String()),
	}
	if rec.Response != nil {
		attrs = append(attrs, attribute.Int("http.response.status_code", rec.Response.StatusCode))
	}

	opt := metric.WithAttributes(attrs...)
	s.requests.Add(ctx, 1, opt)
	s.duration.Record(ctx, rec.Duration.Seconds(), opt)
	return nil
}
