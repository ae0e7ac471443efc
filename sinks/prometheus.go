package sinks

import (
	"context"
	"strconv"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/metrics"
)

// PrometheusSink counts requests and records their durations on a
// MetricsCollector.
//
// Metrics:
//
//	<namespace>_requests_total{method,path,code,outcome}
//	<namespace>_request_duration_seconds{method,path,outcome}
//
// code is empty for requests without response metadata.
//
// The path label is the raw request path unless WithPathLabel maps it. Every
// distinct value is a new series, so servers exposed to arbitrary paths
// should map them to route templates.
type PrometheusSink struct {
	requests  metrics.Counter
	duration  metrics.Histogram
	pathLabel PathLabelFunc
}

// PathLabelFunc maps a request path to the value of the path label,
// e.g. "/users/42" to "/users/{id}".
type PathLabelFunc func(path string) string

// PrometheusOption configures a PrometheusSink.
type PrometheusOption func(*PrometheusSink)

// WithPathLabel sets the function producing the path label.
func WithPathLabel(fn PathLabelFunc) PrometheusOption {
	return func(s *PrometheusSink) {
		if fn != nil {
			s.pathLabel = fn
		}
	}
}

// NewPrometheusSink registers the request metrics on collector.
// It panics if they are already registered.
func NewPrometheusSink(collector metrics.MetricsCollector, namespace string, opts ...PrometheusOption) *PrometheusSink {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	s := &PrometheusSink{
		requests: collector.CreateCounter(
			namespace+"_requests_total",
			"Number of observed requests.",
			[]string{"method", "path", "code", "outcome"},
		),
		duration: collector.CreateHistogram(
			namespace+"_request_duration_seconds",
			"Duration of observed requests in seconds.",
			[]string{"method", "path", "outcome"},
			metrics.DefaultDurationBuckets,
		),
		pathLabel: func(path string) string { return path },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PrometheusSink) Emit(_ context.Context, rec interceptor.Record) error {
	code := ""
	if rec.Response != nil {
		code = strconv.Itoa(rec.Response.StatusCode)
	}
	outcome := rec.Outcome.String()
	path := s.pathLabel(rec.Request.Path)

	s.requests.WithLabelValues(rec.Request.Method, path, code, outcome).Inc()
	s.duration.WithLabelValues(rec.Request.Method, path, outcome).Observe(rec.Duration.Seconds())
	return nil
}
