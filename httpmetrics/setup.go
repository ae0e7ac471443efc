package httpmetrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/sinks"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// Middleware observes every request served by the handlers it wraps.
type Middleware struct {
	layer    interceptor.Layer[Exchange, Response]
	tracer   tracer.Tracer
	inFlight metrics.Gauge
}

// NewMiddleware creates a Middleware. opts set the sink, clock and logger of
// the underlying interceptor.Layer.
func NewMiddleware(cfg Config, opts ...interceptor.Option) *Middleware {
	headers := append([]string(nil), cfg.CaptureHeaders...)

	return &Middleware{
		layer: interceptor.NewLayer(
			cfg.Interceptor,
			func(ex Exchange) interceptor.RequestMetadata {
				return RequestMetadata(ex, headers...)
			},
			ResponseMetadata,
			opts...,
		),
	}
}

// WithTracer makes the middleware continue the caller's trace: the W3C
// "traceparent", "tracestate" and "baggage" headers of each request are
// extracted into its context before it is observed, so the handler and the
// sinks see the remote parent span.
func (m *Middleware) WithTracer(t tracer.Tracer) *Middleware {
	m.tracer = t
	return m
}

// WithInFlightGauge registers <namespace>_requests_in_flight{method} on
// collector and keeps it at the number of requests being served.
// An empty namespace selects sinks.DefaultNamespace.
// It panics if the gauge is already registered.
func (m *Middleware) WithInFlightGauge(collector metrics.MetricsCollector, namespace string) *Middleware {
	if namespace == "" {
		namespace = sinks.DefaultNamespace
	}
	m.inFlight = collector.CreateGauge(
		namespace+"_requests_in_flight",
		"Number of requests currently being served.",
		[]string{"method"},
	)
	return m
}

// Handler returns next wrapped by the middleware.
//
// Example:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", index)
//	srv := &http.Server{Addr: ":3000", Handler: mw.Handler(mux)}
func (m *Middleware) Handler(next http.Handler) http.Handler {
	log := m.layer.Logger()
	observed := m.layer.Wrap(serveHandler{next: next, log: log})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if m.tracer != nil {
			ctx = m.tracer.SetCarrierOnContext(ctx, headerCarrier(r.Header))
		}

		if m.inFlight != nil {
			g := m.inFlight.WithLabelValues(r.Method)
			g.Inc()
			defer g.Dec()
		}

		op := observed.Observe(ctx, Exchange{Writer: w, Request: r})

		_, err := interceptor.Drive[Response](ctx, op)

		var panicErr *interceptor.PanicError
		if errors.As(err, &panicErr) {
			reportPanic(ctx, log, r, panicErr)
			panic(panicErr.Value)
		}
	})
}

// reportPanic logs the stack of the goroutine that panicked. The re-raised
// panic only carries the stack of the serving goroutine.
func reportPanic(ctx context.Context, log logger.Logger, r *http.Request, pe *interceptor.PanicError) {
	if pe.Value == http.ErrAbortHandler {
		return
	}
	log.ErrorWithContext(ctx, "handler panicked", pe, map[string]interface{}{
		"method": r.Method,
		"path":   r.URL.Path,
		"stack":  string(pe.Stack),
	})
}
