package httpmetrics

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/sinks"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// FXModule provides *Middleware.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    sinks.FXModule,
//	    httpmetrics.FXModule,
//	    fx.Provide(func() httpmetrics.Config { return httpmetrics.Config{} }),
//	)
//
// Dependencies required by this module:
//   - httpmetrics.Config
//   - interceptor.Sink
//   - logger.Logger
//   - tracer.Tracer (optional, continues incoming traces)
//   - metrics.MetricsCollector (optional, adds the in-flight gauge)
//   - sinks.Config (optional, names the in-flight gauge)
var FXModule = fx.Module("httpmetrics",
	fx.Provide(NewFromSink),
)

// Params holds the dependencies of NewFromSink.
type Params struct {
	fx.In

	Config    Config
	Sink      interceptor.Sink
	Logger    logger.Logger
	Tracer    tracer.Tracer            `optional:"true"`
	Collector metrics.MetricsCollector `optional:"true"`
	Sinks     sinks.Config             `optional:"true"`
}

// NewFromSink creates a Middleware emitting to p.Sink and reporting emission
// failures to p.Logger.
func NewFromSink(p Params) *Middleware {
	p.Logger.Info("request observation enabled", nil, map[string]interface{}{
		"time_incomplete_requests": p.Config.Interceptor.TimeIncompleteRequests,
		"capture_headers":          p.Config.CaptureHeaders,
		"trace_propagation":        p.Tracer != nil,
		"in_flight_gauge":          p.Collector != nil,
	})

	mw := NewMiddleware(p.Config, interceptor.WithSink(p.Sink), interceptor.WithLogger(p.Logger))
	if p.Tracer != nil {
		mw.WithTracer(p.Tracer)
	}
	if p.Collector != nil {
		mw.WithInFlightGauge(p.Collector, p.Sinks.MetricNamespace())
	}
	return mw
}
