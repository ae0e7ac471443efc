package sinks

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.uber.org/fx"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/observability"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// FXModule provides the interceptor.Sink assembled from Config.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    tracer.FXModule,
//	    sinks.FXModule,
//	    fx.Provide(func() sinks.Config { return sinks.Config{Namespace: "edge"} }),
//	)
//
// Dependencies required by this module:
//   - sinks.Config
//   - logger.Logger
//   - metrics.MetricsCollector
//   - tracer.Tracer
//   - observability.Observer (optional)
//   - fx.Lifecycle (optional, closes the Kafka writer on stop)
//   - sinks.PathLabelFunc (optional, maps paths to route templates)
var FXModule = fx.Module("sinks",
	fx.Provide(NewSink),
)

// Params holds the dependencies of NewSink.
type Params struct {
	fx.In

	Config    Config
	Logger    logger.Logger
	Collector metrics.MetricsCollector
	Tracer    tracer.Tracer
	Observer  observability.Observer `optional:"true"`
	Lifecycle fx.Lifecycle           `optional:"true"`
	PathLabel PathLabelFunc          `optional:"true"`
}

// meterName names the meter used when EnableOTelMetrics is set.
const meterName = "github.com/aalemi-dev/reqobserve/sinks"

// NewSink builds the default sink: log entry, Prometheus metrics and span per
// request, plus OpenTelemetry metrics, Kafka publishing and the observer when
// enabled.
func NewSink(p Params) (interceptor.Sink, error) {
	var all []interceptor.Sink

	if !p.Config.DisableLog {
		all = append(all, NewLoggerSink(p.Logger))
	}
	if !p.Config.DisableMetrics {
		all = append(all, NewPrometheusSink(p.Collector, p.Config.MetricNamespace(), WithPathLabel(p.PathLabel)))
	}
	if !p.Config.DisableTracing {
		all = append(all, NewTracerSink(p.Tracer))
	}
	if p.Config.EnableOTelMetrics {
		otelSink, err := NewOTelSink(otel.GetMeterProvider().Meter(meterName))
		if err != nil {
			return nil, err
		}
		all = append(all, otelSink)
	}
	if p.Config.Kafka.Enabled() {
		writer := NewKafkaWriter(p.Config.Kafka)
		if p.Lifecycle != nil {
			p.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return writer.Close()
				},
			})
		}
		p.Logger.Info("publishing observation records to kafka", nil, map[string]interface{}{
			"brokers": p.Config.Kafka.Brokers,
			"topic":   p.Config.Kafka.Topic,
		})
		kafkaSink := NewKafkaSink(writer)
		if p.Tracer != nil {
			kafkaSink.WithTracer(p.Tracer)
		}
		all = append(all, kafkaSink)
	}
	if p.Observer != nil {
		all = append(all, NewObserverSink("http", p.Observer))
	}

	return NewMultiSink(all...), nil
}
