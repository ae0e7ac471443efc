package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// instrumentationName names the tracer that spans are created with.
const instrumentationName = "github.com/aalemi-dev/reqobserve"

// TracerClient wraps an OpenTelemetry TracerProvider.
//
// TracerClient is safe for concurrent use and implements the Tracer interface.
type TracerClient struct {
	tracer *trace.TracerProvider
}

// NewClient creates a TracerClient and installs its provider and the W3C
// propagators as the OpenTelemetry globals.
//
// With EnableExport spans are batched to an OTLP/HTTP exporter; the exporter
// connects lazily, so a missing collector is not an error here.
//
// Example:
//
//	tr, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "edge-proxy",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    return err
//	}
func NewClient(cfg Config) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg)
}

func newClientWithContext(ctx context.Context, cfg Config) (*TracerClient, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
		}

		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &TracerClient{tracer: tp}, nil
}

// NewFromProvider wraps an existing provider without touching the
// OpenTelemetry globals.
func NewFromProvider(tp *trace.TracerProvider) *TracerClient {
	return &TracerClient{tracer: tp}
}
