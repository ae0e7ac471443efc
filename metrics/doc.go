// Package metrics exposes Prometheus registries for system and request metrics.
//
// # Dual Endpoint Design
//
//  1. System metrics (default :9090): Go runtime, process and build info,
//     registered automatically.
//  2. Application metrics (default :9091): metrics created through
//     MetricsCollector, including the request counters and duration
//     histograms written by sinks.NewPrometheusSink.
//
// Every metric carries a constant "service" label taken from Config.ServiceName.
//
// # Basic Usage
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "edge-proxy"})
//	requests := m.CreateCounter("requests_total", "Observed requests", []string{"method", "code"})
//	requests.WithLabelValues("GET", "200").Inc()
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config { return metrics.Config{ServiceName: "edge-proxy"} }),
//	)
//
// # Disabling Endpoints
//
// A pointer to an empty address disables a server:
//
//	metrics.Config{SystemMetricsAddress: metrics.Ptr("")}
//
// The application registry exists even when its server is disabled.
package metrics
