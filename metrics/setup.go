package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the system and application registries and their HTTP servers.
type Metrics struct {
	// SystemServer serves Go runtime, process and build info metrics.
	// nil when the system endpoint is disabled.
	SystemServer *http.Server

	// ApplicationServer serves the application registry.
	// nil when the application endpoint is disabled.
	ApplicationServer *http.Server

	// SystemRegistry is nil when the system endpoint is disabled.
	SystemRegistry *prometheus.Registry

	// ApplicationRegistry holds every metric created through MetricsCollector.
	ApplicationRegistry *prometheus.Registry

	// registerer adds the constant service label.
	registerer prometheus.Registerer
}

// NewMetrics creates the registries and, for enabled endpoints, their servers.
// The servers are not started; RegisterMetricsLifecycle does that.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "edge-proxy"})
//	go m.ApplicationServer.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	m := &Metrics{}
	labels := prometheus.Labels{"service": cfg.ServiceName}

	if systemAddr := addressOrDefault(cfg.SystemMetricsAddress, DefaultSystemMetricsAddress); systemAddr != "" {
		systemRegistry := prometheus.NewRegistry()
		prometheus.WrapRegistererWith(labels, systemRegistry).MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)

		m.SystemRegistry = systemRegistry
		m.SystemServer = &http.Server{
			Addr:    systemAddr,
			Handler: promhttp.HandlerFor(systemRegistry, promhttp.HandlerOpts{}),
		}
	}

	m.ApplicationRegistry = prometheus.NewRegistry()
	m.registerer = prometheus.WrapRegistererWith(labels, m.ApplicationRegistry)

	if appAddr := addressOrDefault(cfg.ApplicationMetricsAddress, DefaultApplicationMetricsAddress); appAddr != "" {
		m.ApplicationServer = &http.Server{
			Addr:    appAddr,
			Handler: promhttp.HandlerFor(m.ApplicationRegistry, promhttp.HandlerOpts{EnableOpenMetrics: true}),
		}
	}

	return m
}

func addressOrDefault(addr *string, def string) string {
	if addr == nil {
		return def
	}
	return *addr
}
