package metrics

// MetricsCollector creates metrics on the application registry.
//
// It does not expose Prometheus types, so sinks depending on it can be tested
// against alternative implementations.
type MetricsCollector interface {
	// CreateCounter registers a counter vector.
	//
	// Example:
	//   requests := m.CreateCounter("requests_total", "Observed requests", []string{"method", "code"})
	//   requests.WithLabelValues("GET", "200").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram registers a histogram vector with the given buckets.
	//
	// Example:
	//   latency := m.CreateHistogram("request_duration_seconds", "Request duration", []string{"method"}, DefaultDurationBuckets)
	//   latency.WithLabelValues("GET").Observe(0.25)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge registers a gauge vector.
	CreateGauge(name, help string, labels []string) Gauge
}
