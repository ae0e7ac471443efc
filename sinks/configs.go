package sinks

// DefaultNamespace prefixes the Prometheus metric names when none is configured.
const DefaultNamespace = "reqobserve"

// Config selects the sinks assembled by FXModule.
type Config struct {
	// Namespace prefixes the Prometheus metric names.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "namespace" key
	//   - Environment variable SINKS_NAMESPACE
	Namespace string `yaml:"namespace" envconfig:"SINKS_NAMESPACE"`

	// DisableLog turns off the structured log entry per request.
	DisableLog bool `yaml:"disable_log" envconfig:"SINKS_DISABLE_LOG"`

	// DisableMetrics turns off the Prometheus counter and histogram.
	DisableMetrics bool `yaml:"disable_metrics" envconfig:"SINKS_DISABLE_METRICS"`

	// DisableTracing turns off the span per request.
	DisableTracing bool `yaml:"disable_tracing" envconfig:"SINKS_DISABLE_TRACING"`

	// EnableOTelMetrics also records requests on the global OpenTelemetry
	// meter provider.
	EnableOTelMetrics bool `yaml:"enable_otel_metrics" envconfig:"SINKS_ENABLE_OTEL_METRICS"`

	// Kafka publishes every record to a topic when brokers are configured.
	Kafka KafkaConfig `yaml:"kafka"`
}

// MetricNamespace returns Namespace, or DefaultNamespace when it is empty.
func (c Config) MetricNamespace() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}
