package tracer

// Config defines the configuration of the OpenTelemetry tracer.
type Config struct {
	// ServiceName identifies the service in exported spans.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable TRACER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment, e.g. "development" or "production".
	// It is set as the "deployment.environment" and "environment" resource
	// attributes.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "app_env" key
	//   - Environment variable TRACER_APP_ENV
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport sends spans to an OTLP/HTTP collector. When false, spans are
	// still created and propagated but never leave the process.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_export" key
	//   - Environment variable TRACER_ENABLE_EXPORT
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the collector host:port. Empty falls back to the standard
	// OTEL_EXPORTER_OTLP_* environment variables and then to localhost:4318.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "endpoint" key
	//   - Environment variable TRACER_ENDPOINT
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "insecure" key
	//   - Environment variable TRACER_INSECURE
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`
}
