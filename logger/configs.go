package logger

// Log level constants accepted by Config.Level.
const (
	// Debug shows every message.
	Debug = "debug"

	// Info shows info, warning and error messages.
	Info = "info"

	// Warning shows warning and error messages.
	Warning = "warning"

	// Error shows error messages only.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Unknown values fall back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// EnableTracing adds "trace_id" and "span_id" to entries written with a
	// context carrying a recording span. Observation records emitted through
	// the logger sink are correlated with the request's trace this way.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_tracing" key
	//   - Environment variable LOGGER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
