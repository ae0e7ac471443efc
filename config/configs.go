package config

import (
	"time"

	"github.com/aalemi-dev/reqobserve/httpmetrics"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/sinks"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// DefaultServiceName is used by every section that needs a service name
// when none is configured.
const DefaultServiceName = "reqobserve"

// Config is the configuration of an observed HTTP service.
type Config struct {
	Server  ServerConfig       `yaml:"server"`
	Logger  logger.Config      `yaml:"logger"`
	Metrics metrics.Config     `yaml:"metrics"`
	Tracer  tracer.Config      `yaml:"tracer"`
	Sinks   sinks.Config       `yaml:"sinks"`
	HTTP    httpmetrics.Config `yaml:"http"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Address is the listen address.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "address" key
	//   - Environment variable SERVER_ADDRESS
	Address string `yaml:"address" envconfig:"SERVER_ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of in-flight requests.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "shutdown_timeout" key, e.g. "10s"
	//   - Environment variable SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Default returns the configuration used before any file or environment
// override is applied.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":3000",
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: DefaultServiceName,
		},
		Metrics: metrics.Config{
			ServiceName: DefaultServiceName,
		},
		Tracer: tracer.Config{
			ServiceName: DefaultServiceName,
			AppEnv:      "development",
		},
		Sinks: sinks.Config{
			Namespace: sinks.DefaultNamespace,
		},
	}
}
