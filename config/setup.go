package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Load builds the configuration in three layers: Default, then the YAML file
// at path (skipped when path is empty), then environment variables.
//
// Example:
//
//	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
//	if err != nil {
//	    return err
//	}
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidConfig)
	}
	if c.Sinks.Kafka.Enabled() && c.Sinks.Kafka.Topic == "" {
		return fmt.Errorf("%w: kafka brokers set without a topic", ErrInvalidConfig)
	}
	return nil
}
