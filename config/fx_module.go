package config

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/reqobserve/httpmetrics"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/sinks"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// FXModule splits a Config into the section types the other modules depend on.
//
// Usage:
//
//	app := fx.New(
//	    fx.Provide(func() (config.Config, error) { return config.Load("config.yaml") }),
//	    config.FXModule,
//	    logger.FXModule,
//	)
var FXModule = fx.Module("config",
	fx.Provide(Sections),
)

// Out carries the sections of a Config into the container.
type Out struct {
	fx.Out

	Server  ServerConfig
	Logger  logger.Config
	Metrics metrics.Config
	Tracer  tracer.Config
	Sinks   sinks.Config
	HTTP    httpmetrics.Config
}

// Sections returns every section of cfg.
func Sections(cfg Config) Out {
	return Out{
		Server:  cfg.Server,
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
		Tracer:  cfg.Tracer,
		Sinks:   cfg.Sinks,
		HTTP:    cfg.HTTP,
	}
}
