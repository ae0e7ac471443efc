package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/reqobserve/logger"
)

// FXModule provides *TracerClient and the Tracer interface and shuts the
// provider down, flushing pending spans, when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() tracer.Config { return tracer.Config{ServiceName: "edge-proxy"} }),
//	)
//
// Dependencies required by this module:
//   - tracer.Config
//   - logger.Logger
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the tracer provider down on stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *TracerClient, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.tracer == nil {
				log.Info("tracer is nil, skipping shutdown", nil, nil)
				return nil
			}
			log.Info("shutting down tracer", nil, nil)
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
