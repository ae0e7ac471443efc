package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/reqobserve/logger"
)

// FXModule provides *Metrics and the MetricsCollector interface and runs the
// enabled metrics servers for the lifetime of the application.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "edge-proxy"}
//	    }),
//	)
//
// Dependencies required by this module:
//   - metrics.Config
//   - logger.Logger
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the enabled servers on start and shuts them
// down on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log logger.Logger) {
	servers := map[string]*http.Server{
		"system":      m.SystemServer,
		"application": m.ApplicationServer,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for name, srv := range servers {
				if srv == nil {
					continue
				}
				go func(name string, srv *http.Server) {
					log.Info("Starting metrics server", nil, map[string]interface{}{
						"endpoint": name,
						"address":  srv.Addr,
					})
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						log.Error("Error starting metrics server", err, map[string]interface{}{"endpoint": name})
					}
				}(name, srv)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for name, srv := range servers {
				if srv == nil {
					continue
				}
				log.Info("Shutting down metrics server", nil, map[string]interface{}{"endpoint": name})
				if err := srv.Shutdown(ctx); err != nil {
					log.Error("Error shutting down metrics server", err, map[string]interface{}{"endpoint": name})
				}
			}
			return nil
		},
	})
}
