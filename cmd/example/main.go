// Command example serves a slow "Hello, World!" endpoint behind the request
// observation middleware.
//
// Every request that completes is logged, counted and traced once. Requests
// abandoned by the client are dropped unless
// INTERCEPTOR_TIME_INCOMPLETE_REQUESTS=true.
//
//	CONFIG_FILE=config.yaml go run ./cmd/example
//	curl localhost:3000/
package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/aalemi-dev/reqobserve/config"
	"github.com/aalemi-dev/reqobserve/httpmetrics"
	"github.com/aalemi-dev/reqobserve/logger"
	"github.com/aalemi-dev/reqobserve/metrics"
	"github.com/aalemi-dev/reqobserve/sinks"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// helloDelay is how long the index handler works before answering.
const helloDelay = 5 * time.Second

func main() {
	fx.New(
		fx.Provide(func() (config.Config, error) {
			return config.Load(os.Getenv("CONFIG_FILE"))
		}),
		config.FXModule,
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		sinks.FXModule,
		httpmetrics.FXModule,
		fx.Provide(newMux, newServer),
		fx.Invoke(registerServerLifecycle),
	).Run()
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", hello)
	return mux
}

func hello(w http.ResponseWriter, r *http.Request) {
	select {
	case <-time.After(helloDelay):
	case <-r.Context().Done():
		return
	}
	_, _ = io.WriteString(w, "Hello, World!")
}

func newServer(cfg config.ServerConfig, mux *http.ServeMux, mw *httpmetrics.Middleware) *http.Server {
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           mw.Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServerLifecycle(lc fx.Lifecycle, srv *http.Server, cfg config.ServerConfig, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			log.Info("Starting HTTP server", nil, map[string]interface{}{"address": ln.Addr().String()})
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server", nil, nil)

			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}
