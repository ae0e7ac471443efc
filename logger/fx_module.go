package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides *LoggerClient and the Logger interface, and flushes the
// logger when the application stops.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	)
//
// A logger.Config instance must be available in the container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the Zap logger on stop so buffered entries,
// including the last observation records, are not lost.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// stderr returns EINVAL/ENOTTY on Sync on some platforms.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
