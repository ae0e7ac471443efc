package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient is a wrapper around Uber's Zap logger.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance, exposed for Zap-specific
	// functionality such as Sync.
	Zap *zap.Logger

	// tracingEnabled makes the *WithContext methods add trace/span IDs.
	tracingEnabled bool
}

// NewLoggerClient builds a JSON logger writing to stderr.
//
// Entries carry an ISO8601 "timestamp", a capitalised level, the full caller,
// durations in milliseconds, and the "pid" and "service" fields.
//
// Example:
//
//	log, err := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "edge-proxy",
//	})
//	if err != nil {
//	    return err
//	}
//	log.Info("interceptor ready", nil, nil)
func NewLoggerClient(cfg Config) (*LoggerClient, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}

	return &LoggerClient{
		Zap:            zl,
		tracingEnabled: cfg.EnableTracing,
	}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *LoggerClient {
	return &LoggerClient{Zap: zap.NewNop()}
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(zl *zap.Logger, enableTracing bool) *LoggerClient {
	return &LoggerClient{Zap: zl, tracingEnabled: enableTracing}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case Debug:
		return zap.DebugLevel
	case Warning:
		return zap.WarnLevel
	case Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
