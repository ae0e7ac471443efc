package logger

import (
	"context"
)

// Logger provides a high-level interface for structured logging.
// It wraps Uber's Zap logger with a simplified API and optional tracing integration.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})

	// Context-aware logging methods (include trace/span IDs when tracing is enabled)

	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
