// Package logger provides the structured logger shared by every package of
// this module.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the logging contract the other packages depend on
//   - LoggerClient struct: the zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - FXModule: provides both *LoggerClient and Logger
//
// Entries are JSON on stderr with an ISO8601 "timestamp", a capitalised level,
// the caller, and the "pid" and "service" fields. Durations are written in
// milliseconds.
//
// # Direct Usage (Without FX)
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		EnableTracing: true,
//		ServiceName:   "edge-proxy",
//	})
//	if err != nil {
//		return err
//	}
//
//	log.Info("interceptor ready", nil, map[string]interface{}{
//		"time_incomplete_requests": true,
//	})
//
// # Tracing
//
// With EnableTracing set, the *WithContext methods add "trace_id" and
// "span_id" when ctx carries a recording span:
//
//	log.InfoWithContext(ctx, "request observed", nil, map[string]interface{}{
//		"path": "/users/42",
//	})
//
// # Tests
//
// NewNop discards everything. NewFromZap wraps a zap logger built in a test,
// typically one backed by go.uber.org/zap/zaptest/observer.
package logger
