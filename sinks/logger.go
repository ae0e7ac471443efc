package sinks

import (
	"context"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/logger"
)

// LoggerSink logs each record as one structured entry.
type LoggerSink struct {
	log logger.Logger
}

// NewLoggerSink returns a sink logging through log. Entries carry trace and
// span IDs when the logger has tracing enabled and the request context holds a
// recording span.
func NewLoggerSink(log logger.Logger) *LoggerSink {
	return &LoggerSink{log: log}
}

func (s *LoggerSink) Emit(ctx context.Context, rec interceptor.Record) error {
	s.log.InfoWithContext(ctx, "request observed", nil, recordFields(rec))
	return nil
}

func recordFields(rec interceptor.Record) map[string]interface{} {
	fields := map[string]interface{}{
		"duration": rec.Duration,
		"method":   rec.Request.Method,
		"path":     rec.Request.Path,
		"outcome":  rec.Outcome.String(),
	}
	if rec.Response != nil {
		fields["status_code"] = rec.Response.StatusCode
	}
	for k, v := range rec.Request.Attributes {
		fields["attr."+k] = v
	}
	return fields
}
