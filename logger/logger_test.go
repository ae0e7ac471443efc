package logger

import (
	"context"
	"errors"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger creates a LoggerClient backed by an in-memory observer
// so tests can assert on emitted log entries without writing to stderr.
func newObservedLogger(level zapcore.Level, tracingEnabled bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &LoggerClient{
		Zap:            zap.New(core),
		tracingEnabled: tracingEnabled,
	}, logs
}

// --- NewLoggerClient ---

func TestNewLoggerClient_Levels(t *testing.T) {
	t.Parallel()
	cases := []struct {
		level    string
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel}, // defaults to info
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()
			l, err := NewLoggerClient(Config{Level: tc.level, ServiceName: "test"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l == nil {
				t.Fatal("expected non-nil LoggerClient")
			}
			if l.Zap == nil {
				t.Fatal("expected non-nil Zap logger")
			}
		})
	}
}

func TestNewLoggerClient_TracingEnabled(t *testing.T) {
	t.Parallel()
	l, err := NewLoggerClient(Config{Level: Info, EnableTracing: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.tracingEnabled {
		t.Error("expected tracingEnabled to be true")
	}
}

func TestNewLoggerClient_DefaultCallerSkip(t *testing.T) {
	t.Parallel()
	// CallerSkip <= 0 should not panic; it defaults to 1 internally
	l, err := NewLoggerClient(Config{Level: Info, CallerSkip: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l == nil {
		t.Fatal("expected non-nil LoggerClient")
	}
}

// --- convertToZapFields ---

func TestConvertToZapFields_NilError(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)
	fields := l.convertToZapFields(nil)
	if len(fields) != 0 {
		t.Errorf("expected 0 fields, got %d", len(fields))
	}
}

func TestConvertToZapFields_WithError(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)
	err := errors.New("something went wrong")
	fields := l.convertToZapFields(err)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "error" {
		t.Errorf("expected key 'error', got %q", fields[0].Key)
	}
}

func TestConvertToZapFields_WithFieldMaps(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)
	fields := l.convertToZapFields(nil,
		map[string]interface{}{"key1": "val1"},
		map[string]interface{}{"key2": 42},
	)
	if len(fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(fields))
	}
}

func TestConvertToZapFields_ErrorAndFields(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)
	err := errors.New("oops")
	fields := l.convertToZapFields(err, map[string]interface{}{"k": "v"})
	if len(fields) != 2 {
		t.Errorf("expected 2 fields (error + k), got %d", len(fields))
	}
}

// --- Basic logging methods ---

func TestInfo(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, false)
	l.Info("request observed", nil, map[string]interface{}{"method": "GET"})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "request observed" {
		t.Errorf("expected message %q, got %q", "request observed", entry.Message)
	}
	if entry.Level != zapcore.InfoLevel {
		t.Errorf("expected INFO level, got %v", entry.Level)
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, false)
	l.Debug("debug msg", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.DebugLevel {
		t.Errorf("expected DEBUG level")
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, false)
	l.Debug("should not appear", nil)
	if logs.Len() != 0 {
		t.Errorf("expected debug entry to be suppressed, got %d entries", logs.Len())
	}
}

func TestWarn(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.WarnLevel, false)
	l.Warn("warn msg", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.WarnLevel {
		t.Errorf("expected WARN level")
	}
}

func TestError(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.ErrorLevel, false)
	err := errors.New("boom")
	l.Error("error msg", err)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zapcore.ErrorLevel {
		t.Errorf("expected ERROR level")
	}
	if entry.ContextMap()["error"] != "boom" {
		t.Errorf("expected error field to be 'boom'")
	}
}

// --- Context-aware logging methods ---

func TestInfoWithContext_NoSpan(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, true)
	l.InfoWithContext(context.Background(), "ctx info", nil)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	// No active span, so no trace fields
	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Error("did not expect trace_id without an active span")
	}
}

func TestDebugWithContext(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, false)
	l.DebugWithContext(context.Background(), "ctx debug", nil)
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.DebugLevel {
		t.Errorf("expected DEBUG level")
	}
}

func TestWarnWithContext(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.WarnLevel, false)
	l.WarnWithContext(context.Background(), "ctx warn", nil)
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.WarnLevel {
		t.Errorf("expected WARN level")
	}
}

func TestErrorWithContext(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.ErrorLevel, false)
	err := errors.New("ctx error")
	l.ErrorWithContext(context.Background(), "ctx error msg", err)
	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	if logs.All()[0].Level != zapcore.ErrorLevel {
		t.Errorf("expected ERROR level")
	}
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	t.Parallel()
	l := NewNop()
	l.Error("dropped", errors.New("boom"), map[string]interface{}{"k": "v"})
	l.InfoWithContext(context.Background(), "dropped", nil)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]zapcore.Level{
		Debug:     zapcore.DebugLevel,
		Info:      zapcore.InfoLevel,
		Warning:   zapcore.WarnLevel,
		Error:     zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

// --- extractTracingFields ---

func TestExtractTracingFields_TracingDisabled(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)
	fields := l.extractTracingFields(context.Background())
	if len(fields) != 0 {
		t.Errorf("expected no fields when tracing is disabled, got %d", len(fields))
	}
}

func TestExtractTracingFields_NilContext(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, true)
	//nolint:staticcheck // intentionally passing nil to test guard
	fields := l.extractTracingFields(nil)
	if len(fields) != 0 {
		t.Errorf("expected no fields for nil context, got %d", len(fields))
	}
}

func TestExtractTracingFields_NoActiveSpan(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, true)
	// context.Background() has no span
	fields := l.extractTracingFields(context.Background())
	if len(fields) != 0 {
		t.Errorf("expected no fields without an active span, got %d", len(fields))
	}
}

func TestExtractTracingFields_RecordingSpan(t *testing.T) {
	t.Parallel()
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "GET /")
	defer span.End()

	l, logs := newObservedLogger(zapcore.InfoLevel, true)
	l.InfoWithContext(ctx, "request observed", nil, map[string]interface{}{"path": "/"})

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("expected trace_id %s, got %v", span.SpanContext().TraceID(), fields["trace_id"])
	}
	if fields["span_id"] != span.SpanContext().SpanID().String() {
		t.Errorf("expected span_id %s, got %v", span.SpanContext().SpanID(), fields["span_id"])
	}
}

// --- Logger interface compliance ---

func TestLoggerClient_ImplementsLogger(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.InfoLevel, false)
	var _ Logger = l // compile-time check
}
