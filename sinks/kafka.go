package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/tracer"
)

// Default values for KafkaConfig
const (
	DefaultKafkaRequiredAcks = -1 // WaitForAll
	DefaultKafkaBatchSize    = 100
	DefaultKafkaBatchTimeout = 1 * time.Second
	DefaultKafkaMaxAttempts  = 10
	DefaultKafkaWriteTimeout = 10 * time.Second
)

// KafkaConfig configures the sink publishing one message per record.
// The sink is enabled when Brokers is not empty.
type KafkaConfig struct {
	// Brokers lists the bootstrap addresses, e.g. "localhost:9092".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "brokers" key
	//   - Environment variable SINKS_KAFKA_BROKERS (comma separated)
	Brokers []string `yaml:"brokers" envconfig:"SINKS_KAFKA_BROKERS"`

	// Topic receives the records.
	Topic string `yaml:"topic" envconfig:"SINKS_KAFKA_TOPIC"`

	// RequiredAcks is the number of acknowledgements required per write.
	// -1 waits for all replicas, 1 for the leader only, 0 for none.
	// Default: -1
	RequiredAcks int `yaml:"required_acks" envconfig:"SINKS_KAFKA_REQUIRED_ACKS"`

	// Async makes writes return before the broker acknowledges them.
	// Delivery errors are then only visible in the writer's error log.
	Async bool `yaml:"async" envconfig:"SINKS_KAFKA_ASYNC"`

	// BatchSize is the maximum number of messages per batch.
	// Default: 100
	BatchSize int `yaml:"batch_size" envconfig:"SINKS_KAFKA_BATCH_SIZE"`

	// BatchTimeout bounds how long an incomplete batch waits.
	// Default: 1s
	BatchTimeout time.Duration `yaml:"batch_timeout" envconfig:"SINKS_KAFKA_BATCH_TIMEOUT"`

	// MaxAttempts is the number of delivery attempts per message.
	// Default: 10
	MaxAttempts int `yaml:"max_attempts" envconfig:"SINKS_KAFKA_MAX_ATTEMPTS"`

	// WriteTimeout bounds a single write.
	// Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SINKS_KAFKA_WRITE_TIMEOUT"`
}

// Enabled reports whether any broker is configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c KafkaConfig) withDefaults() KafkaConfig {
	if c.RequiredAcks == 0 {
		c.RequiredAcks = DefaultKafkaRequiredAcks
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultKafkaBatchSize
	}
	if c.BatchTimeout == 0 {
		c.BatchTimeout = DefaultKafkaBatchTimeout
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultKafkaMaxAttempts
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultKafkaWriteTimeout
	}
	return c
}

// NewKafkaWriter creates a writer for cfg. Connections are opened lazily on
// the first write. The caller owns the writer and must Close it.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	cfg = cfg.withDefaults()

	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        cfg.Async,
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// MessageWriter is the part of *kafka.Writer used by KafkaSink.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaSink publishes each record as a JSON message keyed by request path.
//
// Message value:
//
//	{"start":"2024-03-01T12:00:00Z","duration_ms":5000,"method":"GET","path":"/","outcome":"success","status_code":200}
type KafkaSink struct {
	w      MessageWriter
	tracer tracer.Tracer
}

// NewKafkaSink returns a sink writing to w.
func NewKafkaSink(w MessageWriter) *KafkaSink {
	return &KafkaSink{w: w}
}

// WithTracer adds the W3C trace context of the request ("traceparent" and,
// when present, "tracestate" and "baggage") to each message's headers, so
// consumers can continue the request's trace.
func (s *KafkaSink) WithTracer(t tracer.Tracer) *KafkaSink {
	s.tracer = t
	return s
}

type kafkaRecord struct {
	Start      time.Time         `json:"start"`
	DurationMS float64           `json:"duration_ms"`
	Method     string            `json:"method"`
	Path       string            `json:"path"`
	Outcome    string            `json:"outcome"`
	StatusCode *int              `json:"status_code,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (s *KafkaSink) Emit(ctx context.Context, rec interceptor.Record) error {
	payload := kafkaRecord{
		Start:      rec.Start,
		DurationMS: float64(rec.Duration) / float64(time.Millisecond),
		Method:     rec.Request.Method,
		Path:       rec.Request.Path,
		Outcome:    rec.Outcome.String(),
		Attributes: rec.Request.Attributes,
	}
	if rec.Response != nil {
		code := rec.Response.StatusCode
		payload.StatusCode = &code
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(rec.Request.Path),
		Value: value,
		Time:  rec.Start,
		Headers: []kafka.Header{
			{Key: "outcome", Value: []byte(payload.Outcome)},
		},
	}

	if s.tracer != nil {
		for k, v := range s.tracer.GetCarrier(ctx) {
			msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
		}
	}

	if err := s.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish record: %w", err)
	}
	return nil
}
