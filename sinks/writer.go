package sinks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aalemi-dev/reqobserve/interceptor"
)

// WriterSink writes the textual form of each record to an io.Writer.
//
// Output for a successful request:
//
//	duration: 5.000327s
//	GET, /, 200
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w. Writes from concurrent requests
// never interleave.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(_ context.Context, rec interceptor.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, rec.String()+"\n"); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
