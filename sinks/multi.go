package sinks

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/aalemi-dev/reqobserve/interceptor"
)

// ErrSinkPanicked wraps the value a sink panicked with inside a MultiSink.
var ErrSinkPanicked = errors.New("sink panicked")

// MultiSink emits every record to each of its sinks in order.
type MultiSink struct {
	sinks []interceptor.Sink
}

// NewMultiSink returns a sink fanning out to sinks. Nil entries are skipped.
func NewMultiSink(sinks ...interceptor.Sink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Emit calls every sink even when an earlier one fails or panics and returns
// the combined errors.
func (m *MultiSink) Emit(ctx context.Context, rec interceptor.Record) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, emitOne(ctx, s, rec))
	}
	return err
}

func emitOne(ctx context.Context, s interceptor.Sink, rec interceptor.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %T: %v", ErrSinkPanicked, s, r)
		}
	}()
	return s.Emit(ctx, rec)
}
