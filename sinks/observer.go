package sinks

import (
	"context"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/observability"
)

// ObserverSink reports records to an observability.Observer.
type ObserverSink struct {
	component string
	observer  observability.Observer
}

// NewObserverSink returns a sink reporting every record as an operation of
// component, e.g. "http". A nil observer discards records.
func NewObserverSink(component string, observer observability.Observer) *ObserverSink {
	if observer == nil {
		observer = observability.NewNoOpObserver()
	}
	return &ObserverSink{component: component, observer: observer}
}

func (s *ObserverSink) Emit(_ context.Context, rec interceptor.Record) error {
	s.observer.ObserveOperation(OperationContext(s.component, rec))
	return nil
}

// OperationContext maps rec onto the unified observability model.
func OperationContext(component string, rec interceptor.Record) observability.OperationContext {
	op := observability.OperationContext{
		Component: component,
		Operation: rec.Request.Method,
		Resource:  rec.Request.Path,
		Duration:  rec.Duration,
		Metadata: map[string]interface{}{
			"outcome": rec.Outcome.String(),
		},
	}

	switch rec.Outcome {
	case interceptor.OutcomeFailure:
		op.Error = interceptor.ErrRequestFailed
	case interceptor.OutcomeAbandoned:
		op.Error = interceptor.ErrRequestAbandoned
	}

	if rec.Response != nil {
		op.Metadata["status_code"] = rec.Response.StatusCode
	}
	return op
}
