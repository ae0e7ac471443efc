package interceptor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/aalemi-dev/reqobserve/logger"
)

// ObservedOperation proxies the operation of a wrapped handler and emits one
// Record when it is closed.
//
// The timer starts on the first Poll, not at construction, so time spent
// queued before the driver picks the operation up is not counted. Response
// metadata is captured while the response is still in hand, at resolution.
// The record is emitted from Close, which covers completion, failure and
// abandonment alike.
//
// Poll and Close must not be called concurrently. Close may be called any
// number of times; only the first call has an effect.
type ObservedOperation[Resp any] struct {
	inner          Operation[Resp]
	timeIncomplete bool
	clock          clock.PassiveClock
	sink           Sink
	log            logger.Logger
	emitCtx        context.Context

	request          RequestMetadata
	response         *ResponseMetadata
	responseMetadata func(Resp) ResponseMetadata

	startedAt *time.Time
	state     State
	closeOnce sync.Once
}

var _ Operation[struct{}] = (*ObservedOperation[struct{}])(nil)

// State returns the current lifecycle state.
func (o *ObservedOperation[Resp]) State() State {
	return o.state
}

// Request returns the metadata extracted when the request arrived.
func (o *ObservedOperation[Resp]) Request() RequestMetadata {
	return o.request
}

// Poll advances the wrapped operation.
// Results and errors of the wrapped operation are returned unchanged.
func (o *ObservedOperation[Resp]) Poll(ctx context.Context) (Resp, bool, error) {
	var zero Resp

	switch o.state {
	case StateDisposed:
		return zero, true, ErrOperationClosed
	case StateResolvedSuccess, StateResolvedFailure:
		return zero, true, ErrOperationResolved
	case StateUnstarted:
		now := o.clock.Now()
		o.startedAt = &now
		o.state = StateRunning
	}

	resp, done, err := o.inner.Poll(ctx)
	if !done {
		return zero, false, nil
	}

	if err != nil {
		o.state = StateResolvedFailure
		return resp, true, err
	}

	meta := o.responseMetadata(resp)
	o.response = &meta
	o.state = StateResolvedSuccess
	return resp, true, nil
}

// Wake forwards to the wrapped operation.
func (o *ObservedOperation[Resp]) Wake() <-chan struct{} {
	return o.inner.Wake()
}

// Close disposes of the operation. The record, if any, is emitted before the
// wrapped operation is closed.
func (o *ObservedOperation[Resp]) Close() {
	o.closeOnce.Do(func() {
		prev := o.state
		o.state = StateDisposed
		defer o.inner.Close()

		rec, ok := o.record(prev)
		if !ok {
			return
		}
		o.emit(rec)
	})
}

// record builds the observation for an operation leaving state prev.
func (o *ObservedOperation[Resp]) record(prev State) (Record, bool) {
	if o.startedAt == nil {
		return Record{}, false
	}

	outcome := OutcomeAbandoned
	switch prev {
	case StateResolvedSuccess:
		outcome = OutcomeSuccess
	case StateResolvedFailure:
		outcome = OutcomeFailure
	}

	if outcome != OutcomeSuccess && !o.timeIncomplete {
		return Record{}, false
	}

	return Record{
		Start:    *o.startedAt,
		Duration: o.clock.Since(*o.startedAt),
		Request:  o.request,
		Response: o.response,
		Outcome:  outcome,
	}, true
}

// emit hands rec to the sink. Sink failures stay here.
func (o *ObservedOperation[Resp]) emit(rec Record) {
	defer func() {
		if r := recover(); r != nil {
			o.log.ErrorWithContext(o.emitCtx, "observation sink panicked", fmt.Errorf("%v", r), recordFields(rec))
		}
	}()

	if err := o.sink.Emit(o.emitCtx, rec); err != nil {
		o.log.ErrorWithContext(o.emitCtx, "failed to emit observation record", err, recordFields(rec))
	}
}

func recordFields(rec Record) map[string]interface{} {
	return map[string]interface{}{
		"method":  rec.Request.Method,
		"path":    rec.Request.Path,
		"outcome": rec.Outcome.String(),
	}
}
