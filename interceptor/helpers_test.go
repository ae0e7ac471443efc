package interceptor_test

import (
	"context"
	"sync"

	"github.com/aalemi-dev/reqobserve/interceptor"
)

type request struct {
	Method string
	Path   string
}

type response struct {
	Code int
	Body string
}

func requestMetadata(r request) interceptor.RequestMetadata {
	return interceptor.RequestMetadata{Method: r.Method, Path: r.Path}
}

func responseMetadata(r response) interceptor.ResponseMetadata {
	return interceptor.ResponseMetadata{StatusCode: r.Code}
}

// step is one scripted Poll result of a stubOperation.
type step struct {
	resp   response
	done   bool
	err    error
	before func()
}

// stubOperation replays steps, one per Poll, and records lifecycle events.
// The last step repeats once the script is exhausted. A pending step signals
// Wake only when another step follows it.
type stubOperation struct {
	steps  []step
	polls  int
	closed int
	wake   chan struct{}
	events *[]string
}

func newStub(events *[]string, steps ...step) *stubOperation {
	return &stubOperation{steps: steps, wake: make(chan struct{}, 1), events: events}
}

func (s *stubOperation) Poll(context.Context) (response, bool, error) {
	i := s.polls
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	st := s.steps[i]
	s.polls++
	if st.before != nil {
		st.before()
	}
	if !st.done && s.polls < len(s.steps) {
		s.wake <- struct{}{}
	}
	return st.resp, st.done, st.err
}

func (s *stubOperation) Wake() <-chan struct{} { return s.wake }

func (s *stubOperation) Close() {
	s.closed++
	if s.events != nil {
		*s.events = append(*s.events, "inner closed")
	}
}

// stubHandler hands out a prepared operation.
type stubHandler struct {
	op       interceptor.Operation[response]
	readyErr error
	calls    []request
}

func (h *stubHandler) Ready(context.Context) error { return h.readyErr }

func (h *stubHandler) Call(_ context.Context, req request) interceptor.Operation[response] {
	h.calls = append(h.calls, req)
	return h.op
}

// recordingSink keeps every emitted record.
type recordingSink struct {
	mu      sync.Mutex
	records []interceptor.Record
	ctxs    []context.Context
	events  *[]string
}

func (s *recordingSink) Emit(ctx context.Context, rec interceptor.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	s.ctxs = append(s.ctxs, ctx)
	if s.events != nil {
		*s.events = append(*s.events, "emitted")
	}
	return nil
}

func (s *recordingSink) Records() []interceptor.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]interceptor.Record(nil), s.records...)
}
