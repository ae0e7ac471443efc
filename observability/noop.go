package observability

import "sync"

// NoOpObserver is an Observer that discards every operation.
type NoOpObserver struct{}

// ObserveOperation does nothing.
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}

// Recorder is an Observer that keeps every operation in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu         sync.Mutex
	operations []OperationContext
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveOperation appends ctx to the recorded operations.
func (r *Recorder) ObserveOperation(ctx OperationContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, ctx)
}

// Operations returns a copy of the recorded operations in arrival order.
func (r *Recorder) Operations() []OperationContext {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]OperationContext, len(r.operations))
	copy(out, r.operations)
	return out
}

// Reset drops every recorded operation.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = nil
}
