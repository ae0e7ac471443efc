package observability

import "time"

// Observer receives a description of every completed operation.
// Implementations are called concurrently and must be thread-safe.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one observed operation.
type OperationContext struct {
	// Component identifies the layer that observed the operation.
	// Examples: "http", "grpc"
	Component string

	// Operation describes what was performed, e.g. the request method "GET".
	Operation string

	// Resource identifies the primary target, e.g. the request path "/users".
	Resource string

	// SubResource provides additional resource context (optional).
	SubResource string

	// Duration is how long the operation was actively processed.
	Duration time.Duration

	// Error is nil for operations that produced a result. Otherwise it
	// classifies the outcome rather than carrying the handler's own error.
	Error error

	// Size represents the size of data involved in the operation (optional).
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// Examples: {"status_code": 200, "outcome": "success"}
	Metadata map[string]interface{}
}
