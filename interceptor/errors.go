package interceptor

import (
	"errors"
	"fmt"
)

var (
	// ErrOperationClosed is returned by Poll once the operation has been disposed.
	ErrOperationClosed = errors.New("operation closed")

	// ErrOperationResolved is returned by Poll when the operation already
	// handed its result to the caller.
	ErrOperationResolved = errors.New("operation already resolved")

	// ErrRequestFailed describes a record whose handler reported an error.
	// It never carries the handler's own error value.
	ErrRequestFailed = errors.New("request failed")

	// ErrRequestAbandoned describes a record whose operation was disposed
	// before it resolved.
	ErrRequestAbandoned = errors.New("request abandoned")
)

// PanicError reports a panic raised by a handler running inside Go.
// Transport adapters re-raise Value on their own goroutine.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
