package interceptor

import (
	"strconv"
	"strings"
	"time"
)

// RequestMetadata describes an incoming request.
// It is extracted once, synchronously, when the request arrives and is never
// modified afterwards.
type RequestMetadata struct {
	// Method is the request verb, e.g. "GET".
	Method string

	// Path is the request target, e.g. "/users/42".
	Path string

	// Attributes holds optional transport-specific details such as selected
	// headers. Nil when the transport extracts none.
	Attributes map[string]string
}

// ResponseMetadata describes a successful response.
type ResponseMetadata struct {
	// StatusCode is the transport's result code (HTTP status, gRPC code).
	StatusCode int
}

// Outcome tells how an observed operation ended.
type Outcome int

const (
	// OutcomeSuccess means the handler produced a response.
	OutcomeSuccess Outcome = iota

	// OutcomeFailure means the handler reported an error.
	OutcomeFailure

	// OutcomeAbandoned means the operation was disposed before it resolved.
	OutcomeAbandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Record is the single observation emitted for one request.
type Record struct {
	// Start is the instant the operation was first driven.
	Start time.Time

	// Duration is the time between Start and disposal.
	Duration time.Duration

	Request RequestMetadata

	// Response is nil unless Outcome is OutcomeSuccess.
	Response *ResponseMetadata

	Outcome Outcome
}

// Summary renders the request line of the record:
// "<METHOD>, <PATH>, <CODE>" when a response was observed, "<METHOD>, <PATH>" otherwise.
func (r Record) Summary() string {
	var b strings.Builder
	b.WriteString(r.Request.Method)
	b.WriteString(", ")
	b.WriteString(r.Request.Path)
	if r.Response != nil {
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(r.Response.StatusCode))
	}
	return b.String()
}

// String renders the record as two lines: "duration: <d>" followed by Summary.
func (r Record) String() string {
	return "duration: " + r.Duration.String() + "\n" + r.Summary()
}

// State is the lifecycle position of an ObservedOperation.
type State int

const (
	StateUnstarted State = iota
	StateRunning
	StateResolvedSuccess
	StateResolvedFailure
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateRunning:
		return "running"
	case StateResolvedSuccess:
		return "resolved(success)"
	case StateResolvedFailure:
		return "resolved(failure)"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}
