// Package observability defines the Observer interface through which request
// observations leave the interceptor for application-defined handling.
//
// # Overview
//
// The interceptor describes every observed request with an OperationContext
// and hands it to an Observer through the sinks package:
//
//	sink := sinks.NewObserverSink("http", myObserver)
//
// The mapping is:
//
//   - Component: transport that observed the request ("http", "grpc")
//   - Operation: request method
//   - Resource:  request path
//   - Duration:  time from the first poll to disposal
//   - Error:     nil on success, interceptor.ErrRequestFailed or
//     interceptor.ErrRequestAbandoned otherwise
//   - Metadata:  "outcome" and, on success, "status_code"
//
// # Usage in Applications
//
//	type AuditObserver struct {
//	    log logger.Logger
//	}
//
//	func (o *AuditObserver) ObserveOperation(ctx observability.OperationContext) {
//	    if ctx.Error != nil {
//	        o.log.Warn("request did not complete", ctx.Error, map[string]interface{}{
//	            "method": ctx.Operation,
//	            "path":   ctx.Resource,
//	        })
//	    }
//	}
//
// # FX Integration
//
//	fx.Provide(
//	    fx.Annotate(
//	        NewAuditObserver,
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// sinks.FXModule picks the Observer up when one is present in the container.
//
// # Thread Safety
//
// Observer implementations must be thread-safe. They will be called concurrently
// from multiple goroutines. NewRecorder returns a thread-safe in-memory
// Observer suited to tests.
package observability
