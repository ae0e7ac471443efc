// Package httpmetrics observes net/http handlers with the interceptor package.
//
// A Middleware wraps an http.Handler once; every request it serves produces
// at most one interceptor.Record:
//
//	mw := httpmetrics.NewMiddleware(httpmetrics.Config{
//	    Interceptor: interceptor.Config{TimeIncompleteRequests: true},
//	}, interceptor.WithSink(sink))
//
//	http.ListenAndServe(":3000", mw.Handler(mux))
//
// The status code and body size are captured from the ResponseWriter with
// httpsnoop, so optional interfaces such as http.Flusher and http.Hijacker
// keep working. A handler that never calls WriteHeader reports 200.
//
// A request whose context ends before the handler returns (typically a client
// disconnect) is abandoned: its record is emitted at that instant, the
// handler's context is cancelled, and ServeHTTP still waits for the handler
// to return. Handler panics are re-raised on the serving goroutine after the
// record has been emitted, so net/http handles them as usual. The stack of
// the panicking goroutine is logged first.
//
// WithTracer continues the caller's trace from the W3C request headers, and
// WithInFlightGauge reports the number of requests being served per method.
package httpmetrics
