package httpmetrics

import (
	"context"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/felixge/httpsnoop"

	"github.com/aalemi-dev/reqobserve/interceptor"
	"github.com/aalemi-dev/reqobserve/logger"
)

// serveHandler runs an http.Handler as an interceptor.Handler.
type serveHandler struct {
	next http.Handler
	log  logger.Logger
}

func (s serveHandler) Ready(context.Context) error {
	return nil
}

func (s serveHandler) Call(ctx context.Context, ex Exchange) interceptor.Operation[Response] {
	return &serveOperation{
		parent: ctx,
		next:   s.next,
		log:    s.log,
		ex:     ex,
		done:   make(chan struct{}),
	}
}

// serveOperation serves one request in its own goroutine.
//
// Unlike interceptor.Go, Close waits for the handler to return: the
// ResponseWriter must not be used once ServeHTTP has returned.
type serveOperation struct {
	parent context.Context
	next   http.Handler
	log    logger.Logger
	ex     Exchange

	start   sync.Once
	started bool
	cancel  context.CancelFunc
	done    chan struct{}

	resp     Response
	panicked *interceptor.PanicError
	reported bool
}

func (o *serveOperation) run() {
	ctx, cancel := context.WithCancel(o.parent)
	o.cancel = cancel
	o.started = true

	r := o.ex.Request.WithContext(ctx)

	go func() {
		defer close(o.done)
		defer func() {
			if v := recover(); v != nil {
				o.panicked = &interceptor.PanicError{Value: v, Stack: debug.Stack()}
			}
		}()

		m := httpsnoop.CaptureMetricsFn(o.ex.Writer, func(w http.ResponseWriter) {
			o.next.ServeHTTP(w, r)
		})
		o.resp = Response{StatusCode: m.Code, Size: m.Written}
	}()
}

func (o *serveOperation) Poll(context.Context) (Response, bool, error) {
	o.start.Do(o.run)

	select {
	case <-o.done:
		if o.panicked != nil {
			o.reported = true
			return Response{}, true, o.panicked
		}
		return o.resp, true, nil
	default:
		return Response{}, false, nil
	}
}

func (o *serveOperation) Wake() <-chan struct{} {
	return o.done
}

// Close cancels the handler's context and waits for it to return. A panic
// raised after the operation was abandoned is re-raised here.
func (o *serveOperation) Close() {
	o.start.Do(func() {})
	if !o.started {
		return
	}

	o.cancel()
	<-o.done

	if o.panicked != nil && !o.reported {
		reportPanic(o.parent, o.log, o.ex.Request, o.panicked)
		panic(o.panicked.Value)
	}
}
