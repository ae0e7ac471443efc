// Package grpcmetrics observes unary gRPC calls with the interceptor package.
package grpcmetrics

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aalemi-dev/reqobserve/interceptor"
)

// Call is a single unary invocation.
type Call struct {
	FullMethod string
	Request    interface{}
}

// RequestMetadata describes c as a POST to its full method name, the way
// gRPC is carried over HTTP/2.
func RequestMetadata(c Call) interceptor.RequestMetadata {
	return interceptor.RequestMetadata{
		Method:     "POST",
		Path:       c.FullMethod,
		Attributes: map[string]string{"rpc.system": "grpc"},
	}
}

// ResponseMetadata reports codes.OK; failed calls carry no response metadata.
func ResponseMetadata(interface{}) interceptor.ResponseMetadata {
	return interceptor.ResponseMetadata{StatusCode: int(codes.OK)}
}

// UnaryServerInterceptor returns a gRPC unary server interceptor that emits
// one record per call.
//
// The handler runs in its own goroutine. When the call's context ends first
// the call is abandoned and the interceptor returns the matching status
// error; the handler sees its context cancelled. Handler errors pass through
// unchanged. Handler panics are logged with the handler's stack through the
// layer's logger and re-raised.
//
// Example:
//
//	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
//	    grpcmetrics.UnaryServerInterceptor(interceptor.Config{}, interceptor.WithSink(sink)),
//	))
func UnaryServerInterceptor(cfg interceptor.Config, opts ...interceptor.Option) grpc.UnaryServerInterceptor {
	layer := interceptor.NewLayer(cfg, RequestMetadata, ResponseMetadata, opts...)

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		observed := layer.Wrap(interceptor.HandlerFunc[Call, interface{}](func(ctx context.Context, c Call) (interface{}, error) {
			return handler(ctx, c.Request)
		}))

		op := observed.Observe(ctx, Call{FullMethod: info.FullMethod, Request: req})

		resp, err := interceptor.Drive[interface{}](ctx, op)
		if err == nil {
			return resp, nil
		}

		if panicErr, ok := err.(*interceptor.PanicError); ok {
			// The re-raised panic only carries this goroutine's stack.
			layer.Logger().ErrorWithContext(ctx, "handler panicked", panicErr, map[string]interface{}{
				"method": info.FullMethod,
				"stack":  string(panicErr.Stack),
			})
			panic(panicErr.Value)
		}
		if ctxErr := ctx.Err(); ctxErr != nil && err == ctxErr {
			return nil, status.FromContextError(ctxErr).Err()
		}
		return resp, err
	}
}
