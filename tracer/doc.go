// Package tracer provides distributed tracing on top of OpenTelemetry.
//
// The Tracer interface is implemented by *TracerClient; constructors return
// the concrete type and FXModule provides both.
//
// # Basic Usage
//
//	tr, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "edge-proxy",
//		AppEnv:       "development",
//		EnableExport: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	ctx, span := tr.StartSpan(ctx, "forward-request")
//	defer span.End()
//
//	span.SetAttributes(map[string]interface{}{"upstream": "billing"})
//
// # Recording Completed Operations
//
// StartSpanAt and EndAt create a span after the fact from a known start
// instant and duration. The request observation sink uses them to turn each
// record into a span that covers exactly the timed interval:
//
//	_, span := tr.StartSpanAt(ctx, "GET /orders", rec.Start)
//	span.EndAt(rec.Start.Add(rec.Duration))
//
// # Context Propagation
//
//	headers := tr.GetCarrier(ctx)                     // outgoing
//	ctx = tr.SetCarrierOnContext(ctx, incomingHeaders) // incoming
//
// Propagation uses W3C Trace Context and Baggage.
package tracer
