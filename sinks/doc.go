// Package sinks delivers request observation records to concrete backends.
//
// Every sink implements interceptor.Sink and is safe for concurrent use:
//
//   - WriterSink: the textual record, one block per request, on an io.Writer
//   - LoggerSink: a structured zap entry through logger.Logger
//   - ObserverSink: an observability.OperationContext for the unified observer
//   - PrometheusSink: request counter and duration histogram on a MetricsCollector
//   - OTelSink: the same pair of instruments on an OpenTelemetry meter
//   - TracerSink: one span per record covering the timed interval
//   - KafkaSink: one JSON message per record on a kafka-go writer
//   - MultiSink: fan-out to several sinks; a panicking sink becomes an
//     ErrSinkPanicked error and the remaining sinks still run
//
// # Basic Usage
//
//	sink := sinks.NewMultiSink(
//	    sinks.NewLoggerSink(log),
//	    sinks.NewPrometheusSink(m, "edge"),
//	)
//	layer := interceptor.NewLayer(cfg, reqMeta, respMeta, interceptor.WithSink(sink))
//
// Request paths become the "path" label of PrometheusSink. Services with path
// parameters should pass WithPathLabel to map them to route templates.
//
// # FX Module Integration
//
// FXModule assembles the sinks enabled in Config into a single
// interceptor.Sink. Setting Config.Kafka.Brokers adds a KafkaSink whose writer
// is closed when the application stops; with a tracer.Tracer available its
// messages carry the W3C trace context headers. An optional PathLabelFunc is
// passed to the PrometheusSink.
package sinks
