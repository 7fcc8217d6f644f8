// Package tracer provides distributed tracing backed by OpenTelemetry and the mutable
// span capability that span schemas are enforced on.
//
// Span and SpanCustomizer are the capabilities instrumentation code mutates. Spans started
// by a Tracer are OpenTelemetry spans adapted with FromOTel; the asserting package wraps
// either capability to check every mutation against a spanschema.Schema.
//
// Basic Usage:
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "my-service",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	_ = span.Tag("request.id", "abc-xyz")
//	_ = span.Event("cache.miss")
//
//	if err != nil {
//		span.Error(err)
//		return nil, err
//	}
//
// Distributed Tracing Across Services:
//
//	// In the sending service
//	traceHeaders := tracerClient.GetCarrier(ctx)
//	for key, value := range traceHeaders {
//		req.Header.Set(key, value)
//	}
//
//	// In the receiving service
//	ctx := tracerClient.SetCarrierOnContext(r.Context(), headers)
//
// Mapping onto OpenTelemetry:
//
//   - Name renames the span, Tag sets a string attribute and Event adds a span event.
//   - Error records the error and sets the span status to Error.
//   - RemoteServiceName sets the "peer.service" attribute.
//   - Start is a no-op, OpenTelemetry spans are started when created.
//   - Abandon ends the span flagged with "span.abandoned"; a later End does nothing.
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//	)
//
// Thread Safety:
//
// All methods on the Tracer type and on spans returned by FromOTel are safe for concurrent
// use by multiple goroutines.
package tracer
