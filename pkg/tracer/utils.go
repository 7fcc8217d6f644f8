package tracer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/propagation"
)

// StartSpan creates a span with the given name and returns a context containing it.
//
// The span becomes a child of the span carried by ctx, or a root span when there is none.
// It must be ended when the traced operation completes.
//
// Example:
//
//	ctx, span := tracerClient.StartSpan(ctx, "fetch-user-data")
//	defer span.End()
//
//	data, err := fetchUserData(ctx, userID)
//	if err != nil {
//	    span.Error(err)
//	    return nil, err
//	}
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, *OTelSpan) {
	ctx, span := t.tracer.Tracer(instrumentationName).Start(ctx, name)
	return ctx, FromOTel(span)
}

// RecordErrorOnSpan records err on span and marks the span as failed.
func (t *Tracer) RecordErrorOnSpan(span Span, err error) {
	span.Error(err)
}

// SetTags sets every entry of tags on span. Values are converted with fmt.Sprint.
//
// Keys are applied in sorted order so that a schema enforcing span rejects the same keys
// on every run. All rejected keys are reported, accepted ones stay set.
//
// Example:
//
//	err := tracerClient.SetTags(span, map[string]interface{}{
//	    "payment.amount":   amount,
//	    "payment.currency": "USD",
//	})
func (t *Tracer) SetTags(span SpanCustomizer, tags map[string]interface{}) error {
	if len(tags) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		var value string
		switch v := tags[k].(type) {
		case string:
			value = v
		default:
			value = fmt.Sprint(v)
		}
		if err := span.Tag(k, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetCarrier extracts the W3C trace context of ctx ("traceparent", "tracestate" and
// baggage) into a map that can be sent to another service.
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext is the inverse of GetCarrier: it returns a context continuing the
// trace described by carrier.
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
