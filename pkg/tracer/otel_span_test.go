package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

type testKey string

func (k testKey) Key() string { return string(k) }

type testEvent string

func (e testEvent) Value() string { return string(e) }

func newRecordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewWithProvider(tp, NewMockLogger(gomock.NewController(t))), recorder
}

func attributeValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.Emit(), true
		}
	}
	return "", false
}

func TestOTelSpanRecordsMutations(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "initial")
	require.NoError(t, span.Start())
	require.NoError(t, span.Name("renamed"))
	require.NoError(t, span.Tag("http.method", "GET"))
	require.NoError(t, span.TagKey(testKey("http.status_code"), "200"))
	require.NoError(t, span.Event("cache.miss"))
	require.NoError(t, span.EventValue(testEvent("done")))
	span.RemoteServiceName("billing")
	assert.False(t, span.IsNoop())
	assert.True(t, span.Context().IsValid())
	span.End()
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "renamed", got.Name())

	v, ok := attributeValue(got.Attributes(), "http.method")
	assert.True(t, ok)
	assert.Equal(t, "GET", v)
	v, _ = attributeValue(got.Attributes(), "http.status_code")
	assert.Equal(t, "200", v)
	v, _ = attributeValue(got.Attributes(), "peer.service")
	assert.Equal(t, "billing", v)

	require.Len(t, got.Events(), 2)
	assert.Equal(t, "cache.miss", got.Events()[0].Name)
	assert.Equal(t, "done", got.Events()[1].Name)
}

func TestOTelSpanError(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "failing")
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.Error(nil)
	span.End()

	got := recorder.Ended()[0]
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "boom", got.Status().Description)
	require.Len(t, got.Events(), 1)
	assert.Equal(t, "exception", got.Events()[0].Name)
}

func TestOTelSpanAbandon(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "abandoned")
	span.Abandon()
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	v, ok := attributeValue(ended[0].Attributes(), "span.abandoned")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestOTelSpanIsNoop(t *testing.T) {
	_, span := noop.NewTracerProvider().Tracer("test").Start(context.Background(), "noop")
	assert.True(t, FromOTel(span).IsNoop())
}

func TestSetTags(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "tags")
	require.NoError(t, tr.SetTags(span, map[string]interface{}{
		"user.id": 42,
		"region":  "eu",
	}))
	require.NoError(t, tr.SetTags(span, nil))
	span.End()

	attrs := recorder.Ended()[0].Attributes()
	v, _ := attributeValue(attrs, "user.id")
	assert.Equal(t, "42", v)
	v, _ = attributeValue(attrs, "region")
	assert.Equal(t, "eu", v)
}

func TestCarrierRoundTrip(t *testing.T) {
	tr, _ := newRecordingTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "outgoing")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	remote := tr.SetCarrierOnContext(context.Background(), carrier)
	_, child := tr.StartSpan(remote, "incoming")
	defer child.End()

	assert.Equal(t, span.Context().TraceID(), child.Context().TraceID())
}
