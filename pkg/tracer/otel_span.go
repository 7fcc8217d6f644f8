package tracer

import (
	"sync/atomic"

	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	peerServiceKey   = attribute.Key("peer.service")
	abandonedSpanKey = attribute.Key("span.abandoned")
)

// OTelSpan adapts an OpenTelemetry span to Span.
type OTelSpan struct {
	span  trace.Span
	ended atomic.Bool
}

var _ Span = (*OTelSpan)(nil)

// FromOTel adapts span to Span.
func FromOTel(span trace.Span) *OTelSpan {
	return &OTelSpan{span: span}
}

// OTel returns the adapted OpenTelemetry span.
func (s *OTelSpan) OTel() trace.Span {
	return s.span
}

// Name renames the span.
func (s *OTelSpan) Name(name string) error {
	s.span.SetName(name)
	return nil
}

// Tag sets key as a string attribute.
func (s *OTelSpan) Tag(key, value string) error {
	s.span.SetAttributes(attribute.String(key, value))
	return nil
}

// TagKey sets the attribute named by key.
func (s *OTelSpan) TagKey(key spanschema.TagKey, value string) error {
	return s.Tag(key.Key(), value)
}

// Event adds an event named value.
func (s *OTelSpan) Event(value string) error {
	s.span.AddEvent(value)
	return nil
}

// EventValue adds the event declared by value.
func (s *OTelSpan) EventValue(value spanschema.EventValue) error {
	return s.Event(value.Value())
}

// Start is a no-op, the OpenTelemetry span started when it was created.
func (s *OTelSpan) Start() error {
	return nil
}

// End ends the span. Calls after the first End or Abandon are ignored.
func (s *OTelSpan) End() {
	if s.ended.CompareAndSwap(false, true) {
		s.span.End()
	}
}

// Abandon ends the span flagged as abandoned.
func (s *OTelSpan) Abandon() {
	if s.ended.CompareAndSwap(false, true) {
		s.span.SetAttributes(abandonedSpanKey.Bool(true))
		s.span.End()
	}
}

// Error records err and sets the span status to error. A nil err is ignored.
func (s *OTelSpan) Error(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// RemoteServiceName sets the peer.service attribute.
func (s *OTelSpan) RemoteServiceName(name string) {
	s.span.SetAttributes(peerServiceKey.String(name))
}

// IsNoop reports whether the span is not recording.
func (s *OTelSpan) IsNoop() bool {
	return !s.span.IsRecording()
}

// Context returns the span context.
func (s *OTelSpan) Context() trace.SpanContext {
	return s.span.SpanContext()
}
