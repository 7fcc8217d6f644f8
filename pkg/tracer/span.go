package tracer

import (
	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
	"go.opentelemetry.io/otel/trace"
)

// SpanCustomizer is the part of a span that instrumentation code may customize.
//
// Plain implementations never fail. Wrappers enforcing a schema return the violation
// and leave the underlying span untouched.
type SpanCustomizer interface {
	// Name sets the span name.
	Name(name string) error

	// Tag sets a tag on the span.
	Tag(key, value string) error

	// TagKey sets a tag for a declared tag key.
	TagKey(key spanschema.TagKey, value string) error

	// Event records a timestamped event.
	Event(value string) error

	// EventValue records a declared event.
	EventValue(value spanschema.EventValue) error
}

// Span is a SpanCustomizer that also controls the span lifecycle.
type Span interface {
	SpanCustomizer

	// Start starts the span.
	Start() error

	// End finishes the span and reports it.
	End()

	// Abandon finishes the span without marking it as a completed unit of work.
	Abandon()

	// Error records err on the span and marks the span as failed.
	Error(err error)

	// RemoteServiceName names the service on the other side of the span.
	RemoteServiceName(name string)

	// IsNoop reports whether the span drops everything recorded on it.
	IsNoop() bool

	// Context returns the trace context of the span.
	Context() trace.SpanContext
}
