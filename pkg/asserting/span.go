package asserting

import (
	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
	"github.com/Aleph-Alpha/spandocs/pkg/tracer"
	"go.opentelemetry.io/otel/trace"
)

// Span enforces a schema on a tracer.Span.
type Span struct {
	customizer
	delegate tracer.Span
}

var _ tracer.Span = (*Span)(nil)

// NewSpan wraps delegate so that its mutations are checked against schema.
func NewSpan(checker *assertion.Checker, schema spanschema.Schema, delegate tracer.Span) *Span {
	return &Span{
		customizer: customizer{checker: checker, schema: schema, delegate: delegate},
		delegate:   delegate,
	}
}

// Delegate returns the wrapped span.
func (s *Span) Delegate() tracer.Span {
	return s.delegate
}

// Start starts the wrapped span.
func (s *Span) Start() error {
	return s.delegate.Start()
}

// End finishes the wrapped span.
func (s *Span) End() {
	s.delegate.End()
}

// Abandon abandons the wrapped span.
func (s *Span) Abandon() {
	s.delegate.Abandon()
}

// Error records err on the wrapped span.
func (s *Span) Error(err error) {
	s.delegate.Error(err)
}

// RemoteServiceName sets the remote service name on the wrapped span.
func (s *Span) RemoteServiceName(name string) {
	s.delegate.RemoteServiceName(name)
}

// IsNoop reports whether the wrapped span is a no-op.
func (s *Span) IsNoop() bool {
	return s.delegate.IsNoop()
}

// Context returns the trace context of the wrapped span.
func (s *Span) Context() trace.SpanContext {
	return s.delegate.Context()
}
