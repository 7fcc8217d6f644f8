package asserting

import (
	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
	"github.com/Aleph-Alpha/spandocs/pkg/tracer"
)

// Customizer enforces a schema on a tracer.SpanCustomizer.
type Customizer struct {
	customizer
}

var _ tracer.SpanCustomizer = (*Customizer)(nil)

// NewCustomizer wraps delegate so that its mutations are checked against schema.
func NewCustomizer(checker *assertion.Checker, schema spanschema.Schema, delegate tracer.SpanCustomizer) *Customizer {
	return &Customizer{customizer{checker: checker, schema: schema, delegate: delegate}}
}

// Delegate returns the wrapped customizer.
func (c *Customizer) Delegate() tracer.SpanCustomizer {
	return c.delegate
}

// customizer holds the checks shared by Span and Customizer.
type customizer struct {
	checker  *assertion.Checker
	schema   spanschema.Schema
	delegate tracer.SpanCustomizer
}

// Schema returns the enforced schema.
func (c *customizer) Schema() spanschema.Schema {
	return c.schema
}

// Name renames the span if name matches the schema name pattern.
func (c *customizer) Name(name string) error {
	if err := c.checker.AssertNameValid(name, c.schema); err != nil {
		return err
	}
	return c.delegate.Name(name)
}

// Tag sets the tag if key matches one of the schema tag keys.
func (c *customizer) Tag(key, value string) error {
	if err := c.checker.AssertKeyValid(key, c.schema); err != nil {
		return err
	}
	return c.delegate.Tag(key, value)
}

// TagKey sets the tag if key is declared by the schema.
func (c *customizer) TagKey(key spanschema.TagKey, value string) error {
	if err := c.checker.AssertTagKeyValid(key, c.schema); err != nil {
		return err
	}
	return c.delegate.Tag(key.Key(), value)
}

// Event records the event if value matches one of the schema events.
func (c *customizer) Event(value string) error {
	if err := c.checker.AssertEventValid(value, c.schema); err != nil {
		return err
	}
	return c.delegate.Event(value)
}

// EventValue records the event if value is declared by the schema.
func (c *customizer) EventValue(value spanschema.EventValue) error {
	if err := c.checker.AssertEventValueValid(value, c.schema); err != nil {
		return err
	}
	return c.delegate.Event(value.Value())
}
