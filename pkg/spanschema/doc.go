// Package spanschema declares the contract a documented span follows: the pattern its
// name must match, the tag keys it may carry and the events it may emit.
//
// A schema is any type that provides the three accessors of Schema. The usual way to
// declare one is an integer enum whose variants are the span kinds an instrumentation
// emits, paired with enums for its tag keys and events:
//
//	type ClientSpan int
//
//	const (
//		// Span created around an outgoing call.
//		ClientCall ClientSpan = iota
//	)
//
//	func (ClientSpan) Name() string                      { return "client.%s" }
//	func (ClientSpan) TagKeys() []spanschema.TagKey       { return []spanschema.TagKey{PeerHost, Method} }
//	func (ClientSpan) Events() []spanschema.EventValue    { return nil }
//
// Schemas are process-wide constants. Validate (or MustValidate at package init) checks the
// invariants a schema has to hold before it is used for enforcement.
//
// Templates:
//
// Names, tag keys and event values may contain at most one wildcard marker "%s". At check
// time the marker matches any substring, including the empty one. Any other use of "%"
// except the "%%" escape is rejected by ValidateTemplate.
package spanschema
