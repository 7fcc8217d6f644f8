package spanschema

// Wildcard is the placeholder marker matched against arbitrary substrings at check time.
const Wildcard = "%s"

// TagKey is a stable identifier for one tag dimension of a span.
type TagKey interface {
	Key() string
}

// EventValue is the value template of an event a span may emit.
type EventValue interface {
	Value() string
}

// Describer is implemented by descriptors that carry a human readable description.
type Describer interface {
	Description() string
}

// Schema is the contract of one kind of span.
//
// Implementations must return the same values on every call. Tag keys and event values
// must be comparable, since descriptor-based checks rely on equality with the declared
// descriptors.
type Schema interface {
	// Name returns the span name pattern.
	Name() string

	// TagKeys returns the tag keys the span may carry.
	TagKeys() []TagKey

	// Events returns the events the span may emit.
	Events() []EventValue
}

// DescriptionOf returns the description of v, or "" when v does not describe itself.
func DescriptionOf(v interface{}) string {
	if d, ok := v.(Describer); ok {
		return d.Description()
	}
	return ""
}
