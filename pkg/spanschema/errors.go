package spanschema

import "errors"

var (
	// ErrEmptyName is returned when a schema declares an empty name pattern.
	ErrEmptyName = errors.New("schema name is empty")

	// ErrDuplicateTagKey is returned when two tag keys of a schema share the same key.
	ErrDuplicateTagKey = errors.New("duplicate tag key")

	// ErrMalformedTemplate is returned when a template uses the placeholder marker incorrectly.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrNilDescriptor is returned when a schema lists a nil tag key or event.
	ErrNilDescriptor = errors.New("nil descriptor")

	// ErrUncomparableDescriptor is returned when a tag key or event cannot be compared with ==.
	ErrUncomparableDescriptor = errors.New("descriptor type is not comparable")
)
