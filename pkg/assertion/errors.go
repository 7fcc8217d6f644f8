package assertion

import (
	"errors"
	"fmt"
)

// ErrSchemaViolation matches every *ViolationError via errors.Is.
var ErrSchemaViolation = errors.New("span schema violation")

// Kind names the part of a span a check applies to.
type Kind string

const (
	KindTagKey Kind = "tag_key"
	KindEvent  Kind = "event"
	KindName   Kind = "name"
)

// ViolationError is returned when a span mutation does not satisfy its schema.
type ViolationError struct {
	// Kind is the part of the span that was rejected.
	Kind Kind
	// Value is the rejected value.
	Value string
	// Schema is the name pattern of the schema the value was checked against.
	Schema string
	// Allowed lists the templates the value could have matched.
	Allowed []string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("the %s [%s] is invalid for span [%s], you can use only one matching %q",
		kindLabel(e.Kind), e.Value, e.Schema, e.Allowed)
}

// Is reports whether target is ErrSchemaViolation.
func (e *ViolationError) Is(target error) bool {
	return target == ErrSchemaViolation
}

func kindLabel(k Kind) string {
	switch k {
	case KindTagKey:
		return "tag key"
	default:
		return string(k)
	}
}
