package events

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

// AnnotationEvents are emitted around annotated methods.
type AnnotationEvents int

var _ spanschema.EventValue = Before

const (
	// Annotated before executing the method.
	Before AnnotationEvents = iota
	// Annotated after executing the method.
	After
)

func (e AnnotationEvents) Value() string {
	switch e {
	case Before:
		return "%s.before"
	case After:
		return "%s.after"
	}
	return ""
}
