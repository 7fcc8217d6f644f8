package assertion

import (
	"fmt"

	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
)

func tagKeyTemplates(keys []spanschema.TagKey) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != nil {
			out = append(out, k.Key())
		}
	}
	return out
}

func eventTemplates(events []spanschema.EventValue) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		if e != nil {
			out = append(out, e.Value())
		}
	}
	return out
}

// describeKey names a descriptor that cannot take part in an identity check.
func describeKey(k spanschema.TagKey) string {
	if k == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T(%s)", k, k.Key())
}

func describeEvent(e spanschema.EventValue) string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T(%s)", e, e.Value())
}
