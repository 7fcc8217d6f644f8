package instrument

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

// Demo lists the tag keys of the demo instrumentation.
type Demo int

var _ spanschema.TagKey = Demo(0)

const (
	// second
	B Demo = iota
	// first
	A
)

func (d Demo) Key() string {
	switch d {
	case A:
		return "a.key"
	case B:
		return "b.key"
	}
	return ""
}
