package malformed

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

// Tags has one variant whose key is computed.
type Tags int

var _ spanschema.TagKey = Tags(0)

const (
	// literal key
	Literal Tags = iota
	// computed key
	Computed
	// key missing from the switch
	Missing
)

func (t Tags) Key() string {
	switch t {
	case Literal:
		return `literal.key`
	case Computed:
		prefix := "computed"
		return prefix + ".key"
	}
	return ""
}
