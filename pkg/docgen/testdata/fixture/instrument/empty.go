package instrument

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

// Empty declares the capability without any variant.
type Empty int

var _ spanschema.TagKey = (*Empty)(nil)

func (*Empty) Key() string {
	return ""
}
