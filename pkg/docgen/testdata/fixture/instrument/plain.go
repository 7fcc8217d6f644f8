package instrument

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

// Plain is a struct, not an enum.
type Plain struct {
	key string
}

var _ spanschema.TagKey = Plain{}

func (p Plain) Key() string {
	return "plain.key"
}
