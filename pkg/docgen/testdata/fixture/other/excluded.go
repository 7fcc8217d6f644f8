package other

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

type Excluded int

var _ spanschema.TagKey = Only

const (
	// excluded by the inclusion pattern
	Only Excluded = iota
)

func (e Excluded) Key() string {
	switch e {
	case Only:
		return "excluded.key"
	}
	return ""
}
