package metrics

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

type nameOnly string

func (n nameOnly) Name() string                    { return string(n) }
func (n nameOnly) TagKeys() []spanschema.TagKey    { return nil }
func (n nameOnly) Events() []spanschema.EventValue { return nil }
