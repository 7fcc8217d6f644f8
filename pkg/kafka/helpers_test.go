package kafka

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

type namedSchema string

func (n namedSchema) Name() string                    { return string(n) }
func (n namedSchema) TagKeys() []spanschema.TagKey    { return nil }
func (n namedSchema) Events() []spanschema.EventValue { return nil }
