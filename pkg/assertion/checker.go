package assertion

import "github.com/Aleph-Alpha/spandocs/pkg/spanschema"

// Checker validates span names, tag keys and events against schemas.
type Checker struct {
	gate     Gate
	cache    *PatternCache
	observer Observer
}

// Option configures a Checker.
type Option func(*Checker)

// WithObserver registers an observer notified about every executed check.
func WithObserver(o Observer) Option {
	return func(c *Checker) {
		c.observer = o
	}
}

// WithPatternCache replaces DefaultPatternCache.
func WithPatternCache(cache *PatternCache) Option {
	return func(c *Checker) {
		c.cache = cache
	}
}

// NewChecker returns a checker enforcing what gate allows.
func NewChecker(gate Gate, opts ...Option) *Checker {
	c := &Checker{
		gate:     gate,
		cache:    DefaultPatternCache,
		observer: NoOpObserver{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Gate returns the enforcement state of the checker.
func (c *Checker) Gate() Gate {
	return c.gate
}

// Matches reports whether candidate satisfies the allowed template.
func (c *Checker) Matches(candidate, allowed string) bool {
	return c.cache.Matches(candidate, allowed)
}

// AssertKeyValid fails unless key matches one of the tag keys of s.
func (c *Checker) AssertKeyValid(key string, s spanschema.Schema) error {
	if !c.gate.StringChecks() {
		return nil
	}
	allowed := s.TagKeys()
	for _, k := range allowed {
		if k != nil && c.cache.Matches(key, k.Key()) {
			return c.pass(KindTagKey, s, key, false)
		}
	}
	return c.fail(KindTagKey, s, key, false, tagKeyTemplates(allowed))
}

// AssertTagKeyValid fails unless key is one of the tag keys declared by s.
func (c *Checker) AssertTagKeyValid(key spanschema.TagKey, s spanschema.Schema) error {
	if !c.gate.IdentityChecks() {
		return nil
	}
	allowed := s.TagKeys()
	if !spanschema.Comparable(key) {
		return c.fail(KindTagKey, s, describeKey(key), true, tagKeyTemplates(allowed))
	}
	for _, k := range allowed {
		if k == key {
			return c.pass(KindTagKey, s, key.Key(), true)
		}
	}
	return c.fail(KindTagKey, s, key.Key(), true, tagKeyTemplates(allowed))
}

// AssertNameValid fails unless name matches the name pattern of s.
func (c *Checker) AssertNameValid(name string, s spanschema.Schema) error {
	if !c.gate.StringChecks() {
		return nil
	}
	pattern := s.Name()
	if c.cache.Matches(name, pattern) {
		return c.pass(KindName, s, name, false)
	}
	return c.fail(KindName, s, name, false, []string{pattern})
}

// AssertEventValid fails unless value matches one of the events of s.
func (c *Checker) AssertEventValid(value string, s spanschema.Schema) error {
	if !c.gate.StringChecks() {
		return nil
	}
	allowed := s.Events()
	for _, e := range allowed {
		if e != nil && c.cache.Matches(value, e.Value()) {
			return c.pass(KindEvent, s, value, false)
		}
	}
	return c.fail(KindEvent, s, value, false, eventTemplates(allowed))
}

// AssertEventValueValid fails unless v is one of the events declared by s.
func (c *Checker) AssertEventValueValid(v spanschema.EventValue, s spanschema.Schema) error {
	if !c.gate.IdentityChecks() {
		return nil
	}
	allowed := s.Events()
	if !spanschema.Comparable(v) {
		return c.fail(KindEvent, s, describeEvent(v), true, eventTemplates(allowed))
	}
	for _, e := range allowed {
		if e == v {
			return c.pass(KindEvent, s, v.Value(), true)
		}
	}
	return c.fail(KindEvent, s, v.Value(), true, eventTemplates(allowed))
}

func (c *Checker) pass(kind Kind, s spanschema.Schema, value string, descriptor bool) error {
	c.observer.ObserveCheck(CheckContext{
		Kind:       kind,
		Schema:     s.Name(),
		Value:      value,
		Descriptor: descriptor,
	})
	return nil
}

func (c *Checker) fail(kind Kind, s spanschema.Schema, value string, descriptor bool, allowed []string) error {
	err := &ViolationError{
		Kind:    kind,
		Value:   value,
		Schema:  s.Name(),
		Allowed: allowed,
	}
	c.observer.ObserveCheck(CheckContext{
		Kind:       kind,
		Schema:     err.Schema,
		Value:      value,
		Descriptor: descriptor,
		Violation:  err,
	})
	return err
}
