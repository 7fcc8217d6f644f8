package assertion

import (
	"errors"
	"sync"
	"testing"

	"github.com/Aleph-Alpha/spandocs/pkg/spanschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey int

const (
	keyMethod testKey = iota
	keyHeader
	keyUndeclared
)

func (k testKey) Key() string {
	switch k {
	case keyMethod:
		return "http.method"
	case keyHeader:
		return "http.header.%s"
	}
	return "undeclared"
}

type testEvent int

const (
	eventBefore testEvent = iota
	eventAfter
	eventUndeclared
)

func (e testEvent) Value() string {
	switch e {
	case eventBefore:
		return "%s.before"
	case eventAfter:
		return "%s.after"
	}
	return "undeclared"
}

type testSchema struct{}

func (testSchema) Name() string { return "http %s" }

func (testSchema) TagKeys() []spanschema.TagKey {
	return []spanschema.TagKey{keyMethod, keyHeader}
}

func (testSchema) Events() []spanschema.EventValue {
	return []spanschema.EventValue{eventBefore, eventAfter}
}

// TestObserver records executed checks.
type TestObserver struct {
	mu     sync.Mutex
	checks []CheckContext
}

func (t *TestObserver) ObserveCheck(ctx CheckContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checks = append(t.checks, ctx)
}

func (t *TestObserver) GetChecks() []CheckContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]CheckContext, len(t.checks))
	copy(out, t.checks)
	return out
}

func enforcing(opts ...Option) *Checker {
	return NewChecker(NewGate(Config{Available: true, Enabled: true}), opts...)
}

func TestGate(t *testing.T) {
	cases := []struct {
		cfg              Config
		identity, strs bool
	}{
		{Config{}, false, false},
		{Config{Enabled: true}, false, false},
		{Config{Available: true}, true, false},
		{Config{Available: true, Enabled: true}, true, true},
	}
	for _, tc := range cases {
		g := NewGate(tc.cfg)
		assert.Equal(t, tc.identity, g.IdentityChecks(), "%+v", tc.cfg)
		assert.Equal(t, tc.strs, g.StringChecks(), "%+v", tc.cfg)
	}
}

func TestAssertKeyValid(t *testing.T) {
	c := enforcing()
	s := testSchema{}

	assert.NoError(t, c.AssertKeyValid("http.method", s))
	assert.NoError(t, c.AssertKeyValid("http.header.x-request-id", s))

	err := c.AssertKeyValid("db.statement", s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaViolation))

	var violation *ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, KindTagKey, violation.Kind)
	assert.Equal(t, "db.statement", violation.Value)
	assert.Equal(t, "http %s", violation.Schema)
	assert.Equal(t, []string{"http.method", "http.header.%s"}, violation.Allowed)
	assert.Contains(t, err.Error(), "db.statement")
}

func TestStringChecksRequireEnabledFlag(t *testing.T) {
	c := NewChecker(NewGate(Config{Available: true}))
	s := testSchema{}

	assert.NoError(t, c.AssertKeyValid("db.statement", s))
	assert.NoError(t, c.AssertNameValid("something else", s))
	assert.NoError(t, c.AssertEventValid("nope", s))

	assert.Error(t, c.AssertTagKeyValid(keyUndeclared, s))
	assert.Error(t, c.AssertEventValueValid(eventUndeclared, s))
}

func TestChecksInactiveWithoutReporting(t *testing.T) {
	c := NewChecker(NewGate(Config{Enabled: true}))
	s := testSchema{}

	assert.NoError(t, c.AssertKeyValid("db.statement", s))
	assert.NoError(t, c.AssertTagKeyValid(keyUndeclared, s))
	assert.NoError(t, c.AssertNameValid("x", s))
	assert.NoError(t, c.AssertEventValid("x", s))
	assert.NoError(t, c.AssertEventValueValid(eventUndeclared, s))
}

func TestAssertTagKeyValidUsesDescriptorEquality(t *testing.T) {
	c := enforcing()
	s := testSchema{}

	assert.NoError(t, c.AssertTagKeyValid(keyMethod, s))
	assert.NoError(t, c.AssertTagKeyValid(keyHeader, s))

	err := c.AssertTagKeyValid(keyUndeclared, s)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

type sliceKey struct {
	parts []string
}

func (k sliceKey) Key() string { return "http.method" }

type sliceEvent struct {
	parts []string
}

func (e sliceEvent) Value() string { return "x.before" }

type sliceSchema struct{}

func (sliceSchema) Name() string { return "slices" }
func (sliceSchema) TagKeys() []spanschema.TagKey {
	return []spanschema.TagKey{sliceKey{parts: []string{"a"}}}
}
func (sliceSchema) Events() []spanschema.EventValue {
	return []spanschema.EventValue{sliceEvent{parts: []string{"a"}}}
}

func TestIdentityChecksRejectUnusableDescriptors(t *testing.T) {
	c := enforcing()

	var violation *ViolationError
	err := c.AssertTagKeyValid(nil, testSchema{})
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "<nil>", violation.Value)
	assert.Equal(t, []string{"http.method", "http.header.%s"}, violation.Allowed)

	assert.ErrorIs(t, c.AssertEventValueValid(nil, testSchema{}), ErrSchemaViolation)

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, c.AssertTagKeyValid(sliceKey{parts: []string{"a"}}, sliceSchema{}), ErrSchemaViolation)
		assert.ErrorIs(t, c.AssertEventValueValid(sliceEvent{parts: []string{"a"}}, sliceSchema{}), ErrSchemaViolation)
	})
	assert.Error(t, spanschema.Validate(sliceSchema{}), "such schemas never validate")
}

type percentSchema struct{}

func (percentSchema) Name() string                    { return "rate 100%%s" }
func (percentSchema) TagKeys() []spanschema.TagKey    { return nil }
func (percentSchema) Events() []spanschema.EventValue { return nil }

func TestEscapedPercentIsLiteral(t *testing.T) {
	c := enforcing()
	require.NoError(t, spanschema.Validate(percentSchema{}))

	assert.NoError(t, c.AssertNameValid("rate 100%s", percentSchema{}))
	assert.ErrorIs(t, c.AssertNameValid("rate 100%anything", percentSchema{}), ErrSchemaViolation)
}

func TestAssertNameValid(t *testing.T) {
	c := enforcing()
	s := testSchema{}

	assert.NoError(t, c.AssertNameValid("http GET", s))
	assert.NoError(t, c.AssertNameValid("http ", s))

	err := c.AssertNameValid("grpc call", s)
	var violation *ViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, KindName, violation.Kind)
	assert.Equal(t, []string{"http %s"}, violation.Allowed)
}

func TestAssertEventValid(t *testing.T) {
	c := enforcing()
	s := testSchema{}

	assert.NoError(t, c.AssertEventValid("save.before", s))
	assert.NoError(t, c.AssertEventValid("save.after", s))
	assert.ErrorIs(t, c.AssertEventValid("save.afterFailure", s), ErrSchemaViolation)

	assert.NoError(t, c.AssertEventValueValid(eventBefore, s))
	assert.ErrorIs(t, c.AssertEventValueValid(eventUndeclared, s), ErrSchemaViolation)
}

func TestObserverSeesEveryExecutedCheck(t *testing.T) {
	obs := &TestObserver{}
	c := enforcing(WithObserver(obs))
	s := testSchema{}

	require.NoError(t, c.AssertKeyValid("http.method", s))
	require.Error(t, c.AssertTagKeyValid(keyUndeclared, s))

	checks := obs.GetChecks()
	require.Len(t, checks, 2)
	assert.Nil(t, checks[0].Violation)
	assert.False(t, checks[0].Descriptor)
	assert.Equal(t, "http.method", checks[0].Value)

	require.NotNil(t, checks[1].Violation)
	assert.True(t, checks[1].Descriptor)
	assert.Equal(t, "undeclared", checks[1].Value)
}

func TestMultiObserver(t *testing.T) {
	a, b := &TestObserver{}, &TestObserver{}
	MultiObserver{a, b}.ObserveCheck(CheckContext{Kind: KindName})

	assert.Len(t, a.GetChecks(), 1)
	assert.Len(t, b.GetChecks(), 1)
}
