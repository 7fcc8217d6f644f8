package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoggingObserverLogsViolations(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := NewMockLogger(ctrl)

	logger.EXPECT().
		Warn("span schema violation", gomock.Any(), gomock.Any()).
		Do(func(msg string, err error, fields ...map[string]interface{}) {
			assert.ErrorIs(t, err, ErrSchemaViolation)
			require.Len(t, fields, 1)
			assert.Equal(t, "tag_key", fields[0]["kind"])
			assert.Equal(t, "db.statement", fields[0]["value"])
		}).
		Times(1)

	c := enforcing(WithObserver(NewLoggingObserver(logger)))
	s := testSchema{}

	require.NoError(t, c.AssertKeyValid("http.method", s))
	require.Error(t, c.AssertKeyValid("db.statement", s))
}

func TestCheckerNotifiesMockObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockObserver(ctrl)

	obs.EXPECT().ObserveCheck(CheckContext{
		Kind:   KindName,
		Schema: "http %s",
		Value:  "http GET",
	}).Times(1)

	c := enforcing(WithObserver(obs))
	require.NoError(t, c.AssertNameValid("http GET", testSchema{}))
}

func TestNoObserverCallsWhenInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	obs := NewMockObserver(ctrl)

	c := NewChecker(NewGate(Config{}), WithObserver(obs))
	assert.NoError(t, c.AssertTagKeyValid(keyUndeclared, testSchema{}))
}
