package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

var fixedTime = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func newTestPublisher(t *testing.T, w messageWriter) (*ViolationPublisher, *MockLogger) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	p := newPublisher(Config{Topic: DefaultTopic}.withDefaults(), w, log)
	p.now = func() time.Time { return fixedTime }
	return p, log
}

func TestObserveCheckIgnoresPassingChecks(t *testing.T) {
	w := &fakeWriter{}
	p, _ := newTestPublisher(t, w)

	p.ObserveCheck(assertion.CheckContext{Kind: assertion.KindTagKey, Schema: "http", Value: "http.method"})

	assert.Empty(t, w.messages)
}

func TestObserveCheckPublishesViolation(t *testing.T) {
	w := &fakeWriter{}
	p, _ := newTestPublisher(t, w)

	p.ObserveCheck(assertion.CheckContext{
		Kind:   assertion.KindTagKey,
		Schema: "http.request",
		Value:  "http.methd",
		Violation: &assertion.ViolationError{
			Kind:    assertion.KindTagKey,
			Value:   "http.methd",
			Schema:  "http.request",
			Allowed: []string{"http.method", "http.header.%s"},
		},
	})

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "http.request", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "tag_key", string(msg.Headers[0].Value))

	var got Violation
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, Violation{
		Kind:       assertion.KindTagKey,
		Schema:     "http.request",
		Value:      "http.methd",
		Allowed:    []string{"http.method", "http.header.%s"},
		ObservedAt: fixedTime,
	}, got)
}

func TestObserveCheckLogsWriteFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p, log := newTestPublisher(t, w)

	log.EXPECT().Error("Failed to enqueue span schema violation", w.err, gomock.Any()).Times(1)

	p.ObserveCheck(assertion.CheckContext{
		Kind:      assertion.KindEvent,
		Schema:    "db",
		Value:     "oops",
		Violation: &assertion.ViolationError{Kind: assertion.KindEvent},
	})
}

func TestCheckerViolationsReachPublisher(t *testing.T) {
	w := &fakeWriter{}
	p, _ := newTestPublisher(t, w)
	checker := assertion.NewChecker(
		assertion.NewGate(assertion.Config{Available: true, Enabled: true}),
		assertion.WithObserver(p),
	)

	require.NoError(t, checker.AssertNameValid("orders", namedSchema("orders")))
	require.Error(t, checker.AssertNameValid("payments", namedSchema("orders")))

	require.Len(t, w.messages, 1)
	assert.Equal(t, "orders", string(w.messages[0].Key))
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestNewViolationPublisherRequiresBrokers(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewViolationPublisher(Config{}, NewMockLogger(ctrl))
	assert.ErrorIs(t, err, ErrNoBrokers)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Brokers: []string{"localhost:9092"}}.withDefaults()

	assert.Equal(t, DefaultTopic, cfg.Topic)
	assert.Equal(t, DefaultRequiredAcks, cfg.RequiredAcks)
	assert.Equal(t, DefaultBatchSize, cfg.BatchSize)
	assert.Equal(t, DefaultBatchTimeout, cfg.BatchTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
}

func TestCreateWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := Config{Brokers: []string{"localhost:9092"}, CompressionCodec: "zstd"}.withDefaults()

	w := createWriter(cfg, NewMockLogger(ctrl))

	assert.True(t, w.Async)
	assert.Equal(t, DefaultTopic, w.Topic)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
