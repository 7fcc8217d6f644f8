package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Aleph-Alpha/spandocs/pkg/assertion"
	"github.com/segmentio/kafka-go"
)

// Violation is the record published for a failed check.
type Violation struct {
	Kind       assertion.Kind `json:"kind"`
	Schema     string         `json:"schema"`
	Value      string         `json:"value"`
	Descriptor bool           `json:"descriptor"`
	Allowed    []string       `json:"allowed"`
	ObservedAt time.Time      `json:"observed_at"`
}

// ViolationPublisher publishes span schema violations to Kafka.
type ViolationPublisher struct {
	cfg    Config
	writer messageWriter
	logger Logger
	now    func() time.Time
}

var _ assertion.Observer = (*ViolationPublisher)(nil)

// NewViolationPublisher creates a publisher writing to cfg.Topic.
func NewViolationPublisher(cfg Config, logger Logger) (*ViolationPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	cfg = cfg.withDefaults()

	logger.Info("Kafka violation publisher initialized", nil, map[string]interface{}{
		"brokers": cfg.Brokers,
		"topic":   cfg.Topic,
	})

	return newPublisher(cfg, createWriter(cfg, logger), logger), nil
}

func newPublisher(cfg Config, w messageWriter, logger Logger) *ViolationPublisher {
	return &ViolationPublisher{
		cfg:    cfg,
		writer: w,
		logger: logger,
		now:    time.Now,
	}
}

// ObserveCheck publishes ctx when it carries a violation.
func (p *ViolationPublisher) ObserveCheck(ctx assertion.CheckContext) {
	if ctx.Violation == nil {
		return
	}

	payload, err := json.Marshal(Violation{
		Kind:       ctx.Kind,
		Schema:     ctx.Schema,
		Value:      ctx.Value,
		Descriptor: ctx.Descriptor,
		Allowed:    ctx.Violation.Allowed,
		ObservedAt: p.now().UTC(),
	})
	if err != nil {
		p.logger.Error("Failed to encode span schema violation", err, nil)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ctx.Schema),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ctx.Kind)},
		},
	}
	if err := p.writer.WriteMessages(context.Background(), msg); err != nil {
		p.logger.Error("Failed to enqueue span schema violation", err, map[string]interface{}{
			"schema": ctx.Schema,
			"value":  ctx.Value,
		})
	}
}

// Close flushes pending violations and closes the writer.
func (p *ViolationPublisher) Close() error {
	return p.writer.Close()
}
