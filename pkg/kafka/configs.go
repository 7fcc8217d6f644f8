package kafka

import "time"

const (
	// DefaultTopic receives violation records when Config.Topic is empty.
	DefaultTopic = "span-schema-violations"

	DefaultRequiredAcks = -1 // WaitForAll
	DefaultBatchSize    = 100
	DefaultBatchTimeout = 1 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultMaxAttempts  = 3
)

// Config defines the Kafka producer publishing span schema violations.
type Config struct {
	// Brokers is the list of bootstrap brokers, e.g. []string{"localhost:9092"}.
	Brokers []string `yaml:"brokers" envconfig:"SPANDOCS_KAFKA_BROKERS"`

	// Topic is the destination topic of violation records.
	Topic string `yaml:"topic" envconfig:"SPANDOCS_KAFKA_TOPIC"`

	// RequiredAcks is the number of acknowledgements required per batch:
	// 0 = none, 1 = leader, -1 = all replicas.
	RequiredAcks int `yaml:"required_acks" envconfig:"SPANDOCS_KAFKA_REQUIRED_ACKS"`

	BatchSize int `yaml:"batch_size" envconfig:"SPANDOCS_KAFKA_BATCH_SIZE"`

	BatchTimeout time.Duration `yaml:"batch_timeout" envconfig:"SPANDOCS_KAFKA_BATCH_TIMEOUT"`

	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"SPANDOCS_KAFKA_WRITE_TIMEOUT"`

	MaxAttempts int `yaml:"max_attempts" envconfig:"SPANDOCS_KAFKA_MAX_ATTEMPTS"`

	// CompressionCodec is one of "gzip", "snappy", "lz4", "zstd"; empty disables compression.
	CompressionCodec string `yaml:"compression_codec" envconfig:"SPANDOCS_KAFKA_COMPRESSION_CODEC"`
}

func (c Config) withDefaults() Config {
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.RequiredAcks == 0 {
		c.RequiredAcks = DefaultRequiredAcks
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchTimeout == 0 {
		c.BatchTimeout = DefaultBatchTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}
