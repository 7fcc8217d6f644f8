package minio

import "time"

const (
	unknownSize        int64 = -1
	operationTimeout         = 10 * time.Second
	connectTimeout           = 30 * time.Second
	documentContentType      = "text/asciidoc; charset=utf-8"
)

// Config configures where generated documentation is published.
type Config struct {
	Connection ConnectionConfig // Connection details for MinIO server

	// Prefix is prepended to the object key of every published document,
	// e.g. "docs/spans/". Empty publishes at the bucket root.
	Prefix string `yaml:"prefix" envconfig:"SPANDOCS_MINIO_PREFIX"`
}

// ConnectionConfig holds the MinIO endpoint and credentials.
type ConnectionConfig struct {
	Endpoint        string `yaml:"endpoint" envconfig:"SPANDOCS_MINIO_ENDPOINT"`               // MinIO server endpoint, e.g., "localhost:9000"
	AccessKeyID     string `yaml:"access_key_id" envconfig:"SPANDOCS_MINIO_ACCESS_KEY_ID"`         // MinIO access key
	SecretAccessKey string `yaml:"secret_access_key" envconfig:"SPANDOCS_MINIO_SECRET_ACCESS_KEY"` // MinIO secret key
	UseSSL          bool   `yaml:"use_ssl" envconfig:"SPANDOCS_MINIO_USE_SSL"`                     // Use SSL (true for "https", false for "http")
	BucketName      string `yaml:"bucket_name" envconfig:"SPANDOCS_MINIO_BUCKET"`                  // Bucket receiving the documents
	Region          string `yaml:"region" envconfig:"SPANDOCS_MINIO_REGION"`                       // Region for the bucket (e.g., "us-east-1")
}
