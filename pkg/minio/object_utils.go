package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// Put uploads an object to the configured bucket. A size of 0 streams an object of
// unknown size.
func (m *Minio) Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (int64, error) {
	actualSize := unknownSize
	if size != 0 {
		actualSize = size
	}

	info, err := m.Client.PutObject(ctx, m.cfg.Connection.BucketName, objectKey, reader, actualSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

// Get returns the content of an object of the configured bucket.
func (m *Minio) Get(ctx context.Context, objectKey string) ([]byte, error) {
	reader, err := m.Client.GetObject(ctx, m.cfg.Connection.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer func(reader io.ReadCloser) {
		if err := reader.Close(); err != nil {
			m.logger.Error("failed to close object reader", err, map[string]interface{}{"key": objectKey})
		}
	}(reader)

	return io.ReadAll(reader)
}

// PublishFile uploads the document at filePath under the configured prefix and returns
// its object key. An existing object is replaced.
func (m *Minio) PublishFile(ctx context.Context, filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	key := ObjectKey(m.cfg.Prefix, filePath)
	size, err := m.Put(ctx, key, bytes.NewReader(content), int64(len(content)), documentContentType)
	if err != nil {
		m.logger.Error("failed to publish document", err, map[string]interface{}{
			"bucket": m.cfg.Connection.BucketName,
			"key":    key,
		})
		return "", err
	}

	m.logger.Info("published document", nil, map[string]interface{}{
		"bucket": m.cfg.Connection.BucketName,
		"key":    key,
		"size":   size,
	})
	return key, nil
}

// ObjectKey joins prefix and the base name of filePath with forward slashes.
func ObjectKey(prefix, filePath string) string {
	return path.Join(filepath.ToSlash(prefix), filepath.Base(filePath))
}
