package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return wrapErr(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := m.Connect(ctx); err == nil {
			return nil
		} else {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return ErrNotConnected
	}
	_, err := m.minioClient.ListBuckets(ctx)
	return wrapErr(err, "health_check")
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := m.minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return wrapErr(err, "check_bucket_exists")
	}
	if exists {
		return nil
	}
	err = m.minioClient.MakeBucket(ctx, bucket, miniogo.MakeBucketOptions{Region: m.config.Region})
	return wrapErr(err, "create_bucket")
}

// Upload stores an object and returns its info.
func (m *implMinIO) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error) {
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	info, err := m.minioClient.PutObject(ctx, bucket, key, reader, size, miniogo.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, wrapErr(err, "upload")
	}
	return &ObjectInfo{
		Bucket: info.Bucket,
		Key:    info.Key,
		Size:   info.Size,
		ETag:   info.ETag,
	}, nil
}

// PresignedGetURL returns a temporary download URL for an object.
func (m *implMinIO) PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}
	u, err := m.minioClient.PresignedGetObject(ctx, bucket, key, expiry, nil)
	if err != nil {
		return "", wrapErr(err, "presign_get")
	}
	return u.String(), nil
}
