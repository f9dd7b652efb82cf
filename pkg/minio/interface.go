package minio

import (
	"context"
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the interface for object storage operations.
// Implementations are safe for concurrent use.
type MinIO interface {
	Connect(ctx context.Context) error
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	Close() error

	// EnsureBucket creates the bucket when it does not exist yet.
	EnsureBucket(ctx context.Context, bucket string) error
	// Upload stores an object and returns its info.
	Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error)
	// PresignedGetURL returns a temporary download URL for an object.
	PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// NewMinIO creates a new MinIO client. Connect must be called before use.
func NewMinIO(cfg *MinIOConfig) (MinIO, error) {
	if cfg == nil || cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrInvalidConfig
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, wrapErr(err, "new_client")
	}

	return &implMinIO{
		config:      cfg,
		minioClient: client,
	}, nil
}
