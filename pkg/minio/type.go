package minio

import (
	"sync"

	miniogo "github.com/minio/minio-go/v7"
)

// MinIOConfig holds MinIO connection configuration.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

// implMinIO implements MinIO.
type implMinIO struct {
	mu          sync.RWMutex
	connected   bool
	config      *MinIOConfig
	minioClient *miniogo.Client
}
