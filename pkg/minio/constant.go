package minio

import "time"

const (
	// DefaultConnectRetries is the number of initial connection attempts.
	DefaultConnectRetries = 3
	// DefaultPresignExpiry is how long presigned download URLs stay valid.
	DefaultPresignExpiry = 15 * time.Minute
	// ContentTypeJSON is the content type for archived payloads.
	ContentTypeJSON = "application/json"
)
