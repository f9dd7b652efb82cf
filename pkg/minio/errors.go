package minio

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when Connect has not succeeded yet.
	ErrNotConnected = errors.New("minio: not connected")
	// ErrInvalidConfig is returned when required config is missing.
	ErrInvalidConfig = errors.New("minio: endpoint, access key and secret key are required")
)

// wrapErr annotates a MinIO SDK error with the failing operation.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("minio %s: %w", op, err)
}
