package rabbitmq

import "errors"

var (
	// ErrHostRequired is returned when no host is configured.
	ErrHostRequired = errors.New("rabbitmq: host is required")
	// ErrNotConnected is returned when the connection has not been opened.
	ErrNotConnected = errors.New("rabbitmq: not connected")
)
