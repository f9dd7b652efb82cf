package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout time.Duration

	// Retries is the total number of attempts, including the first one.
	Retries int
	// BackoffFactor is the base delay; attempt n waits factor * 2^(n-1).
	BackoffFactor time.Duration
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration
	// RetryStatuses are the response codes that trigger a retry.
	RetryStatuses []int
}

// clientImpl implements IClient.
type clientImpl struct {
	client        *http.Client
	config        ClientConfig
	retryStatuses map[int]struct{}
}
