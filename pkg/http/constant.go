package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default total number of attempts.
	DefaultRetries = 3
	// DefaultBackoffFactor is the default base delay between attempts.
	DefaultBackoffFactor = 1 * time.Second
	// DefaultMaxBackoff caps the exponential backoff delay.
	DefaultMaxBackoff = 30 * time.Second
)

// DefaultRetryStatuses are the response codes that trigger a retry.
func DefaultRetryStatuses() []int {
	return []int{500, 502, 503, 504}
}

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:       DefaultTimeout,
		Retries:       DefaultRetries,
		BackoffFactor: DefaultBackoffFactor,
		MaxBackoff:    DefaultMaxBackoff,
		RetryStatuses: DefaultRetryStatuses(),
	}
}
