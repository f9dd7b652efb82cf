package http

import "context"

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Retries < 1 {
		cfg.Retries = DefaultRetries
	}
	if cfg.BackoffFactor <= 0 {
		cfg.BackoffFactor = DefaultBackoffFactor
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = DefaultMaxBackoff
	}
	if len(cfg.RetryStatuses) == 0 {
		cfg.RetryStatuses = DefaultRetryStatuses()
	}

	statuses := make(map[int]struct{}, len(cfg.RetryStatuses))
	for _, s := range cfg.RetryStatuses {
		statuses[s] = struct{}{}
	}

	return &clientImpl{
		client:        defaultHTTPClient(cfg.Timeout),
		config:        cfg,
		retryStatuses: statuses,
	}
}
