package metaads

import (
	"context"

	pkghttp "metaads-srv/pkg/http"
)

// IMetaAds defines the interface for the Meta Graph API client.
// Implementations are safe for concurrent use.
type IMetaAds interface {
	// BaseURL returns the versioned API root, e.g. "https://graph.facebook.com/v20.0".
	BaseURL() string
	// GetInsights fetches one page of the insights edge for an ad account.
	GetInsights(ctx context.Context, input GetInsightsInput) (*InsightsPage, error)
}

// New creates a new Graph API client. Returns the interface.
func New(cfg Config) IMetaAds {
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.GraphHost == "" {
		cfg.GraphHost = DefaultGraphHost
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &metaImpl{
		version:     cfg.APIVersion,
		host:        cfg.GraphHost,
		accessToken: cfg.AccessToken,
		httpClient:  cfg.HTTPClient,
	}
}

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:       DefaultTimeout,
		Retries:       DefaultRetries,
		BackoffFactor: DefaultBackoffFactor,
		RetryStatuses: pkghttp.DefaultRetryStatuses(),
	})
}
