package metaads

import "time"

const (
	// DefaultAPIVersion is the Graph API version used when none is configured.
	DefaultAPIVersion = "v20.0"
	// DefaultGraphHost is the Graph API host.
	DefaultGraphHost = "https://graph.facebook.com"

	// DefaultTimeout is the default HTTP client timeout for the Graph API.
	DefaultTimeout = 30 * time.Second
	// DefaultRetries is the default total number of attempts.
	DefaultRetries = 3
	// DefaultBackoffFactor is the default base delay between attempts.
	DefaultBackoffFactor = 1 * time.Second

	// DefaultPageLimit is the default number of rows requested per insights page.
	DefaultPageLimit = 500
	// LevelAd is the reporting level used for insight queries.
	LevelAd = "ad"
)

// Graph API error codes this client cares about.
const (
	ErrCodeInvalidToken  = 190
	ErrCodeRateLimited   = 17
	ErrCodeUnknownServer = 1
)

// DefaultInsightsFields returns the field list requested from the insights
// edge when the caller does not provide one. Order matters downstream.
func DefaultInsightsFields() []string {
	return []string{
		"spend",
		"cpc",
		"cpm",
		"objective",
		"adset_name",
		"adset_id",
		"clicks",
		"campaign_name",
		"campaign_id",
		"conversions",
		"frequency",
		"conversion_values",
		"ad_name",
		"ad_id",
	}
}
