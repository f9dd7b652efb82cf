package metaads

import pkghttp "metaads-srv/pkg/http"

// Config holds configuration for the Meta Graph API client.
type Config struct {
	// APIVersion is the Graph API version, e.g. "v20.0".
	APIVersion string
	// GraphHost overrides the Graph API host. Used in tests.
	GraphHost string
	// AccessToken is the default token; per-call tokens take precedence.
	AccessToken string
	HTTPClient  pkghttp.IClient
}

// metaImpl implements IMetaAds.
type metaImpl struct {
	version     string
	host        string
	accessToken string
	httpClient  pkghttp.IClient
}

// GetInsightsInput describes one insights page request.
type GetInsightsInput struct {
	// AccountID is the ad account ID, e.g. "act_123456789".
	AccountID string
	// AccessToken overrides the client-level token when set.
	AccessToken string
	// Fields defaults to DefaultInsightsFields.
	Fields []string
	// Since/Until bound the time_range, formatted YYYY-MM-DD.
	Since string
	Until string
	// Limit defaults to DefaultPageLimit.
	Limit int
	// After is the paging cursor from a previous page.
	After string
}

// Insight is one row of the insights edge. The Graph API serializes
// numeric metrics as strings.
type Insight struct {
	AdID             string `json:"ad_id"`
	AdName           string `json:"ad_name"`
	AdsetID          string `json:"adset_id"`
	AdsetName        string `json:"adset_name"`
	CampaignID       string `json:"campaign_id"`
	CampaignName     string `json:"campaign_name"`
	Objective        string `json:"objective"`
	Spend            string `json:"spend"`
	CPC              string `json:"cpc"`
	CPM              string `json:"cpm"`
	Clicks           string `json:"clicks"`
	Frequency        string `json:"frequency"`
	Conversions      string `json:"conversions"`
	ConversionValues string `json:"conversion_values"`
	DateStart        string `json:"date_start"`
	DateStop         string `json:"date_stop"`
}

// Paging is the Graph API paging envelope.
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next,omitempty"`
}

// InsightsPage is one page of the insights edge.
type InsightsPage struct {
	Data   []Insight      `json:"data"`
	Paging Paging         `json:"paging"`
	Raw    []byte         `json:"-"`
	Error  *GraphAPIError `json:"error,omitempty"`
}

// HasNext reports whether another page is available.
func (p *InsightsPage) HasNext() bool {
	return p.Paging.Next != "" && p.Paging.Cursors.After != ""
}
