package metaads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// BaseURL returns the versioned API root. It is derived from the configured
// version on every call so the two can never disagree.
func (m *metaImpl) BaseURL() string {
	return fmt.Sprintf("%s/%s", m.host, m.version)
}

// GetInsights fetches one page of the insights edge for an ad account.
func (m *metaImpl) GetInsights(ctx context.Context, input GetInsightsInput) (*InsightsPage, error) {
	reqURL, err := m.buildInsightsURL(input)
	if err != nil {
		return nil, err
	}

	body, statusCode, err := m.httpClient.Get(ctx, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}

	var page InsightsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insights page: %w", err)
	}
	page.Raw = body

	if page.Error != nil {
		return nil, page.Error
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	return &page, nil
}

func (m *metaImpl) buildInsightsURL(input GetInsightsInput) (string, error) {
	if input.AccountID == "" {
		return "", ErrAccountRequired
	}
	token := input.AccessToken
	if token == "" {
		token = m.accessToken
	}
	if token == "" {
		return "", ErrTokenRequired
	}

	fields := input.Fields
	if len(fields) == 0 {
		fields = DefaultInsightsFields()
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}

	q := url.Values{}
	q.Set("fields", strings.Join(fields, ","))
	q.Set("level", LevelAd)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", token)
	if input.Since != "" && input.Until != "" {
		timeRange, err := json.Marshal(map[string]string{
			"since": input.Since,
			"until": input.Until,
		})
		if err != nil {
			return "", fmt.Errorf("failed to marshal time_range: %w", err)
		}
		q.Set("time_range", string(timeRange))
	}
	if input.After != "" {
		q.Set("after", input.After)
	}

	return fmt.Sprintf("%s/%s/insights?%s", m.BaseURL(), input.AccountID, q.Encode()), nil
}
