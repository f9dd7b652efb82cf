package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, headers)
}

func (c *clientImpl) do(req *http.Request, headers map[string]string) ([]byte, int, error) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	var resp *http.Response
	var err error
	for attempt := 1; attempt <= c.config.Retries; attempt++ {
		if attempt > 1 {
			select {
			case <-req.Context().Done():
				return nil, 0, req.Context().Err()
			case <-time.After(c.backoff(attempt)):
			}
		}

		if attempt > 1 && req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, 0, fmt.Errorf("failed to rewind request body: %w", bodyErr)
			}
			req.Body = body
		}

		resp, err = c.client.Do(req)
		if err == nil && !c.shouldRetry(resp.StatusCode) {
			break
		}
		if err == nil && attempt < c.config.Retries {
			// Drain so the connection can be reused for the next attempt.
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("request failed after %d attempts: %w", c.config.Retries, err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *clientImpl) shouldRetry(statusCode int) bool {
	_, ok := c.retryStatuses[statusCode]
	return ok
}

// backoff returns the delay before the given attempt (attempt >= 2):
// factor, 2*factor, 4*factor, ... capped at MaxBackoff.
func (c *clientImpl) backoff(attempt int) time.Duration {
	d := c.config.BackoffFactor << uint(attempt-2)
	if d > c.config.MaxBackoff || d <= 0 {
		return c.config.MaxBackoff
	}
	return d
}
