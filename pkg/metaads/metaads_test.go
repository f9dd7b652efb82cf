package metaads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBaseURL(t *testing.T) {
	t.Run("embeds the configured version", func(t *testing.T) {
		client := New(Config{APIVersion: "v20.0", AccessToken: "tok"})
		base := client.BaseURL()
		if !strings.Contains(base, "v20.0") {
			t.Errorf("BaseURL %q does not embed version v20.0", base)
		}
		if base != "https://graph.facebook.com/v20.0" {
			t.Errorf("BaseURL mismatch: got %q", base)
		}
	})

	t.Run("defaults the version when unset", func(t *testing.T) {
		client := New(Config{AccessToken: "tok"})
		if !strings.Contains(client.BaseURL(), DefaultAPIVersion) {
			t.Errorf("BaseURL %q does not embed default version", client.BaseURL())
		}
	})
}

func TestDefaultInsightsFields(t *testing.T) {
	fields := DefaultInsightsFields()

	t.Run("no empty entries", func(t *testing.T) {
		for i, f := range fields {
			if f == "" {
				t.Errorf("field %d is empty", i)
			}
		}
	})

	t.Run("no duplicate entries", func(t *testing.T) {
		seen := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			if _, dup := seen[f]; dup {
				t.Errorf("duplicate field %q", f)
			}
			seen[f] = struct{}{}
		}
	})
}

func TestGetInsights(t *testing.T) {
	t.Run("requests the versioned insights edge with fields", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(InsightsPage{
				Data: []Insight{{AdID: "1", Spend: "10.5"}},
			})
		}))
		defer srv.Close()

		client := New(Config{
			APIVersion:  "v20.0",
			GraphHost:   srv.URL,
			AccessToken: "tok",
		})
		page, err := client.GetInsights(context.Background(), GetInsightsInput{
			AccountID: "act_123",
			Since:     "2024-01-01",
			Until:     "2024-01-31",
		})
		if err != nil {
			t.Fatalf("GetInsights failed: %v", err)
		}

		if gotPath != "/v20.0/act_123/insights" {
			t.Errorf("path mismatch: got %q", gotPath)
		}
		wantFields := strings.Join(DefaultInsightsFields(), ",")
		if got := gotQuery["fields"]; len(got) != 1 || got[0] != wantFields {
			t.Errorf("fields mismatch: got %v", got)
		}
		if got := gotQuery["level"]; len(got) != 1 || got[0] != LevelAd {
			t.Errorf("level mismatch: got %v", got)
		}
		if !strings.Contains(gotQuery["time_range"][0], "2024-01-01") {
			t.Errorf("time_range missing since: %v", gotQuery["time_range"])
		}
		if len(page.Data) != 1 || page.Data[0].AdID != "1" {
			t.Errorf("page data mismatch: %+v", page.Data)
		}
	})

	t.Run("passes the paging cursor", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("after") != "CURSOR" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			_ = json.NewEncoder(w).Encode(InsightsPage{})
		}))
		defer srv.Close()

		client := New(Config{GraphHost: srv.URL, AccessToken: "tok"})
		_, err := client.GetInsights(context.Background(), GetInsightsInput{
			AccountID: "act_123",
			After:     "CURSOR",
		})
		if err != nil {
			t.Fatalf("GetInsights failed: %v", err)
		}
	})

	t.Run("surfaces the graph error envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
		}))
		defer srv.Close()

		client := New(Config{GraphHost: srv.URL, AccessToken: "bad"})
		_, err := client.GetInsights(context.Background(), GetInsightsInput{AccountID: "act_123"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("error does not map to ErrInvalidToken: %v", err)
		}
		var graphErr *GraphAPIError
		if !errors.As(err, &graphErr) || graphErr.Code != 190 {
			t.Errorf("error is not a GraphAPIError with code 190: %v", err)
		}
	})

	t.Run("requires account and token", func(t *testing.T) {
		client := New(Config{})
		if _, err := client.GetInsights(context.Background(), GetInsightsInput{}); !errors.Is(err, ErrAccountRequired) {
			t.Errorf("want ErrAccountRequired, got %v", err)
		}
		if _, err := client.GetInsights(context.Background(), GetInsightsInput{AccountID: "act_1"}); !errors.Is(err, ErrTokenRequired) {
			t.Errorf("want ErrTokenRequired, got %v", err)
		}
	})
}
