package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testClient(retries int) IClient {
	return NewClient(ClientConfig{
		Timeout:       5 * time.Second,
		Retries:       retries,
		BackoffFactor: 1 * time.Millisecond,
		MaxBackoff:    5 * time.Millisecond,
		RetryStatuses: []int{500, 502, 503, 504},
	})
}

func TestClientRetry(t *testing.T) {
	t.Run("retries on forcelist status until success", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		body, status, err := testClient(3).Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status mismatch: got %d, want 200", status)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("body mismatch: got %s", body)
		}
		if got := atomic.LoadInt32(&calls); got != 3 {
			t.Errorf("call count mismatch: got %d, want 3", got)
		}
	})

	t.Run("does not retry on non-forcelist status", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		_, status, err := testClient(3).Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status mismatch: got %d, want 404", status)
		}
		if got := atomic.LoadInt32(&calls); got != 1 {
			t.Errorf("call count mismatch: got %d, want 1", got)
		}
	})

	t.Run("gives up after attempt budget", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, status, err := testClient(3).Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if status != http.StatusInternalServerError {
			t.Errorf("status mismatch: got %d, want 500", status)
		}
		if got := atomic.LoadInt32(&calls); got != 3 {
			t.Errorf("call count mismatch: got %d, want 3", got)
		}
	})

	t.Run("sends custom headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("X-Custom") != "yes" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		_, status, err := testClient(1).Get(context.Background(), srv.URL, map[string]string{"X-Custom": "yes"})
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("header was not sent, got status %d", status)
		}
	})
}

func TestBackoff(t *testing.T) {
	c := NewClient(ClientConfig{
		Retries:       5,
		BackoffFactor: 1 * time.Second,
		MaxBackoff:    30 * time.Second,
	}).(*clientImpl)

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{2, 1 * time.Second},
		{3, 2 * time.Second},
		{4, 4 * time.Second},
		{5, 8 * time.Second},
	}
	for _, tc := range cases {
		if got := c.backoff(tc.attempt); got != tc.want {
			t.Errorf("backoff(%d) = %v, want %v", tc.attempt, got, tc.want)
		}
	}

	t.Run("caps at max backoff", func(t *testing.T) {
		capped := NewClient(ClientConfig{
			Retries:       10,
			BackoffFactor: 10 * time.Second,
			MaxBackoff:    15 * time.Second,
		}).(*clientImpl)
		if got := capped.backoff(4); got != 15*time.Second {
			t.Errorf("backoff(4) = %v, want capped 15s", got)
		}
	})
}
