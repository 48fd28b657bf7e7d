package recwell

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseFeedURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseFeedURL("")
	if err != nil {
		t.Fatalf("parseFeedURL returned error: %v", err)
	}
	if u.String() != defaultFeedURL {
		t.Fatalf("url = %q, want %q", u.String(), defaultFeedURL)
	}

	u, err = parseFeedURL("  example.com/gym.json  ")
	if err != nil {
		t.Fatalf("parseFeedURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "example.com" || u.Path != "/gym.json" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseFeedURL("https://"); err == nil {
		t.Fatalf("parseFeedURL returned nil error for hostless url, want error")
	}
}

func TestClient_FetchSendsHeadersAndReturnsBody(t *testing.T) {
	t.Parallel()

	const payload = `{"data":[]}`
	var gotUserAgent, gotAccept, gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	body, err := c.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if string(body) != payload {
		t.Fatalf("Fetch body = %q, want %q", body, payload)
	}
	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "umdgym/") {
		t.Fatalf("User-Agent = %q, want umdgym/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID header missing")
	}
}

func TestClient_FetchHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 503") {
		t.Fatalf("Fetch error = %v, want status 503 error", err)
	}
}

func TestClient_FetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(url)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("Fetch error = %v, want execute request error", err)
	}
}
