package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
	"github.com/AstroCB/UMD-Gym/internal/state"
)

func feedServer(t *testing.T, status int, body string) *recwell.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client, err := recwell.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestRefreshCmd_EndToEnd(t *testing.T) {
	client := feedServer(t, http.StatusOK,
		`{"data":[{"title":"ERC Weight Room","latest":{"count":40,"time":"3:00 PM","reason":"Open","usage":"Green"}}]}`)
	store := &state.Store{}

	msg, ok := refreshCmd(context.Background(), client, store)().(refreshDoneMsg)
	if !ok {
		t.Fatalf("command returned wrong message type")
	}
	if msg.err != nil {
		t.Fatalf("refresh returned error: %v", msg.err)
	}
	if msg.latest.Count != 40 || msg.latest.Time != "3:00 PM" || msg.latest.Usage != "Green" {
		t.Fatalf("latest = %+v, want the weight room sample", msg.latest)
	}

	snap := store.Snapshot()
	if !snap.HasFacility || snap.Facility.Title != recwell.WeightRoomTitle {
		t.Fatalf("store snapshot = %+v, want the weight room recorded", snap)
	}
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
}

func TestRefreshCmd_ErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"malformed json", http.StatusOK, `{not-json`, recwell.ErrParse},
		{"missing data array", http.StatusOK, `{"meta":1}`, recwell.ErrShape},
		{"venue absent", http.StatusOK, `{"data":[]}`, recwell.ErrNotFound},
		{"no latest sample", http.StatusOK, `{"data":[{"title":"ERC Weight Room"}]}`, recwell.ErrNotFound},
		{"http error", http.StatusServiceUnavailable, `down`, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := feedServer(t, tc.status, tc.body)
			store := &state.Store{}

			msg := refreshCmd(context.Background(), client, store)().(refreshDoneMsg)
			if msg.err == nil {
				t.Fatalf("refresh returned nil error")
			}
			if tc.sentinel != nil && !errors.Is(msg.err, tc.sentinel) {
				t.Fatalf("error = %v, want %v", msg.err, tc.sentinel)
			}
			if tc.sentinel == nil {
				for _, s := range []error{recwell.ErrParse, recwell.ErrShape, recwell.ErrNotFound} {
					if errors.Is(msg.err, s) {
						t.Fatalf("connectivity failure matched sentinel %v", s)
					}
				}
			}

			snap := store.Snapshot()
			if snap.LastError == nil || snap.ConsecutiveFailures != 1 {
				t.Fatalf("snapshot = %+v, want recorded failure", snap)
			}
		})
	}
}

func TestRefreshCmd_FailuresAccumulateUntilSuccess(t *testing.T) {
	store := &state.Store{}
	bad := feedServer(t, http.StatusInternalServerError, `x`)
	good := feedServer(t, http.StatusOK,
		`{"data":[{"title":"ERC Weight Room","latest":{"count":5,"time":"1:00 PM","reason":"Open","usage":"Green"}}]}`)

	ctx := context.Background()
	_ = refreshCmd(ctx, bad, store)()
	_ = refreshCmd(ctx, bad, store)()

	if snap := store.Snapshot(); !snap.IsOffline() {
		t.Fatalf("snapshot = %+v, want offline after two failures", snap)
	}

	_ = refreshCmd(ctx, good, store)()
	snap := store.Snapshot()
	if snap.IsOffline() || snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("snapshot = %+v, want cleared after success", snap)
	}
}

func TestRefresh_NilFetcher(t *testing.T) {
	if _, err := refresh(context.Background(), nil); err == nil {
		t.Fatalf("refresh with nil fetcher returned nil error")
	}
}
