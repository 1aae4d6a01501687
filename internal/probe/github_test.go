package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const eventsFixture = `[
	{"type": "PushEvent", "payload": {"commits": [
		{"author": {"email": "jane@example.com"}},
		{"author": {"email": "jane@example.com"}},
		{"author": {"email": "jane@work.io"}}
	]}},
	{"type": "WatchEvent", "payload": {}},
	{"type": "PushEvent", "payload": {"commits": [
		{"author": {"email": ""}},
		{"author": {"email": "jane@work.io"}}
	]}}
]`

func TestHarvestGitHubEmails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/janedoe/events/public" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(eventsFixture))
	}))
	defer srv.Close()

	p := NewProber(2*time.Second, "test-agent")
	p.eventsBase = srv.URL

	emails, err := p.HarvestGitHubEmails(context.Background(), "janedoe")
	if err != nil {
		t.Fatalf("harvest failed: %v", err)
	}
	if len(emails) != 2 {
		t.Fatalf("got %d emails, want 2: %v", len(emails), emails)
	}
	if emails[0] != "jane@example.com" || emails[1] != "jane@work.io" {
		t.Errorf("emails = %v", emails)
	}
}

func TestHarvestGitHubEmailsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden) // rate limited
	}))
	defer srv.Close()

	p := NewProber(2*time.Second, "test-agent")
	p.eventsBase = srv.URL

	if _, err := p.HarvestGitHubEmails(context.Background(), "janedoe"); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestHarvestGitHubEmailsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "not an array"}`))
	}))
	defer srv.Close()

	p := NewProber(2*time.Second, "test-agent")
	p.eventsBase = srv.URL

	if _, err := p.HarvestGitHubEmails(context.Background(), "janedoe"); err == nil {
		t.Error("expected error on malformed payload")
	}
}
