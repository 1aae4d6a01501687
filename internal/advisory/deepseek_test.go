package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ewetherby/dragnet/internal/identgen"
)

// chatResponse builds the completions payload the client expects, with the
// plan embedded as the message content.
func chatResponse(t *testing.T, content string) []byte {
	t.Helper()
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	return data
}

func TestSuggestParsesPlan(t *testing.T) {
	plan := `{"username_patterns": ["jdoe", "johndoe"], "email_patterns": ["jdoe@gmail.com"], "platforms": ["Instagram"], "strategy": "focused"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}
		w.Write(chatResponse(t, plan))
	}))
	defer srv.Close()

	c := NewDeepSeekClient("test-key", "", srv.URL)
	got, err := c.Suggest(context.Background(), "John Doe", map[string]string{"location": "Texas"})
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(got.UsernamePatterns) != 2 || got.UsernamePatterns[0] != "jdoe" {
		t.Errorf("username patterns = %v", got.UsernamePatterns)
	}
	if got.Strategy != "focused" {
		t.Errorf("strategy = %q", got.Strategy)
	}
}

func TestSuggestStripsCodeFences(t *testing.T) {
	fenced := "```json\n{\"username_patterns\": [\"jdoe\"], \"strategy\": \"s\"}\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatResponse(t, fenced))
	}))
	defer srv.Close()

	c := NewDeepSeekClient("test-key", "", srv.URL)
	got, err := c.Suggest(context.Background(), "John Doe", nil)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(got.UsernamePatterns) != 1 {
		t.Errorf("patterns = %v", got.UsernamePatterns)
	}
}

func TestSuggestRejectsEmptyPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatResponse(t, `{"strategy": "nothing to try"}`))
	}))
	defer srv.Close()

	c := NewDeepSeekClient("test-key", "", srv.URL)
	if _, err := c.Suggest(context.Background(), "John Doe", nil); err == nil {
		t.Error("expected error for plan without username patterns")
	}
}

func TestSuggestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewDeepSeekClient("test-key", "", srv.URL)
	if _, err := c.Suggest(context.Background(), "John Doe", nil); err == nil {
		t.Error("expected error on API failure")
	}
}

func TestClientUnavailableWithoutKey(t *testing.T) {
	c := NewDeepSeekClient("", "", "")
	if c.Available() {
		t.Error("keyless client reports available")
	}
	if _, err := c.Suggest(context.Background(), "John Doe", nil); err == nil {
		t.Error("keyless Suggest did not fail")
	}
}

func TestFallbackPlanMatchesGenerator(t *testing.T) {
	plan := FallbackPlan("John Smith")

	wantUsers := identgen.Usernames("John Smith")
	if len(plan.UsernamePatterns) != len(wantUsers) {
		t.Errorf("plan has %d usernames, generator has %d", len(plan.UsernamePatterns), len(wantUsers))
	}
	wantEmails := identgen.Emails("John Smith")
	if len(plan.EmailPatterns) != len(wantEmails) {
		t.Errorf("plan has %d emails, generator has %d", len(plan.EmailPatterns), len(wantEmails))
	}
	if plan.Strategy != "broad_search" {
		t.Errorf("strategy = %q", plan.Strategy)
	}
	if len(plan.Platforms) == 0 {
		t.Error("plan names no platforms")
	}
}

func TestFallbackPlanEmptyName(t *testing.T) {
	plan := FallbackPlan("")
	if len(plan.UsernamePatterns) != 0 || len(plan.EmailPatterns) != 0 {
		t.Errorf("empty name produced candidates: %+v", plan)
	}
}
