package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ewetherby/dragnet/internal/logging"
)

// Outcome classifies a single probe attempt.
type Outcome int

const (
	// OutcomeError marks a transport failure (timeout, DNS, refused).
	// Absorbed by the orchestrator, never fatal to a run.
	OutcomeError Outcome = iota
	// OutcomeNotFound means the platform answered and the account is absent.
	OutcomeNotFound
	// OutcomeFound means the profile URL resolves to an existing account.
	OutcomeFound
)

// String implements fmt.Stringer for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not-found"
	default:
		return "error"
	}
}

// Result is the structured outcome of one existence check.
type Result struct {
	Outcome  Outcome
	Platform string
	URL      string
	Username string
	Body     string // raw response body, kept for contact extraction
	Verified bool
	Err      error // set when Outcome == OutcomeError
}

// maxBodyBytes caps how much of a profile page is read for extraction.
const maxBodyBytes = 2 << 20

// websiteTimeout bounds personal-website checks, which are cheaper and
// more numerous than platform probes.
const websiteTimeout = 5 * time.Second

// Prober issues bounded-timeout GETs against platform profile URLs.
// The HTTP client configuration is immutable and shared by all tasks.
type Prober struct {
	client     *http.Client
	userAgent  string
	limiter    *rate.Limiter
	eventsBase string // GitHub API base, overridable in tests
}

// NewProber creates a Prober with the given per-request timeout and
// browser identification header.
func NewProber(timeout time.Duration, userAgent string) *Prober {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Prober{
		client:     &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		limiter:    rate.NewLimiter(rate.Limit(20), 10),
		eventsBase: "https://api.github.com",
	}
}

// Probe checks one username on one platform and classifies the response.
// Transport errors are folded into the result, not returned, so a stalled
// endpoint only costs its own task.
func (p *Prober) Probe(ctx context.Context, d Descriptor, username string) Result {
	url := fmt.Sprintf(d.URLTemplate, username)
	res := Result{Outcome: OutcomeError, Platform: d.Name, URL: url, Username: username}

	if err := p.limiter.Wait(ctx); err != nil {
		res.Err = err
		return res
	}

	body, status, err := p.get(ctx, url)
	if err != nil {
		logging.Debug("probe transport error", "platform", d.Name, "username", username, "error", err)
		res.Err = err
		return res
	}
	res.Body = body

	if status != http.StatusOK || containsMarker(body, d) {
		res.Outcome = OutcomeNotFound
		return res
	}

	res.Outcome = OutcomeFound
	if d.VerifiedMarker != "" {
		res.Verified = strings.Contains(body, d.VerifiedMarker)
	}
	return res
}

// ProbeWebsite reports whether a personal-website domain answers with a 200.
func (p *Prober) ProbeWebsite(ctx context.Context, domain string) bool {
	ctx, cancel := context.WithTimeout(ctx, websiteTimeout)
	defer cancel()
	return p.ProbeURL(ctx, "http://"+domain)
}

// ProbeURL issues one GET and reports a 200 response. Used for website
// discovery where no body inspection is needed.
func (p *Prober) ProbeURL(ctx context.Context, url string) bool {
	if err := p.limiter.Wait(ctx); err != nil {
		return false
	}
	_, status, err := p.get(ctx, url)
	return err == nil && status == http.StatusOK
}

// get performs the request and returns the capped body and status code.
func (p *Prober) get(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read body: %w", err)
	}
	return string(body), resp.StatusCode, nil
}

// containsMarker reports whether the body carries the platform's
// not-found marker. Platforms without a marker classify on status alone.
func containsMarker(body string, d Descriptor) bool {
	if d.NotFoundMarker == "" {
		return false
	}
	if d.FoldMarker {
		return strings.Contains(strings.ToLower(body), strings.ToLower(d.NotFoundMarker))
	}
	return strings.Contains(body, d.NotFoundMarker)
}
