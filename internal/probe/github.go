package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ewetherby/dragnet/internal/logging"
)

// maxEventsScanned bounds how many recent public events are inspected.
const maxEventsScanned = 10

// githubEvent is the slice of the public-events payload we care about.
type githubEvent struct {
	Type    string `json:"type"`
	Payload struct {
		Commits []struct {
			Author struct {
				Email string `json:"email"`
			} `json:"author"`
		} `json:"commits"`
	} `json:"payload"`
}

// HarvestGitHubEmails scans a user's recent public push events for commit
// author emails. Commit emails are near-authoritative, so callers attach
// them at confidence 0.95.
func (p *Prober) HarvestGitHubEmails(ctx context.Context, username string) ([]string, error) {
	url := fmt.Sprintf("%s/users/%s/events/public", p.eventsBase, username)

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, status, err := p.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("events API status %d", status)
	}

	var events []githubEvent
	if err := json.Unmarshal([]byte(body), &events); err != nil {
		return nil, fmt.Errorf("failed to parse events: %w", err)
	}
	if len(events) > maxEventsScanned {
		events = events[:maxEventsScanned]
	}

	seen := make(map[string]bool)
	var emails []string
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		for _, c := range ev.Payload.Commits {
			email := c.Author.Email
			if email == "" || seen[email] {
				continue
			}
			seen[email] = true
			emails = append(emails, email)
		}
	}

	if len(emails) > 0 {
		logging.Debug("github commit emails harvested", "username", username, "count", len(emails))
	}
	return emails, nil
}
