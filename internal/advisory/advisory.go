// Package advisory integrates the optional external strategy service.
// The service only suggests which candidates to try first; on any failure
// the investigation falls back to rule-based generation and behaves
// exactly as if no advisory service were configured.
package advisory

import (
	"context"

	"github.com/ewetherby/dragnet/internal/identgen"
	"github.com/ewetherby/dragnet/internal/probe"
)

// Plan is a suggested candidate set for one target.
type Plan struct {
	UsernamePatterns []string `json:"username_patterns"`
	EmailPatterns    []string `json:"email_patterns"`
	Platforms        []string `json:"platforms"`
	Strategy         string   `json:"strategy"`
}

// Client is the advisory service interface.
type Client interface {
	// Name identifies the backing service for logging.
	Name() string

	// Available reports whether the client is configured and usable.
	Available() bool

	// Suggest returns a candidate plan for the target. Any error (missing
	// credential, non-2xx, malformed payload, timeout) means the caller
	// must use FallbackPlan instead.
	Suggest(ctx context.Context, name string, targetCtx map[string]string) (Plan, error)
}

// FallbackPlan builds the rule-based plan used whenever the advisory
// service is absent or fails. It wraps the deterministic candidate
// generator, so the fallback path is identical to the no-advisory case.
func FallbackPlan(name string) Plan {
	usernames := identgen.Usernames(name)

	emails := identgen.Emails(name)
	addresses := make([]string, 0, len(emails))
	for _, e := range emails {
		addresses = append(addresses, e.Address)
	}

	catalog := probe.Catalog()
	platforms := make([]string, 0, len(catalog))
	for _, d := range catalog {
		platforms = append(platforms, d.Name)
	}

	return Plan{
		UsernamePatterns: usernames,
		EmailPatterns:    addresses,
		Platforms:        platforms,
		Strategy:         "broad_search",
	}
}
