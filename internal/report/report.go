// Package report defines the immutable investigation report and its
// persisted JSON form.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ewetherby/dragnet/internal/findings"
)

// Metadata summarizes a run for quick inspection without reading findings.
type Metadata struct {
	TotalPlatforms  int      `json:"total_platforms"`
	TotalUsernames  int      `json:"total_usernames"`
	TotalEmails     int      `json:"total_emails"`
	TotalPhones     int      `json:"total_phones"`
	TotalWebsites   int      `json:"total_websites"`
	ProbesAttempted int      `json:"probes_attempted"`
	ProbeErrors     int      `json:"probe_errors"`
	Mode            string   `json:"mode"`
	Timestamp       string   `json:"investigation_timestamp"`
	Notes           []string `json:"notes,omitempty"`
}

// Report is the final aggregate of one investigation run. The confidence
// score is a derived view of the findings, never independently mutated.
type Report struct {
	ID              string                      `json:"id"`
	Name            string                      `json:"name"`
	Emails          []findings.Email            `json:"emails"`
	Phones          []findings.Phone            `json:"phones"`
	SocialMedia     map[string]findings.Profile `json:"social_media"`
	Usernames       []string                    `json:"usernames"`
	Websites        []string                    `json:"websites"`
	Professional    map[string]string           `json:"professional"`
	Metadata        Metadata                    `json:"metadata"`
	ConfidenceScore float64                     `json:"confidence_score"`
}

// FromSnapshot converts a frozen aggregation snapshot into a report.
// Usernames are sorted for stable human presentation; finding order is
// otherwise unspecified.
func FromSnapshot(name, mode string, snap findings.Snapshot, score float64, probes, probeErrors int, notes []string) *Report {
	sort.Strings(snap.Usernames)

	return &Report{
		ID:           uuid.NewString(),
		Name:         name,
		Emails:       snap.Emails,
		Phones:       snap.Phones,
		SocialMedia:  snap.Profiles,
		Usernames:    snap.Usernames,
		Websites:     snap.Websites,
		Professional: snap.Professional,
		Metadata: Metadata{
			TotalPlatforms:  len(snap.Profiles),
			TotalUsernames:  len(snap.Usernames),
			TotalEmails:     len(snap.Emails),
			TotalPhones:     len(snap.Phones),
			TotalWebsites:   len(snap.Websites),
			ProbesAttempted: probes,
			ProbeErrors:     probeErrors,
			Mode:            mode,
			Timestamp:       time.Now().Format("2006-01-02 15:04:05"),
			Notes:           notes,
		},
		ConfidenceScore: score,
	}
}

// SortedProfileKeys returns the social-media keys in display order.
func (r *Report) SortedProfileKeys() []string {
	keys := make([]string, 0, len(r.SocialMedia))
	for k := range r.SocialMedia {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
