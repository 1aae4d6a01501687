// Package extract pulls contact information out of arbitrary text bodies
// returned by platform probes. Pure and stateless; the aggregation store
// is responsible for deduplication.
package extract

import (
	"regexp"

	"github.com/ewetherby/dragnet/internal/findings"
)

var (
	// emailRe approximates RFC address syntax for scanning free text.
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phoneRe matches 10-digit US numbers with optional - or . separators.
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)

	// validEmailRe is the anchored syntactic check applied to generated
	// candidates before they join the validated subset.
	validEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Emails scans text for addresses. Text-derived hits carry a much higher
// confidence than generated candidates and count as validated.
func Emails(text, source string) []findings.Email {
	matches := emailRe.FindAllString(text, -1)
	out := make([]findings.Email, 0, len(matches))
	for _, m := range matches {
		out = append(out, findings.Email{
			Address:    m,
			Source:     source,
			Confidence: 0.9,
			Validated:  true,
		})
	}
	return out
}

// Phones scans text for 10-digit phone numbers.
func Phones(text, source string) []findings.Phone {
	matches := phoneRe.FindAllString(text, -1)
	out := make([]findings.Phone, 0, len(matches))
	for _, m := range matches {
		out = append(out, findings.Phone{
			Number:     m,
			Source:     source,
			Confidence: 0.8,
		})
	}
	return out
}

// ValidEmail reports whether s passes the canonical syntactic pattern:
// alphanumeric/._%+- local part, dotted domain, 2+ letter TLD.
func ValidEmail(s string) bool {
	return validEmailRe.MatchString(s)
}

// Contacts runs both scanners and writes hits into the store. The store's
// exact-value dedup guarantees running this twice over the same text adds
// nothing the second time. Returns how many new findings were recorded.
func Contacts(text, source string, store *findings.Store) int {
	added := 0
	for _, e := range Emails(text, source) {
		if store.AddEmail(e) {
			added++
		}
	}
	for _, p := range Phones(text, source) {
		if store.AddPhone(p) {
			added++
		}
	}
	return added
}
