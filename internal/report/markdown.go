package report

import (
	"fmt"
	"sort"
	"strings"
)

// RenderMarkdown produces the deterministic plain report used when no
// narrative service is available.
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Investigation Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.Metadata.Timestamp)
	fmt.Fprintf(&b, "## Target Information\n")
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Mode: %s\n", r.Metadata.Mode)

	b.WriteString("\n## Social Media Accounts Found\n")
	if len(r.SocialMedia) == 0 {
		b.WriteString("(none)\n")
	}
	for _, key := range r.SortedProfileKeys() {
		p := r.SocialMedia[key]
		if p.Verified {
			fmt.Fprintf(&b, "- %s: %s (verified)\n", key, p.URL)
		} else {
			fmt.Fprintf(&b, "- %s: %s\n", key, p.URL)
		}
	}

	b.WriteString("\n## Emails Found\n")
	if len(r.Emails) == 0 {
		b.WriteString("(none)\n")
	}
	for _, e := range r.Emails {
		fmt.Fprintf(&b, "- %s (source: %s, confidence: %.2f)\n", e.Address, e.Source, e.Confidence)
	}

	b.WriteString("\n## Phone Numbers Found\n")
	if len(r.Phones) == 0 {
		b.WriteString("(none)\n")
	}
	for _, p := range r.Phones {
		fmt.Fprintf(&b, "- %s (source: %s, confidence: %.2f)\n", p.Value(), p.Source, p.Confidence)
	}

	if len(r.Websites) > 0 {
		b.WriteString("\n## Personal Websites\n")
		for _, w := range r.Websites {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	if len(r.Professional) > 0 {
		b.WriteString("\n## Professional Profiles\n")
		for _, network := range sortedKeys(r.Professional) {
			fmt.Fprintf(&b, "- %s: %s\n", network, r.Professional[network])
		}
	}

	fmt.Fprintf(&b, "\n## Confidence\n%.1f / 100\n", r.ConfidenceScore)
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
