// Package identgen deterministically derives candidate identifiers
// (usernames, emails, phone patterns, website domains) from a target name
// and optional context. Pure string work, no I/O; an empty name yields
// empty candidate sets rather than an error.
package identgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ewetherby/dragnet/internal/findings"
)

// emailDomains are the public providers crossed with every local-part pattern.
var emailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
	"protonmail.com", "icloud.com",
}

// Split normalizes a raw name and returns its first and last tokens.
// Separators '-' and '_' are treated as spaces. A single-token name has an
// empty last component.
func Split(name string) (first, last string) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(name))
	parts := strings.Fields(norm)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = parts[len(parts)-1]
	}
	return first, last
}

// initial returns the first byte of s as a string, or "" for an empty s,
// so single-token names never panic initial-based patterns.
func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

// Usernames generates the fixed set of username variations for a name.
// Deduplicated with set semantics: callers must not rely on order beyond
// taking some fixed-size prefix for expensive probes.
func Usernames(name string) []string {
	first, last := Split(name)
	if first == "" {
		return nil
	}

	year := strconv.Itoa(time.Now().Year())
	variants := []string{
		// Basic combinations
		first + last,
		first + "_" + last,
		first + "." + last,
		first + "-" + last,
		last + first,
		last + "_" + first,
		last + "." + first,

		// With numbers
		first + last + "123",
		first + last + "1",
		first + last + "99",
		first + last + year,

		// Abbreviated
		initial(first) + last,
		first + initial(last),
		initial(first) + "." + last,

		// Single name
		first,
		last,

		// With underscores
		"_" + first + last,
		first + last + "_",
		"_" + first + "_" + last + "_",

		// Official/real
		first + last + "official",
		"real" + first + last,
		first + last + "real",

		// The/its
		"the" + first + last,
		"its" + first + last,
	}

	seen := make(map[string]bool, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Emails generates candidate addresses: eight local-part patterns crossed
// with six common public domains. All carry the low generated-pattern
// confidence and are unvalidated until the syntactic check runs.
func Emails(name string) []findings.Email {
	first, last := Split(name)
	if first == "" {
		return nil
	}

	locals := []string{
		first,
		last,
		first + "." + last,
		first + last,
		first + "_" + last,
		initial(first) + last,
		first + initial(last),
		last + "." + first,
	}

	var out []findings.Email
	for _, local := range locals {
		for _, domain := range emailDomains {
			out = append(out, findings.Email{
				Address:    local + "@" + domain,
				Source:     "Generated pattern",
				Confidence: 0.3,
				Validated:  false,
			})
		}
	}
	return out
}

// regionAreaCodes maps location substrings to US area codes.
// Checked in declaration order; the first matching region wins.
var regionAreaCodes = []struct {
	region string
	codes  []string
}{
	{"california", []string{"213", "310", "323", "408", "415", "510", "562", "619", "626", "650", "714", "760", "805", "818", "831", "858", "909", "916", "925", "949"}},
	{"new york", []string{"212", "315", "347", "516", "518", "585", "607", "631", "646", "716", "718", "845", "914", "917"}},
	{"texas", []string{"210", "214", "254", "281", "325", "361", "409", "430", "432", "469", "512", "682", "713", "737", "806", "817", "830", "832", "903", "915", "936", "940", "956", "972", "979"}},
	{"florida", []string{"239", "305", "321", "352", "386", "407", "561", "727", "754", "772", "786", "813", "850", "863", "904", "941", "954"}},
}

// maxAreaCodes limits phone patterns to the most common area codes per region.
const maxAreaCodes = 5

// PhonePatterns derives area-code phone patterns from a location hint.
// Unknown or empty locations produce nothing.
func PhonePatterns(location string) []findings.Phone {
	if location == "" {
		return nil
	}
	loc := strings.ToLower(location)

	var codes []string
	for _, r := range regionAreaCodes {
		if strings.Contains(loc, r.region) {
			codes = r.codes
			break
		}
	}
	if len(codes) > maxAreaCodes {
		codes = codes[:maxAreaCodes]
	}

	out := make([]findings.Phone, 0, len(codes))
	for _, code := range codes {
		out = append(out, findings.Phone{
			Pattern:    fmt.Sprintf("(%s) XXX-XXXX", code),
			AreaCode:   code,
			Location:   location,
			Source:     "Area code pattern",
			Confidence: 0.4,
		})
	}
	return out
}

// websiteTLDs are the domain suffixes tried for personal sites.
var websiteTLDs = []string{".com", ".net", ".io"}

// WebsiteCandidates builds personal-website domains from the collapsed
// name and the first few usernames.
func WebsiteCandidates(name string, usernames []string) []string {
	var bases []string
	if collapsed := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", ""); collapsed != "" {
		bases = append(bases, collapsed)
	}
	limit := 5
	if len(usernames) < limit {
		limit = len(usernames)
	}
	bases = append(bases, usernames[:limit]...)

	seen := make(map[string]bool)
	var out []string
	for _, base := range bases {
		for _, tld := range websiteTLDs {
			domain := base + tld
			if seen[domain] {
				continue
			}
			seen[domain] = true
			out = append(out, domain)
		}
	}
	return out
}
