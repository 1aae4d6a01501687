// Package findings defines the evidence types collected during an
// investigation and the concurrency-safe accumulator that holds them.
package findings

import "fmt"

// Email is a candidate or discovered email address.
type Email struct {
	Address    string  `json:"email"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
	Validated  bool    `json:"validated"`
}

// Phone is a discovered phone number or a location-derived pattern.
// Exactly one of Number/Pattern is set.
type Phone struct {
	Number     string  `json:"number,omitempty"`
	Pattern    string  `json:"pattern,omitempty"`
	AreaCode   string  `json:"area_code,omitempty"`
	Location   string  `json:"location,omitempty"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// Value returns whichever of Number/Pattern holds the finding's value.
// Dedup is by exact value match, no normalization.
func (p Phone) Value() string {
	if p.Number != "" {
		return p.Number
	}
	return p.Pattern
}

// Profile is a social-media account located on one platform.
type Profile struct {
	Platform   string  `json:"platform"`
	URL        string  `json:"url"`
	Username   string  `json:"username,omitempty"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence,omitempty"`
	Verified   bool    `json:"verified,omitempty"`
}

// KeyStyle selects the identifier convention a platform uses for display
// and for profile dedup keys.
type KeyStyle int

const (
	// KeyAt renders the identifier as @username (most platforms).
	KeyAt KeyStyle = iota
	// KeyU renders the identifier as u/username (Reddit).
	KeyU
	// KeyRaw renders the bare username (Facebook, LinkedIn, Discord).
	KeyRaw
)

// ProfileKey builds the dedup key for a platform account,
// e.g. "Instagram (@jdoe)" or "Reddit (u/jdoe)".
func ProfileKey(platform, username string, style KeyStyle) string {
	switch style {
	case KeyU:
		return fmt.Sprintf("%s (u/%s)", platform, username)
	case KeyRaw:
		return fmt.Sprintf("%s (%s)", platform, username)
	default:
		return fmt.Sprintf("%s (@%s)", platform, username)
	}
}
