// Package probe performs existence checks for candidate usernames against
// a fixed catalog of external platforms. One generic prober is driven by
// per-platform descriptors instead of one hand-written function per site.
package probe

import "github.com/ewetherby/dragnet/internal/findings"

// Descriptor configures how one platform is probed and classified.
type Descriptor struct {
	// Name is the display name, e.g. "Instagram".
	Name string

	// URLTemplate is the canonical profile URL with a %s username slot.
	URLTemplate string

	// NotFoundMarker is a body substring that means the account does not
	// exist even on an HTTP 200. Empty means a 200 alone counts as found;
	// several platforms (Facebook, LinkedIn, Telegram, Snapchat) serve no
	// usable marker and are classified on status alone.
	NotFoundMarker string

	// FoldMarker matches the marker case-insensitively (Reddit).
	FoldMarker bool

	// KeyStyle selects the identifier convention for the profile dedup key.
	KeyStyle findings.KeyStyle

	// VerifiedMarker, when non-empty, flags the profile verified if the
	// body contains it.
	VerifiedMarker string

	// Professional names the professional-network slot this platform fills
	// ("linkedin", "github"), or is empty.
	Professional string

	// LinkHub marks link-aggregator pages whose anchors are mined for
	// secondary profiles and contact info.
	LinkHub bool

	// HarvestEmails enables the GitHub public-events commit-email pass.
	HarvestEmails bool
}

// Key returns the profile dedup key for a username on this platform.
func (d Descriptor) Key(username string) string {
	return findings.ProfileKey(d.Name, username, d.KeyStyle)
}

// Catalog returns the fixed platform table. URL templates and marker
// strings are part of the tool's wire surface and must not drift.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			Name:           "Instagram",
			URLTemplate:    "https://www.instagram.com/%s/",
			NotFoundMarker: "Page Not Found",
			VerifiedMarker: "Verified",
			KeyStyle:       findings.KeyAt,
		},
		{
			Name:           "Twitter",
			URLTemplate:    "https://twitter.com/%s",
			NotFoundMarker: "This account doesn't exist",
			KeyStyle:       findings.KeyAt,
		},
		{
			Name:           "TikTok",
			URLTemplate:    "https://www.tiktok.com/@%s",
			NotFoundMarker: "Couldn't find this account",
			KeyStyle:       findings.KeyAt,
		},
		{
			Name:        "Facebook",
			URLTemplate: "https://www.facebook.com/%s",
			KeyStyle:    findings.KeyRaw,
		},
		{
			Name:         "LinkedIn",
			URLTemplate:  "https://www.linkedin.com/in/%s",
			KeyStyle:     findings.KeyRaw,
			Professional: "linkedin",
		},
		{
			Name:           "GitHub",
			URLTemplate:    "https://github.com/%s",
			NotFoundMarker: "Not Found",
			KeyStyle:       findings.KeyAt,
			Professional:   "github",
			HarvestEmails:  true,
		},
		{
			Name:           "Reddit",
			URLTemplate:    "https://www.reddit.com/user/%s",
			NotFoundMarker: "page not found",
			FoldMarker:     true,
			KeyStyle:       findings.KeyU,
		},
		{
			Name:        "Telegram",
			URLTemplate: "https://t.me/%s",
			KeyStyle:    findings.KeyAt,
		},
		{
			Name:        "Snapchat",
			URLTemplate: "https://www.snapchat.com/add/%s",
			KeyStyle:    findings.KeyAt,
		},
		{
			Name:        "Discord",
			URLTemplate: "https://discord.com/invite/%s",
			KeyStyle:    findings.KeyRaw,
		},
	}
}

// HubCatalog returns the link-aggregator descriptors. Hub pages are probed
// for a smaller username prefix and mined for anchors and contact info.
func HubCatalog() []Descriptor {
	return []Descriptor{
		{
			Name:        "AllMyLinks",
			URLTemplate: "https://allmylinks.com/%s",
			KeyStyle:    findings.KeyAt,
			LinkHub:     true,
		},
		{
			Name:        "Linktree",
			URLTemplate: "https://linktr.ee/%s",
			KeyStyle:    findings.KeyAt,
			LinkHub:     true,
		},
		{
			Name:        "Beacons",
			URLTemplate: "https://beacons.ai/%s",
			KeyStyle:    findings.KeyAt,
			LinkHub:     true,
		},
		{
			Name:        "Bio.link",
			URLTemplate: "https://bio.link/%s",
			KeyStyle:    findings.KeyAt,
			LinkHub:     true,
		},
	}
}
