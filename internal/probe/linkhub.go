package probe

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HubLink is a secondary profile discovered in a link-aggregator page.
type HubLink struct {
	Platform string
	URL      string
}

// domainPlatforms maps URL substrings to platform display names.
// Checked in order; first match wins.
var domainPlatforms = []struct {
	domain   string
	platform string
}{
	{"instagram.com", "Instagram"},
	{"twitter.com", "Twitter"},
	{"x.com", "Twitter/X"},
	{"tiktok.com", "TikTok"},
	{"snapchat.com", "Snapchat"},
	{"facebook.com", "Facebook"},
	{"linkedin.com", "LinkedIn"},
	{"youtube.com", "YouTube"},
	{"twitch.tv", "Twitch"},
	{"discord.gg", "Discord"},
	{"t.me", "Telegram"},
	{"reddit.com", "Reddit"},
	{"github.com", "GitHub"},
	{"onlyfans.com", "OnlyFans"},
	{"patreon.com", "Patreon"},
}

// IdentifyPlatform classifies a URL against the fixed domain table.
func IdentifyPlatform(url string) (string, bool) {
	lower := strings.ToLower(url)
	for _, dp := range domainPlatforms {
		if strings.Contains(lower, dp.domain) {
			return dp.platform, true
		}
	}
	return "", false
}

// ExtractHubLinks parses a link-aggregator page body and returns every
// anchor href that points at a known platform. No additional network
// calls are made; the hub page alone yields the secondary profiles.
func ExtractHubLinks(body string) []HubLink {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		// Malformed HTML is a per-item content error, not a task failure.
		return nil
	}

	var links []HubLink
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" || seen[href] {
			return
		}
		platform, ok := IdentifyPlatform(href)
		if !ok {
			return
		}
		seen[href] = true
		links = append(links, HubLink{Platform: platform, URL: href})
	})
	return links
}
