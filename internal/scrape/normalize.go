package scrape

import (
	"regexp"
	"strings"
)

const (
	canonicalHost   = "www.linkedin.com"
	canonicalOrigin = "https://" + canonicalHost

	// PlaceholderLink stands in for a listing whose detail link never
	// resolved. The UI renders it as "link unavailable".
	PlaceholderLink = "#"
)

// Upstream occasionally emits hrefs with the origin glued on twice
// ("https://linkedin.comhttps://..."). Strip the first copy.
var reDoubledOrigin = regexp.MustCompile(`^https://linkedin\.comhttps?://`)

// NormalizeJobURL canonicalizes a raw, possibly-relative detail link into an
// absolute https://www.<host> URL. Pure string surgery; nothing is resolved
// over the network. Idempotent on already-canonical input.
func NormalizeJobURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PlaceholderLink
	}

	clean := reDoubledOrigin.ReplaceAllString(raw, "https://")

	switch {
	case strings.HasPrefix(clean, "/"):
		clean = canonicalOrigin + clean
	case !strings.HasPrefix(clean, "http"):
		clean = canonicalOrigin + "/" + clean
	}

	// bare-host variant -> www form
	return strings.Replace(clean, "https://linkedin.com", canonicalOrigin, 1)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
