package pressgate

import (
	"net/url"
	"strings"
)

// PhraseScanWindow bounds how far into a document the phrase scanner looks.
// Paywall banners appear near the top of a document; scanning further adds
// cost without adding signal.
const PhraseScanWindow = 2000

// PaywallDomains is a denylist of publishers known to gate their articles.
// Matching is by hostname substring, so "nytimes.com" also matches
// "www.nytimes.com". Immutable after init; safe for unsynchronized
// concurrent reads.
var PaywallDomains = []string{
	"nytimes.com",
	"wsj.com",
	"ft.com",
	"economist.com",
	"washingtonpost.com",
	"bloomberg.com",
	"newyorker.com",
	"theatlantic.com",
	"wired.com",
	"businessinsider.com",
	"telegraph.co.uk",
	"thetimes.co.uk",
}

// PaywallPhrases are gate-language markers scanned for in raw HTML and in
// extracted text. All entries are lowercase ASCII; the scanner lowercases
// its input before matching.
var PaywallPhrases = []string{
	"subscribe to continue",
	"subscribe to read",
	"subscription required",
	"subscribers only",
	"to continue reading",
	"create a free account",
	"sign up to read",
	"log in to continue",
	"register to continue",
	"this article is for subscribers",
	"already a subscriber",
	"unlock this article",
	"paywall",
}

// IsKnownPaywallDomain reports whether the URL's hostname contains any
// denylisted publisher domain. The match is a deliberate cheap substring
// heuristic, not exact-domain or suffix matching, so lookalike hosts such
// as "nytimes.com.attacker.example" also match. Malformed URLs fail open:
// the pipeline proceeds to attempt a fetch.
func IsKnownPaywallDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	for _, domain := range PaywallDomains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}

// ContainsPaywallPhrase reports whether any known gate phrase appears in
// the first PhraseScanWindow bytes of text. Matching is case-insensitive.
func ContainsPaywallPhrase(text string) bool {
	if len(text) > PhraseScanWindow {
		text = text[:PhraseScanWindow]
	}
	text = strings.ToLower(text)
	for _, phrase := range PaywallPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// AccessDeniedStatus reports whether an HTTP status code is an
// authoritative paywall or access-denial signal (401, 402, 403).
func AccessDeniedStatus(code int) bool {
	switch code {
	case 401, 402, 403:
		return true
	}
	return false
}
