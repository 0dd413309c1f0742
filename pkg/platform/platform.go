// Package platform defines the social platforms a business profile can
// be located on: domain matching, profile-URL validation, and handle
// extraction, with per-platform denylists for non-profile pages.
package platform

import (
	"net/url"
	"strings"
)

// Platform describes one social network target.
type Platform struct {
	// Name is the lowercase platform identifier, e.g. "instagram".
	Name string
	// Domain is the canonical host, e.g. "instagram.com". A leading
	// www. is accepted during validation.
	Domain string
	// QueryToken is the human token appended to search queries,
	// e.g. "Instagram".
	QueryToken string

	// denySegments are path fragments that mark a URL as a post,
	// story, tag, or other non-profile page.
	denySegments []string
	// reservedHandles are single-segment paths that are platform
	// system pages rather than usernames.
	reservedHandles map[string]bool
}

// SiteFilter returns the search-engine site restriction for the
// platform, e.g. "site:instagram.com".
func (p Platform) SiteFilter() string {
	return "site:" + p.Domain
}

// MatchesLink reports whether a raw link points at the platform's
// domain at all. This is the cheap pre-filter applied before full
// profile validation.
func (p Platform) MatchesLink(link string) bool {
	return strings.Contains(strings.ToLower(link), p.Domain)
}

// IsProfileURL reports whether link is a profile page on the platform:
// http(s) scheme, the platform domain (optionally www.), and a path of
// exactly one non-empty segment with an optional trailing slash. Any
// denylisted segment anywhere in the path rejects the URL outright.
func (p Platform) IsProfileURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, seg := range p.denySegments {
		if strings.Contains(path, seg) {
			return false
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host != p.Domain && host != "www."+p.Domain {
		return false
	}

	seg := strings.Trim(path, "/")
	return seg != "" && !strings.Contains(seg, "/")
}

// Handle extracts the lowercased username from a valid profile URL.
// Returns "" when the URL is not a profile page, the segment is a
// reserved platform word, or the handle is shorter than 2 characters.
func (p Platform) Handle(link string) string {
	if !p.IsProfileURL(link) {
		return ""
	}

	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	handle := strings.ToLower(strings.Trim(u.Path, "/"))
	if len(handle) < 2 || p.reservedHandles[handle] {
		return ""
	}
	return handle
}

// Words whose presence in a result's title or snippet marks the account
// as a fan page rather than an official presence.
var fanIndicators = []string{"fan", "fanpage", "fans", "unofficial", "tribute"}

// IsFanPage reports whether the combined title and snippet text reads
// like a fan, tribute, or otherwise unofficial account.
func IsFanPage(title, snippet string) bool {
	text := strings.ToLower(title + " " + snippet)
	for _, indicator := range fanIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}
