// Package identity defines the business identity record and the text
// canonicalization helpers used to compare it against search results.
package identity

import (
	"strings"
	"unicode"
)

// Business holds the identifying attributes of a business as supplied by
// the caller. Name is the only required field; everything else improves
// match confidence when present.
type Business struct {
	Name    string
	Address string
	City    string
	State   string
	Phone   string
	Website string
}

// Valid reports whether the identity carries a usable business name.
func (b Business) Valid() bool {
	return strings.TrimSpace(b.Name) != ""
}

// Legal/corporate suffixes removed during normalization. Matched as whole
// words only, so "cooper" survives while "co" does not.
var stopWords = map[string]bool{
	"the": true, "inc": true, "llc": true, "ltd": true,
	"corp": true, "corporation": true, "company": true, "co": true,
}

// Normalize canonicalizes free text for comparison: lowercases, replaces
// every non-word non-space rune with a space, drops legal-suffix stop
// words, collapses whitespace, and trims. Empty input yields "".
// Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	words := strings.Fields(b.String())
	kept := words[:0]
	for _, w := range words {
		if !stopWords[w] {
			kept = append(kept, w)
		}
	}

	return strings.Join(kept, " ")
}

// Words returns the normalized business-name tokens longer than two
// runes. Short tokens ("st", "of") match too much text to be useful as
// scoring signals.
func Words(name string) []string {
	var words []string
	for _, w := range strings.Fields(Normalize(name)) {
		if len([]rune(w)) > 2 {
			words = append(words, w)
		}
	}
	return words
}

// PhoneDigits strips a phone number down to its digits. Returns "" when
// no digits remain.
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WebsiteHost strips the scheme and a leading www. from a website URL so
// it can be matched literally inside snippet text. The path is kept:
// snippets quote full links as often as bare hosts.
func WebsiteHost(website string) string {
	s := strings.TrimSpace(website)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}
