package locate

import (
	"strings"

	"github.com/codeGROOVE-dev/bizlocator/pkg/identity"
	"github.com/codeGROOVE-dev/bizlocator/pkg/similarity"
)

// Scoring design constants. The weights sum with the base credit to
// allow saturation at 1.0 when every signal fires.
const (
	baseScore      = 0.30
	nameWeight     = 0.40
	usernameWeight = 0.20
	locationWeight = 0.15
	contactWeight  = 0.15

	// Credit for a whole-name literal match in the result text, and
	// the ceiling for the word-fraction signal.
	fullNameCredit  = 0.9
	wordMatchScale  = 0.8
	wordInHandle    = 0.6
	partialLocation = 0.5
	partialContact  = 0.5
)

// Score computes the confidence that a candidate is the business's
// official profile. Pure and deterministic; malformed identity fields
// degrade to zero-valued components rather than errors.
func Score(c Candidate, biz identity.Business) ScoreResult {
	normName := identity.Normalize(biz.Name)
	normText := identity.Normalize(c.Title + " " + c.Snippet)
	rawText := strings.ToLower(c.Title + " " + c.Snippet)
	words := identity.Words(biz.Name)

	result := ScoreResult{
		Base:     baseScore,
		Name:     nameScore(normName, normText, words, c),
		Username: usernameScore(normName, words, c.Handle),
		Location: locationScore(biz, rawText),
		Contact:  contactScore(biz, rawText),
	}

	component := nameWeight*result.Name +
		usernameWeight*result.Username +
		locationWeight*result.Location +
		contactWeight*result.Contact
	result.Final = min(result.Base+component, 1.0)
	return result
}

// nameScore is the max of three signals: a literal whole-name match, a
// matched-word fraction, and the edit-distance similarity against the
// title and snippet.
func nameScore(normName, normText string, words []string, c Candidate) float64 {
	var score float64

	if normName != "" && strings.Contains(normText, normName) {
		score = fullNameCredit
	}

	if len(words) > 0 {
		var matched int
		for _, w := range words {
			if strings.Contains(normText, w) {
				matched++
			}
		}
		score = max(score, float64(matched)/float64(len(words))*wordMatchScale)
	}

	if normName != "" {
		score = max(score, similarity.Ratio(normName, identity.Normalize(c.Title)))
		score = max(score, similarity.Ratio(normName, identity.Normalize(c.Snippet)))
	}
	return score
}

func usernameScore(normName string, words []string, handle string) float64 {
	var score float64
	if normName != "" {
		score = similarity.Ratio(normName, handle)
	}
	for _, w := range words {
		if strings.Contains(handle, w) {
			score = max(score, wordInHandle)
			break
		}
	}
	return score
}

func locationScore(biz identity.Business, rawText string) float64 {
	var score float64
	if city := strings.TrimSpace(biz.City); city != "" && strings.Contains(rawText, strings.ToLower(city)) {
		score += partialLocation
	}
	if state := strings.TrimSpace(biz.State); state != "" && strings.Contains(rawText, strings.ToLower(state)) {
		score += partialLocation
	}
	return min(score, 1.0)
}

func contactScore(biz identity.Business, rawText string) float64 {
	var score float64
	if digits := identity.PhoneDigits(biz.Phone); digits != "" && strings.Contains(rawText, digits) {
		score += partialContact
	}
	if host := identity.WebsiteHost(biz.Website); host != "" && strings.Contains(rawText, strings.ToLower(host)) {
		score += partialContact
	}
	return min(score, 1.0)
}
