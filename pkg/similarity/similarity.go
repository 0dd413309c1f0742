// Package similarity computes a normalized edit-distance ratio between
// two strings, used as the fuzzy backstop behind the literal-match
// scoring signals.
package similarity

import "github.com/agnivade/levenshtein"

// Ratio returns (maxLen - editDistance) / maxLen in [0,1], where
// editDistance is the classic Levenshtein distance (unit cost for
// substitution, insertion, and deletion) and maxLen counts runes of the
// longer string. Two empty strings are identical, ratio 1.0. The result
// is symmetric in its arguments.
func Ratio(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))

	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}
