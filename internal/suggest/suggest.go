// ABOUTME: Fuzzy suggestion for mistyped operation names
// ABOUTME: Thin wrapper over sahilm/fuzzy returning the single best candidate

package suggest

import "github.com/sahilm/fuzzy"

// Best returns the closest candidate to pattern, if any match at all.
// Matches come back from fuzzy.Find ranked best-first, so the head of
// the result list is the suggestion.
func Best(pattern string, candidates []string) (string, bool) {
	if pattern == "" {
		return "", false
	}
	matches := fuzzy.Find(pattern, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
