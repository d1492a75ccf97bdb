// Package matching scores careers and mentors against a user profile using
// additive keyword rules. Matching never fails: empty corpora are replaced by
// built-in defaults and a panic while scoring degrades to an unscored fallback.
package matching

import "strings"

// rule is one branch of an ordered rule chain. Within a chain only the first
// rule whose when reports true contributes its score.
type rule[C any] struct {
	label string
	when  func(C) bool
	score func(C) int
}

// firstMatch returns the first rule in rules that applies to c.
func firstMatch[C any](rules []rule[C], c C) (rule[C], bool) {
	for _, r := range rules {
		if r.when(c) {
			return r, true
		}
	}
	return rule[C]{}, false
}

// chainScore evaluates a rule chain and returns the winning rule's score, or 0.
func chainScore[C any](rules []rule[C], c C) int {
	r, ok := firstMatch(rules, c)
	if !ok {
		return 0
	}
	return r.score(c)
}

// containsAny reports whether s contains any of the keywords.
func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.ToLower(strings.TrimSpace(item))
	}
	return out
}
