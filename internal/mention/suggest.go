package mention

import "strings"

// MaxVisible caps the number of suggestions shown at once.
const MaxVisible = 10

// Matcher reports whether candidate should be listed for pattern. The
// pattern includes the leading '@'.
type Matcher func(candidate, pattern string) bool

// SubstringMatch matches when "@"+candidate contains pattern, so "smith"
// matches "johnsmith".
func SubstringMatch(candidate, pattern string) bool {
	return strings.Contains(string(Trigger)+candidate, pattern)
}

// FoldedSubstringMatch is SubstringMatch ignoring case.
func FoldedSubstringMatch(candidate, pattern string) bool {
	return SubstringMatch(strings.ToLower(candidate), strings.ToLower(pattern))
}

// ComputeVisible returns up to MaxVisible candidates for pattern in their
// original order. A bare trigger lists the first candidates unfiltered; an
// empty pattern lists nothing.
func ComputeVisible(candidates []string, pattern string, match Matcher) []string {
	if pattern == "" {
		return nil
	}
	if match == nil {
		match = SubstringMatch
	}
	limit := min(MaxVisible, len(candidates))
	visible := make([]string, 0, limit)
	for _, candidate := range candidates {
		if len(visible) >= limit {
			break
		}
		if pattern == string(Trigger) || match(candidate, pattern) {
			visible = append(visible, candidate)
		}
	}
	return visible
}
