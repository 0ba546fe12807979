// Package search provides fuzzy card-name matching used to build
// "did you mean" suggestions when a name lookup comes back empty.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/samber/lo"
)

// maxDistanceRatio caps how different a suggestion may be from the
// requested name, relative to the name's length.
const maxDistanceRatio = 2

// SuggestClosest returns the candidate closest to name, or "" when no
// candidate is close enough to be a plausible typo.
func SuggestClosest(name string, candidates []string) string {
	suggestions := Suggestions(name, candidates, 1)
	if len(suggestions) == 0 {
		return ""
	}
	return suggestions[0]
}

// Suggestions returns up to max candidates ordered by edit distance to
// name. Comparison is case-insensitive; candidates further than half
// the name's length are discarded.
func Suggestions(name string, candidates []string, max int) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name     string
		distance int
	}

	lower := strings.ToLower(name)
	// levenshtein counts runes, so the cutoff must too
	cutoff := utf8.RuneCountInString(name)/maxDistanceRatio + 1

	var matches []scored
	for _, candidate := range lo.Uniq(candidates) {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(candidate))
		if d == 0 {
			continue // exact match is not a suggestion
		}
		if d <= cutoff {
			matches = append(matches, scored{name: candidate, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}

	return lo.Map(matches, func(s scored, _ int) string { return s.name })
}
