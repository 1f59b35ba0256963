package runtime

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// findClosestMatch returns the candidate that best matches target, or "" when
// nothing is close. Candidates containing target's characters in order are
// ranked first, as long as they add no more characters than target has;
// otherwise the nearest candidate by edit distance is used if it is within a
// third of target's length.
func findClosestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	maxDist := utf8.RuneCountInString(target)
	var ranks fuzzy.Ranks
	for _, r := range fuzzy.RankFindFold(target, candidates) {
		if r.Distance <= maxDist {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	limit := len(target) / 3
	if limit < 1 {
		limit = 1
	}
	best, bestDist := "", limit+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// didYouMean formats a hint for target, or returns "" when there is no match.
func didYouMean(target string, candidates []string) string {
	if match := findClosestMatch(target, candidates); match != "" && match != target {
		return fmt.Sprintf("did you mean '%s'?", match)
	}
	return ""
}
