package filter

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to limit searchable names that fuzzily match search,
// best match first. It is meant for empty result pages and never affects
// what Project returns.
func Suggest[T Record](records []T, search string, limit int) []string {
	if search == "" || limit <= 0 {
		return []string{}
	}

	var targets []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, f := range r.SearchFields() {
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			targets = append(targets, f)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(search, targets)
	sort.Stable(ranks)

	out := make([]string, 0, limit)
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, rank.Target)
	}
	return out
}
