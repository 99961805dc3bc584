package resolver

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/logofetch/logofetch/internal/logo"
)

// DefaultSearchLimit caps search results when the caller does not set one.
const DefaultSearchLimit = 25

// maxSearchFuzzyDistance is the loosest edit distance the search scorer
// accepts. Search is more permissive than Resolve because results are
// ranked, not committed to.
const maxSearchFuzzyDistance = 3

// SearchOptions filters and bounds a company search.
type SearchOptions struct {
	Category string
	Limit    int
}

// RankedEntry is one search hit. Lower scores rank higher.
type RankedEntry struct {
	logo.CompanyEntry
	Score int
}

// Search ranks curated entries against query. Pure function over the
// database: never fails, never mutates. An entry keeps only its best
// score across all matching rules; ties keep database iteration order.
func (r *Resolver) Search(query string, opts SearchOptions) []RankedEntry {
	normalized := Normalize(query)
	category := strings.ToLower(strings.TrimSpace(opts.Category))
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var ranked []RankedEntry
	for _, entry := range r.db.All() {
		if category != "" && strings.ToLower(entry.Category) != category {
			continue
		}
		score, ok := scoreEntry(entry, normalized)
		if !ok {
			continue
		}
		ranked = append(ranked, RankedEntry{CompanyEntry: entry, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Scoring rules, lower is better: exact key 0, key substring 1, alias
// substring 2, category substring 3, fuzzy key distance d (≤3) as 4+d.
func scoreEntry(entry logo.CompanyEntry, query string) (int, bool) {
	if query == "" {
		return 0, false
	}
	best := -1
	apply := func(score int) {
		if best == -1 || score < best {
			best = score
		}
	}

	if entry.Key == query {
		apply(0)
	}
	if strings.Contains(entry.Key, query) {
		apply(1)
	}
	for _, alias := range entry.Aliases {
		if strings.Contains(Normalize(alias), query) {
			apply(2)
			break
		}
	}
	if strings.Contains(strings.ToLower(entry.Category), query) {
		apply(3)
	}
	if d := levenshtein.ComputeDistance(query, entry.Key); d <= maxSearchFuzzyDistance {
		apply(4 + d)
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}
