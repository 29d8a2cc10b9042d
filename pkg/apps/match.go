package apps

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is one fuzzy-match candidate
type Match struct {
	ID       string
	Name     string
	Distance int // Levenshtein distance to the query; lower is closer
}

// Closest ranks cataloged applications against an approximate name. The
// best candidates come first; Distance lets the caller decide whether the
// top match is confident enough to launch without asking.
func (c *Catalog) Closest(query string, limit int) []Match {
	ids := c.IDs()

	ranks := fuzzy.RankFindNormalizedFold(query, ids)
	matched := make(map[string]int, len(ranks))
	for _, r := range ranks {
		matched[r.Target] = r.Distance
	}

	// Fuzzy-find requires the query to be a subsequence of the target, which
	// misses transpositions ("fierfox"); fall back to plain edit distance for
	// the rest.
	matches := make([]Match, 0, len(ids))
	for _, id := range ids {
		dist, ok := matched[id]
		if !ok {
			dist = fuzzy.LevenshteinDistance(query, id)
		}
		entry, _ := c.Get(id)
		matches = append(matches, Match{ID: id, Name: entry.Name, Distance: dist})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].ID < matches[j].ID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
