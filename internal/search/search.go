package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/cinefind/internal/domain"
)

// FilterMovies narrows movies to those whose title fuzzily contains query.
// It returns indexes into movies, best match first. Ties keep provider order.
// An empty query selects every movie in its original order.
func FilterMovies(query string, movies []domain.Movie) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(movies))
		for i := range movies {
			all[i] = i
		}
		return all
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.DisplayTitle()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	idx := make([]int, len(ranks))
	for i, r := range ranks {
		idx[i] = r.OriginalIndex
	}
	return idx
}
