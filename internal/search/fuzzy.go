package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// titleSource adapts titles to fuzzy.Source
type titleSource []string

func (s titleSource) String(i int) string { return s[i] }
func (s titleSource) Len() int            { return len(s) }

// MatchedIndexes returns the rune positions in title that match term,
// for highlighting. Matching is case-insensitive; nil means no match.
func MatchedIndexes(term, title string) []int {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || title == "" {
		return nil
	}

	// Spaces in the term would have to match literally, so match each word.
	// fuzzy folds case itself and reports byte offsets into title.
	var indexes []int
	src := titleSource{title}
	for _, word := range strings.Fields(term) {
		matches := fuzzy.FindFrom(word, src)
		if len(matches) == 0 {
			continue
		}
		for _, off := range matches[0].MatchedIndexes {
			if off >= 0 && off <= len(title) {
				indexes = append(indexes, utf8.RuneCountInString(title[:off]))
			}
		}
	}
	return dedupeAndSort(indexes)
}

func dedupeAndSort(indexes []int) []int {
	if len(indexes) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(indexes))
	out := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
