package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/search"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// RenderCard renders a movie as a two-line card: the title with characters
// matching term highlighted, then rating, language and year.
func RenderCard(movie domain.Movie, term string, selected bool, width int) string {
	style := styles.NormalCardStyle
	matchStyle := styles.MatchHighlightStyle
	if selected {
		style = styles.SelectedCardStyle
		matchStyle = styles.MatchHighlightSelectedStyle
	}
	inner := max(width-2, 1)

	title := styles.Truncate(movie.DisplayTitle(), inner)
	title = highlightMatches(title, search.MatchedIndexes(term, title), style, matchStyle)

	meta := []string{styles.RatingStyle.Render("★") + " " + movie.RatingLabel()}
	if movie.OriginalLanguage != "" {
		meta = append(meta, movie.OriginalLanguage)
	}
	meta = append(meta, movie.YearLabel())
	details := styles.Truncate(strings.Join(meta, " • "), inner)

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Width(width).Render(title),
		style.Width(width).Render(details),
	)
}

// highlightMatches renders text with the runes at matchedIndexes in
// matchStyle and the rest in base. Consecutive runes share one render call.
func highlightMatches(text string, matchedIndexes []int, base, matchStyle lipgloss.Style) string {
	plain := base.UnsetPadding().UnsetWidth()
	if len(matchedIndexes) == 0 {
		return plain.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]
		start := i
		for i < len(runes) && matchSet[i] == isMatch {
			i++
		}
		chunk := string(runes[start:i])
		if isMatch {
			b.WriteString(matchStyle.Render(chunk))
		} else {
			b.WriteString(plain.Render(chunk))
		}
	}
	return b.String()
}
