package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// RenderTrending renders the leaderboard section. It renders nothing when
// there are no entries.
func RenderTrending(entries []domain.TrendingEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionStyle.Render("Trending Searches"))
	for i, e := range entries {
		b.WriteString("\n")
		rank := styles.RankStyle.Render(fmt.Sprintf("%2d", i+1))
		title := e.Title
		if title == "" {
			title = "Untitled"
		}
		line := fmt.Sprintf("%s  %s", rank, title)
		if e.SearchTerm != "" {
			line += styles.DimStyle.Render(fmt.Sprintf("  %q · %d", e.SearchTerm, e.Count))
		}
		if width > 0 {
			line = styles.Truncate(line, width)
		}
		b.WriteString(line)
	}
	return b.String()
}
