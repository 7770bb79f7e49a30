package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// Inspector shows the details of the selected movie
type Inspector struct {
	movie     *domain.Movie
	imageBase string
	width     int
	height    int
}

// NewInspector creates a detail pane. imageBase is used to show poster URLs.
func NewInspector(imageBase string) Inspector {
	return Inspector{imageBase: imageBase}
}

// SetMovie sets the movie to display
func (i *Inspector) SetMovie(movie *domain.Movie) {
	i.movie = movie
}

// SetSize sets the pane dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// View renders the detail pane
func (i Inspector) View() string {
	style := styles.InspectorStyle
	if i.width > 2 {
		style = style.Width(i.width - 2)
	}
	if i.movie == nil {
		return style.Render(styles.DimStyle.Render("No movie selected"))
	}

	m := i.movie
	inner := max(i.width-4, 20)

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(m.DisplayTitle(), inner)))
	b.WriteString("\n")

	meta := styles.RatingStyle.Render("★ "+m.RatingLabel()) + styles.DimStyle.Render(" • "+m.YearLabel())
	if m.OriginalLanguage != "" {
		meta += styles.DimStyle.Render(" • " + m.OriginalLanguage)
	}
	b.WriteString(meta)
	b.WriteString("\n")

	if m.ReleaseDate != "" {
		b.WriteString(styles.DimStyle.Render("Released " + m.ReleaseDate))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Overview != "" {
		b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(styles.LightGray).Render(m.Overview))
	} else {
		b.WriteString(styles.DimStyle.Render("No overview available"))
	}

	if url := m.PosterURL(i.imageBase); url != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DimStyle.Render("Poster "))
		b.WriteString(styles.AccentStyle.Render(url))
	}

	return style.Render(b.String())
}
