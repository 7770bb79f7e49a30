package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinefind/internal/tui/components"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// ResultsPercent is the share of the width kept for cards while the detail
// pane is open
const ResultsPercent = 55

// View renders the search screen: header, search box, trending section,
// movie list area and help footer.
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	sections := []string{m.renderHeader(), m.Search.View()}
	if trending := components.RenderTrending(m.Trending, m.Width); trending != "" {
		sections = append(sections, trending)
	}
	sections = append(sections,
		m.renderSectionTitle(),
		m.renderContent(),
		m.renderFooter(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("cinefind")
	subtitle := styles.SubtitleStyle.Render("Find movies you'll enjoy without the hassle")
	return title + "  " + subtitle
}

func (m Model) renderSectionTitle() string {
	title := "All Movies"
	if m.State.DebouncedTerm != "" {
		title = fmt.Sprintf("Results for %q", m.State.DebouncedTerm)
	}
	return styles.SectionStyle.Render(title)
}

func (m Model) renderContent() string {
	list := m.Results.View(m.State.IsLoading, m.State.ErrorMessage, m.spinner.View())
	if !m.ShowDetail || m.State.IsLoading || m.State.ErrorMessage != "" {
		return list
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, list, m.Inspector.View())
}

func (m Model) renderFooter() string {
	focus := "search"
	if m.Focus == FocusResults {
		focus = "results"
	}
	left := styles.DimStyle.Render(focus)
	if n := m.Results.Total(); n > 0 && !m.State.IsLoading && m.State.ErrorMessage == "" {
		left += styles.DimStyle.Render(fmt.Sprintf(" · %d movies", n))
	}

	right := m.help.View(m.keys)
	if m.help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// updateLayout recomputes component sizes from the terminal size and the
// sections currently shown
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}

	m.Search.SetWidth(m.Width)
	m.help.Width = m.Width

	chrome := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.Search.View()) +
		lipgloss.Height(m.renderSectionTitle()) +
		lipgloss.Height(m.renderFooter())
	if trending := components.RenderTrending(m.Trending, m.Width); trending != "" {
		chrome += lipgloss.Height(trending)
	}
	contentHeight := max(m.Height-chrome, 2)

	listWidth := m.Width
	if m.ShowDetail {
		listWidth = m.Width * ResultsPercent / 100
	}
	m.Results.SetSize(listWidth, contentHeight)
	m.Inspector.SetSize(m.Width-listWidth, contentHeight)
}
