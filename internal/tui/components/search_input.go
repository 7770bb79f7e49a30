package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// SearchInput is the always-visible query box
type SearchInput struct {
	input textinput.Model
	width int
}

// NewSearchInput creates a focused search box
func NewSearchInput() SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Search through thousands of movies"
	ti.CharLimit = 100
	ti.Prompt = "⌕ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return SearchInput{input: ti}
}

// Focus gives the box keyboard focus
func (s *SearchInput) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus
func (s *SearchInput) Blur() {
	s.input.Blur()
}

// Focused reports whether the box has keyboard focus
func (s SearchInput) Focused() bool {
	return s.input.Focused()
}

// Value returns the raw text in the box
func (s SearchInput) Value() string {
	return s.input.Value()
}

// SetWidth sets the outer width of the box including its border
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// border (2) + padding (2) + prompt
	s.input.Width = max(width-4-lipgloss.Width(s.input.Prompt), 10)
}

// Update forwards input events to the text box
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the box with a border reflecting focus
func (s SearchInput) View() string {
	border := styles.InactiveBorder
	if s.input.Focused() {
		border = styles.ActiveBorder
	}
	style := border.Padding(0, 1)
	if s.width > 2 {
		style = style.Width(s.width - 2)
	}
	return style.Render(s.input.View())
}
