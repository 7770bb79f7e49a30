package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/search"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

const cardHeight = 2

// ResultList displays the current movie results as cards with a cursor and
// an optional in-list filter. Filtering never leaves the current results.
type ResultList struct {
	movies  []domain.Movie
	term    string
	visible []int // indexes into movies after filtering
	cursor  int

	filterInput textinput.Model
	filtering   bool

	width  int
	height int
}

// NewResultList creates an empty result list
func NewResultList() ResultList {
	fi := textinput.New()
	fi.Prompt = "/"
	fi.PromptStyle = styles.FilterPromptStyle
	fi.Placeholder = "filter results"
	fi.PlaceholderStyle = styles.DimStyle
	fi.CharLimit = 50

	return ResultList{filterInput: fi}
}

// SetMovies replaces the results. term is the query that produced them and
// drives title highlighting. Any active filter is cleared.
func (r *ResultList) SetMovies(movies []domain.Movie, term string) {
	r.movies = movies
	r.term = term
	r.cursor = 0
	r.filtering = false
	r.filterInput.Blur()
	r.filterInput.SetValue("")
	r.applyFilter()
}

// SetSize sets the render area
func (r *ResultList) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.filterInput.Width = max(width-4, 10)
}

// Len returns the number of results shown after filtering
func (r ResultList) Len() int {
	return len(r.visible)
}

// Total returns the number of results before filtering
func (r ResultList) Total() int {
	return len(r.movies)
}

// Cursor returns the cursor position within the shown results
func (r ResultList) Cursor() int {
	return r.cursor
}

// Selected returns the movie under the cursor
func (r ResultList) Selected() (domain.Movie, bool) {
	if r.cursor < 0 || r.cursor >= len(r.visible) {
		return domain.Movie{}, false
	}
	return r.movies[r.visible[r.cursor]], true
}

// MoveUp moves the cursor one card up
func (r *ResultList) MoveUp() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// MoveDown moves the cursor one card down
func (r *ResultList) MoveDown() {
	if r.cursor < len(r.visible)-1 {
		r.cursor++
	}
}

// IsFiltering reports whether the filter box is accepting input
func (r ResultList) IsFiltering() bool {
	return r.filtering
}

// FilterQuery returns the active filter text
func (r ResultList) FilterQuery() string {
	return r.filterInput.Value()
}

// StartFilter opens the filter box
func (r *ResultList) StartFilter() tea.Cmd {
	r.filtering = true
	return r.filterInput.Focus()
}

// AcceptFilter closes the filter box and keeps the filtered view
func (r *ResultList) AcceptFilter() {
	r.filtering = false
	r.filterInput.Blur()
}

// ClearFilter closes the filter box and shows every result again
func (r *ResultList) ClearFilter() {
	r.filtering = false
	r.filterInput.Blur()
	r.filterInput.SetValue("")
	r.applyFilter()
}

// UpdateFilter forwards input to the filter box and re-ranks the results
func (r ResultList) UpdateFilter(msg tea.Msg) (ResultList, tea.Cmd) {
	prev := r.filterInput.Value()
	var cmd tea.Cmd
	r.filterInput, cmd = r.filterInput.Update(msg)
	if r.filterInput.Value() != prev {
		r.applyFilter()
	}
	return r, cmd
}

func (r *ResultList) applyFilter() {
	r.visible = search.FilterMovies(r.filterInput.Value(), r.movies)
	if r.cursor >= len(r.visible) {
		r.cursor = max(len(r.visible)-1, 0)
	}
}

// View renders exactly one of the loading spinner, the error message or the
// result cards.
func (r ResultList) View(loading bool, errorMessage, spinnerView string) string {
	if loading {
		return spinnerView + " " + styles.DimStyle.Render("Loading movies...")
	}
	if errorMessage != "" {
		return styles.ErrorStyle.Render(errorMessage)
	}
	return r.renderCards()
}

func (r ResultList) renderCards() string {
	var b strings.Builder
	height := r.height

	showFilter := r.filtering || r.filterInput.Value() != ""
	if showFilter {
		count := styles.DimStyle.Render(fmt.Sprintf(" %d/%d", len(r.visible), len(r.movies)))
		b.WriteString(r.filterInput.View() + count)
		b.WriteString("\n")
		height--
	}

	if len(r.visible) == 0 {
		if showFilter {
			b.WriteString(styles.DimStyle.Render("No matches"))
		} else {
			b.WriteString(styles.DimStyle.Render("No movies found"))
		}
		return b.String()
	}

	perPage := len(r.visible)
	if height > 0 {
		perPage = max(height/cardHeight, 1)
	}
	offset := 0
	if r.cursor >= perPage {
		offset = r.cursor - perPage + 1
	}
	end := min(offset+perPage, len(r.visible))

	width := r.width
	if width <= 0 {
		width = 60
	}

	cards := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		cards = append(cards, RenderCard(r.movies[r.visible[i]], r.term, i == r.cursor, width))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	return b.String()
}
