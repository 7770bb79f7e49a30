package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/debounce"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/service"
	"github.com/mmcdole/cinefind/internal/tui/components"
	"github.com/mmcdole/cinefind/internal/tui/styles"
)

// Focus identifies which pane receives key input
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
)

// Options tunes the search screen
type Options struct {
	Debounce        time.Duration
	Refresh         adapter.RefreshMode
	RefreshInterval time.Duration
	ImageBaseURL    string
	Logger          *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	MovieSvc *service.MovieService
	Tracker  *service.PopularityTracker

	opts   Options
	logger *slog.Logger

	// Search state
	State    SearchState
	Trending []domain.TrendingEntry
	cycleID  string

	debouncer debounce.Debouncer

	// UI Components
	Search    components.SearchInput
	Results   components.ResultList
	Inspector components.Inspector
	spinner   spinner.Model
	help      help.Model
	keys      KeyMap

	// UI state
	Focus      Focus
	ShowDetail bool
	Ready      bool
	Width      int
	Height     int
}

// NewModel creates the application model. The initial fetch for the empty
// term is already in flight once Init runs.
func NewModel(movieSvc *service.MovieService, tracker *service.PopularityTracker, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Refresh == "" {
		opts.Refresh = adapter.RefreshOnSearch
	}
	if opts.Refresh == adapter.RefreshInterval && opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Minute
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		MovieSvc:  movieSvc,
		Tracker:   tracker,
		opts:      opts,
		logger:    logger,
		State:     SearchState{Results: []domain.Movie{}}.BeginFetch(),
		Trending:  []domain.TrendingEntry{},
		cycleID:   uuid.NewString(),
		debouncer: debounce.New(opts.Debounce),
		Search:    components.NewSearchInput(),
		Results:   components.NewResultList(),
		Inspector: components.NewInspector(opts.ImageBaseURL),
		spinner:   sp,
		help:      h,
		keys:      DefaultKeyMap(),
		Focus:     FocusSearch,
	}
}

// Init fetches the discover listing for the empty term and loads the
// leaderboard.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		FetchMoviesCmd(m.MovieSvc, m.State.DebouncedTerm, m.cycleID),
		RefreshLeaderboardCmd(m.Tracker),
	}
	if m.opts.Refresh == adapter.RefreshInterval {
		cmds = append(cmds, LeaderboardTickCmd(m.opts.RefreshInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case debounce.FireMsg:
		term, ok := m.debouncer.Fire(msg)
		if !ok {
			return m, nil
		}
		next, changed := m.State.WithDebouncedTerm(term)
		if !changed {
			return m, nil
		}
		m.State = next
		return m, m.startCycle()

	case FetchResultMsg:
		return m.handleFetchResult(msg)

	case LeaderboardMsg:
		m.Trending = msg.Entries
		if m.Trending == nil {
			m.Trending = []domain.TrendingEntry{}
		}
		m.updateLayout()
		return m, nil

	case LeaderboardTickMsg:
		return m, tea.Batch(
			RefreshLeaderboardCmd(m.Tracker),
			LeaderboardTickCmd(m.opts.RefreshInterval),
		)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	return m, cmd
}

// startCycle begins exactly one fetch for the debounced term and, when
// refreshing on search, one leaderboard refresh.
func (m *Model) startCycle() tea.Cmd {
	m.State = m.State.BeginFetch()
	m.cycleID = uuid.NewString()
	m.logger.Debug("fetch cycle started", "cycle", m.cycleID, "query", m.State.DebouncedTerm)

	cmds := []tea.Cmd{FetchMoviesCmd(m.MovieSvc, m.State.DebouncedTerm, m.cycleID)}
	if m.opts.Refresh == adapter.RefreshOnSearch {
		cmds = append(cmds, RefreshLeaderboardCmd(m.Tracker))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleFetchResult(msg FetchResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("fetch cycle failed", "cycle", msg.CycleID, "query", msg.Query, "error", msg.Err)
		m.State = m.State.FailFetch(domain.UserMessage(msg.Err))
		m.Results.SetMovies(m.State.Results, msg.Query)
		m.updateInspector()
		m.updateLayout()
		return m, nil
	}

	m.logger.Debug("fetch cycle complete", "cycle", msg.CycleID, "query", msg.Query, "results", len(msg.Movies))
	m.State = m.State.CompleteFetch(msg.Movies)
	m.Results.SetMovies(m.State.Results, msg.Query)
	m.ShowDetail = false
	m.updateInspector()
	m.updateLayout()

	if top, ok := service.TopResult(msg.Query, msg.Movies); ok {
		return m, RecordSearchCmd(m.Tracker, msg.Query, top)
	}
	return m, nil
}

// handleKeyMsg routes key input by focus
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.Results.IsFiltering() {
		return m.handleFilterKey(msg)
	}

	if key.Matches(msg, m.keys.ToggleFocus) {
		return m, m.toggleFocus()
	}

	if m.Focus == FocusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleResultsKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.Type == tea.KeyDown, msg.Type == tea.KeyEnter:
		return m, m.toggleFocus()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	cmds = append(cmds, cmd)

	if raw := m.Search.Value(); raw != m.State.RawTerm {
		m.State = m.State.WithRawTerm(raw)
		cmds = append(cmds, m.debouncer.Push(raw))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.help.ShowAll {
			m.help.ShowAll = false
			m.updateLayout()
			return m, nil
		}
		if m.ShowDetail {
			m.ShowDetail = false
			m.updateLayout()
			return m, nil
		}
		if m.Results.FilterQuery() != "" {
			m.Results.ClearFilter()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.updateLayout()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.Results.MoveUp()
		m.updateInspector()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.Results.MoveDown()
		m.updateInspector()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.Results.Selected(); ok {
			m.ShowDetail = !m.ShowDetail
			m.updateInspector()
			m.updateLayout()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if m.State.IsLoading || m.State.ErrorMessage != "" || m.Results.Total() == 0 {
			return m, nil
		}
		return m, m.Results.StartFilter()
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Results.ClearFilter()
		m.updateInspector()
		return m, nil
	case tea.KeyEnter:
		m.Results.AcceptFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.UpdateFilter(msg)
	m.updateInspector()
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.Focus == FocusSearch {
		m.Focus = FocusResults
		m.Search.Blur()
		return nil
	}
	m.Focus = FocusSearch
	return m.Search.Focus()
}

// updateInspector syncs the detail pane with the selected result
func (m *Model) updateInspector() {
	if movie, ok := m.Results.Selected(); ok {
		m.Inspector.SetMovie(&movie)
		return
	}
	m.Inspector.SetMovie(nil)
	m.ShowDetail = false
}
