package tui

import "github.com/mmcdole/cinefind/internal/domain"

// SearchState is the search screen state owned by Model. Every transition
// returns a new value; the receiver is never modified.
type SearchState struct {
	RawTerm       string
	DebouncedTerm string
	IsLoading     bool
	ErrorMessage  string
	Results       []domain.Movie
}

// WithRawTerm records the text currently in the search box
func (s SearchState) WithRawTerm(raw string) SearchState {
	s.RawTerm = raw
	return s
}

// WithDebouncedTerm records a debounced value. changed is false when the
// value equals the current debounced term, in which case nothing should run.
func (s SearchState) WithDebouncedTerm(term string) (next SearchState, changed bool) {
	if term == s.DebouncedTerm {
		return s, false
	}
	s.DebouncedTerm = term
	return s, true
}

// BeginFetch marks a fetch as in flight and clears the previous error.
// Existing results stay until the fetch completes.
func (s SearchState) BeginFetch() SearchState {
	s.IsLoading = true
	s.ErrorMessage = ""
	return s
}

// CompleteFetch replaces the results with movies
func (s SearchState) CompleteFetch(movies []domain.Movie) SearchState {
	if movies == nil {
		movies = []domain.Movie{}
	}
	s.IsLoading = false
	s.ErrorMessage = ""
	s.Results = movies
	return s
}

// FailFetch clears the results and records the user-facing message
func (s SearchState) FailFetch(message string) SearchState {
	s.IsLoading = false
	s.ErrorMessage = message
	s.Results = []domain.Movie{}
	return s
}
