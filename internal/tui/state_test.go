package tui

import (
	"testing"

	"github.com/mmcdole/cinefind/internal/domain"
)

func TestSearchStateTransitions(t *testing.T) {
	s := SearchState{}

	s = s.WithRawTerm("bat")
	if s.RawTerm != "bat" || s.DebouncedTerm != "" {
		t.Fatalf("WithRawTerm changed debounced term: %+v", s)
	}

	s, changed := s.WithDebouncedTerm("bat")
	if !changed || s.DebouncedTerm != "bat" {
		t.Fatalf("WithDebouncedTerm = (%+v, %v)", s, changed)
	}
	if _, changed := s.WithDebouncedTerm("bat"); changed {
		t.Error("same debounced term reported as changed")
	}

	s = s.FailFetch("boom")
	s = s.BeginFetch()
	if !s.IsLoading || s.ErrorMessage != "" {
		t.Errorf("BeginFetch = %+v, want loading with no error", s)
	}

	s = s.CompleteFetch([]domain.Movie{{ID: 1}})
	if s.IsLoading || s.ErrorMessage != "" || len(s.Results) != 1 {
		t.Errorf("CompleteFetch = %+v", s)
	}

	s = s.BeginFetch()
	if len(s.Results) != 1 {
		t.Error("BeginFetch should keep previous results until completion")
	}

	s = s.FailFetch("Invalid API key")
	if s.IsLoading || s.ErrorMessage != "Invalid API key" || len(s.Results) != 0 {
		t.Errorf("FailFetch = %+v", s)
	}
	if s.Results == nil {
		t.Error("FailFetch should leave an empty, non-nil result list")
	}
}

func TestSearchStateTransitionsDoNotMutateReceiver(t *testing.T) {
	orig := SearchState{RawTerm: "a", Results: []domain.Movie{{ID: 1}}}
	_ = orig.WithRawTerm("b")
	_, _ = orig.WithDebouncedTerm("b")
	_ = orig.BeginFetch()
	_ = orig.FailFetch("x")

	if orig.RawTerm != "a" || orig.DebouncedTerm != "" || orig.IsLoading || orig.ErrorMessage != "" || len(orig.Results) != 1 {
		t.Errorf("receiver mutated: %+v", orig)
	}
}

func TestCompleteFetchNilResults(t *testing.T) {
	s := SearchState{}.BeginFetch().CompleteFetch(nil)
	if s.Results == nil || len(s.Results) != 0 {
		t.Errorf("Results = %#v, want empty slice", s.Results)
	}
}
