package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMovieDisplayHelpers(t *testing.T) {
	tests := []struct {
		name       string
		movie      Movie
		wantTitle  string
		wantYear   string
		wantRating string
	}{
		{"complete", Movie{ID: 1, Title: "Heat", ReleaseDate: "1995-12-15", VoteAverage: 7.94}, "Heat", "1995", "7.9"},
		{"missing fields", Movie{ID: 2}, "Untitled", "N/A", "N/A"},
		{"blank title", Movie{ID: 3, Title: "   "}, "Untitled", "N/A", "N/A"},
		{"short date", Movie{ID: 4, Title: "X", ReleaseDate: "19"}, "X", "N/A", "N/A"},
		{"garbage date", Movie{ID: 5, Title: "X", ReleaseDate: "abcd-01-01"}, "X", "N/A", "N/A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.movie.DisplayTitle(); got != tc.wantTitle {
				t.Errorf("DisplayTitle() = %q, want %q", got, tc.wantTitle)
			}
			if got := tc.movie.YearLabel(); got != tc.wantYear {
				t.Errorf("YearLabel() = %q, want %q", got, tc.wantYear)
			}
			if got := tc.movie.RatingLabel(); got != tc.wantRating {
				t.Errorf("RatingLabel() = %q, want %q", got, tc.wantRating)
			}
		})
	}
}

func TestMoviePosterURL(t *testing.T) {
	base := "https://image.tmdb.org/t/p/w500/"
	if got := (Movie{PosterPath: "/a.jpg"}).PosterURL(base); got != "https://image.tmdb.org/t/p/w500/a.jpg" {
		t.Errorf("PosterURL = %q", got)
	}
	if got := (Movie{}).PosterURL(base); got != "" {
		t.Errorf("PosterURL without poster = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"transport", &TransportError{StatusCode: 500}, TransportErrorMessage},
		{"wrapped transport", fmt.Errorf("fetch: %w", &TransportError{Err: errors.New("dial")}), TransportErrorMessage},
		{"provider with message", &ProviderError{Message: "Movie not found!"}, "Movie not found!"},
		{"provider without message", &ProviderError{}, DefaultProviderMessage},
		{"unknown", errors.New("boom"), TransportErrorMessage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := UserMessage(tc.err); got != tc.want {
				t.Errorf("UserMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	dial := errors.New("dial tcp: refused")
	terr := &TransportError{Err: dial}
	if !errors.Is(terr, ErrTransport) || !errors.Is(terr, dial) {
		t.Error("TransportError should match ErrTransport and its cause")
	}
	if errors.Is(&ProviderError{}, ErrTransport) {
		t.Error("ProviderError must not match ErrTransport")
	}
	if !errors.Is(&ProviderError{}, ErrProvider) {
		t.Error("ProviderError should match ErrProvider")
	}
	trk := &TrackerError{Op: "increment", Err: ErrNotFound}
	if !errors.Is(trk, ErrTracker) || !errors.Is(trk, ErrNotFound) {
		t.Error("TrackerError should match ErrTracker and its cause")
	}
}

func TestNewTrendingEntry(t *testing.T) {
	doc := SearchDocument{ID: "d1", SearchTerm: "batman", Count: 3, MovieID: 268, Title: "Batman", PosterURL: "u"}
	e := NewTrendingEntry(doc)
	if e.ID != "d1" || e.Title != "Batman" || e.PosterURL != "u" || e.SearchTerm != "batman" || e.Count != 3 {
		t.Errorf("NewTrendingEntry = %+v", e)
	}
}
