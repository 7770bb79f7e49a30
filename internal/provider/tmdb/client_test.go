package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mmcdole/cinefind/internal/domain"
)

func resultsJSON(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id":%d,"title":"Movie %d","poster_path":"/p%d.jpg","vote_average":7.5,"release_date":"2020-01-01","original_language":"en"}`, i+1, i+1, i+1)
	}
	return `{"page":1,"results":[` + strings.Join(parts, ",") + `]}`
}

func TestFetchEmptyQueryUsesDiscover(t *testing.T) {
	var gotPath, gotSort, gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSort = r.URL.Query().Get("sort_by")
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, resultsJSON(20))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/3/", "tok", nil)
	movies, err := c.Fetch(context.Background(), "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if gotPath != "/3/discover/movie" {
		t.Errorf("path = %q, want /3/discover/movie", gotPath)
	}
	if gotSort != "popularity.desc" {
		t.Errorf("sort_by = %q", gotSort)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if len(movies) != 20 {
		t.Fatalf("len(movies) = %d, want 20", len(movies))
	}
	if movies[0].ID != 1 || movies[19].ID != 20 {
		t.Errorf("provider order not preserved: first=%d last=%d", movies[0].ID, movies[19].ID)
	}
}

func TestFetchQueryUsesSearch(t *testing.T) {
	tests := []struct {
		query   string
		wantRaw string
	}{
		{"batman", "query=batman"},
		{"the dark knight", "query=the%20dark%20knight"},
		{"a&b=c+d", "query=a%26b%3Dc%2Bd"},
		{"amélie", "query=am%C3%A9lie"},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			var gotPath, gotRaw, gotQuery string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotRaw = r.URL.RawQuery
				gotQuery = r.URL.Query().Get("query")
				fmt.Fprint(w, resultsJSON(1))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "tok", nil)
			movies, err := c.Fetch(context.Background(), tc.query)
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if gotPath != "/search/movie" {
				t.Errorf("path = %q, want /search/movie", gotPath)
			}
			if gotRaw != tc.wantRaw {
				t.Errorf("raw query = %q, want %q", gotRaw, tc.wantRaw)
			}
			if gotQuery != tc.query {
				t.Errorf("decoded query = %q, want %q", gotQuery, tc.query)
			}
			if len(movies) != 1 {
				t.Errorf("len(movies) = %d, want 1", len(movies))
			}
		})
	}
}

func TestFetchNonSuccessStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"status_code":7,"status_message":"Invalid API key"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad", nil).Fetch(context.Background(), "batman")
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
	var terr *domain.TransportError
	if !errors.As(err, &terr) || terr.StatusCode != http.StatusUnauthorized {
		t.Errorf("err = %#v, want TransportError with 401", err)
	}
	if got := domain.UserMessage(err); got != domain.TransportErrorMessage {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestFetchUnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "tok", nil).Fetch(context.Background(), "")
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
}

func TestFetchProviderFailureBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"response false with error", `{"Response":"False","error":"Movie not found!"}`, "Movie not found!"},
		{"response false without error", `{"Response":"False"}`, domain.DefaultProviderMessage},
		{"success false", `{"success":false,"status_message":"The resource you requested could not be found."}`, "The resource you requested could not be found."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			movies, err := NewClient(srv.URL, "tok", nil).Fetch(context.Background(), "x")
			if !errors.Is(err, domain.ErrProvider) {
				t.Fatalf("err = %v, want ErrProvider", err)
			}
			if movies != nil {
				t.Errorf("movies = %v, want nil", movies)
			}
			if got := domain.UserMessage(err); got != tc.wantMsg {
				t.Errorf("UserMessage = %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>oops</html>`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok", nil).Fetch(context.Background(), "")
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("err = %v, want ErrTransport", err)
	}
}

func TestFetchMissingResultsIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"page":1}`)
	}))
	defer srv.Close()

	movies, err := NewClient(srv.URL, "tok", nil).Fetch(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("len(movies) = %d, want 0", len(movies))
	}
}

func TestFetchIssuesOneRequestPerCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, _ = NewClient(srv.URL, "tok", nil).Fetch(context.Background(), "batman")
	if n := calls.Load(); n != 1 {
		t.Errorf("requests = %d, want 1 (no retry)", n)
	}
}

func TestMapMovies(t *testing.T) {
	poster := "/abc.jpg"
	results := []MovieResult{
		{ID: 0, Title: "No ID"},
		{ID: 1, Title: "", OriginalTitle: "Original", PosterPath: &poster, VoteAverage: 8.25},
		{ID: 2, Title: "Plain"},
	}

	movies := MapMovies(results)
	if len(movies) != 2 {
		t.Fatalf("len(movies) = %d, want 2", len(movies))
	}
	if movies[0].Title != "Original" {
		t.Errorf("Title = %q, want fallback to original title", movies[0].Title)
	}
	if movies[0].PosterPath != "/abc.jpg" {
		t.Errorf("PosterPath = %q", movies[0].PosterPath)
	}
	if movies[1].PosterPath != "" {
		t.Errorf("nil poster_path should map to empty, got %q", movies[1].PosterPath)
	}
}
