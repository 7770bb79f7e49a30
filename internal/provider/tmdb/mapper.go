package tmdb

import (
	"github.com/mmcdole/cinefind/internal/domain"
)

// MapMovie converts a provider result to a domain.Movie
func MapMovie(r MovieResult) domain.Movie {
	title := r.Title
	if title == "" {
		title = r.OriginalTitle
	}
	var poster string
	if r.PosterPath != nil {
		poster = *r.PosterPath
	}
	return domain.Movie{
		ID:               r.ID,
		Title:            title,
		Overview:         r.Overview,
		PosterPath:       poster,
		ReleaseDate:      r.ReleaseDate,
		OriginalLanguage: r.OriginalLanguage,
		VoteAverage:      r.VoteAverage,
		Popularity:       r.Popularity,
	}
}

// MapMovies converts provider results, dropping records without an id.
// Provider order is preserved.
func MapMovies(results []MovieResult) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		if r.ID == 0 {
			continue
		}
		movies = append(movies, MapMovie(r))
	}
	return movies
}
