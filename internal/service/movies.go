package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/cinefind/internal/domain"
)

// MovieService fetches movie listings from the metadata provider
type MovieService struct {
	provider domain.MovieProvider
	logger   *slog.Logger
}

// NewMovieService creates a new movie service
func NewMovieService(provider domain.MovieProvider, logger *slog.Logger) *MovieService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieService{
		provider: provider,
		logger:   logger,
	}
}

// Fetch issues exactly one provider request. An empty query returns the
// popular-movies listing. Errors are returned unchanged so callers can
// classify them with domain.UserMessage.
func (s *MovieService) Fetch(ctx context.Context, query string) ([]domain.Movie, error) {
	start := time.Now()
	movies, err := s.provider.Fetch(ctx, query)
	if err != nil {
		s.logger.Warn("movie fetch failed", "query", query, "error", err, "elapsed", time.Since(start))
		return nil, err
	}
	s.logger.Debug("movie fetch complete", "query", query, "results", len(movies), "elapsed", time.Since(start))
	return movies, nil
}

// TopResult returns the result whose popularity should be recorded for a
// completed search: the first result of a non-empty query.
func TopResult(query string, movies []domain.Movie) (domain.Movie, bool) {
	if strings.TrimSpace(query) == "" || len(movies) == 0 {
		return domain.Movie{}, false
	}
	return movies[0], true
}
