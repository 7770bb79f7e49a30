package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmcdole/cinefind/internal/domain"
)

// DefaultLeaderboardSize is the number of trending entries shown
const DefaultLeaderboardSize = 5

// PopularityTracker records searches and reads the trending leaderboard.
// Neither operation ever returns an error: store failures are logged and
// degrade to a no-op or an empty leaderboard.
type PopularityTracker struct {
	store     domain.PopularityStore
	imageBase string
	size      int
	logger    *slog.Logger
}

// NewPopularityTracker creates a tracker over store. imageBase is used to
// build the poster URL saved with new documents.
func NewPopularityTracker(store domain.PopularityStore, imageBase string, size int, logger *slog.Logger) *PopularityTracker {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = DefaultLeaderboardSize
	}
	return &PopularityTracker{
		store:     store,
		imageBase: imageBase,
		size:      size,
		logger:    logger,
	}
}

// RecordSearch increments the counter for query, creating the document from
// top when the query has not been seen before.
func (t *PopularityTracker) RecordSearch(ctx context.Context, query string, top domain.Movie) {
	term := strings.TrimSpace(query)
	if term == "" {
		return
	}

	doc, err := t.store.Increment(ctx, domain.SearchDocument{
		SearchTerm: term,
		MovieID:    top.ID,
		Title:      top.Title,
		PosterURL:  top.PosterURL(t.imageBase),
	})
	if err != nil {
		t.logger.Error("failed to record search",
			"query", term,
			"movieID", top.ID,
			"error", &domain.TrackerError{Op: "increment", Err: err})
		return
	}

	t.logger.Debug("recorded search", "query", term, "count", doc.Count)
}

// Leaderboard returns the most searched terms, highest count first.
// Returns an empty slice on any failure.
func (t *PopularityTracker) Leaderboard(ctx context.Context) []domain.TrendingEntry {
	docs, err := t.store.Top(ctx, t.size)
	if err != nil {
		t.logger.Error("failed to load leaderboard", "error", &domain.TrackerError{Op: "top", Err: err})
		return []domain.TrendingEntry{}
	}

	entries := make([]domain.TrendingEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, domain.NewTrendingEntry(doc))
	}
	return entries
}
