package domain

import (
	"context"
)

// MovieProvider fetches movies from the metadata provider.
// An empty query returns the popular-movies listing.
type MovieProvider interface {
	Fetch(ctx context.Context, query string) ([]Movie, error)
}

// PopularityStore persists per-query search counters
type PopularityStore interface {
	// Increment bumps the counter of the document matching doc.SearchTerm,
	// creating it with Count 1 from doc's fields when none exists.
	Increment(ctx context.Context, doc SearchDocument) (SearchDocument, error)

	// Top returns up to n documents ordered by Count descending
	Top(ctx context.Context, n int) ([]SearchDocument, error)

	Close() error
}
