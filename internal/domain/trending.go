package domain

import "time"

// SearchDocument is the persisted popularity record for one search term
type SearchDocument struct {
	ID         string    `json:"id"`
	SearchTerm string    `json:"search_term"`
	Count      int64     `json:"count"`
	MovieID    int64     `json:"movie_id"`
	Title      string    `json:"title"`
	PosterURL  string    `json:"poster_url"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TrendingEntry is one row of the popularity leaderboard
type TrendingEntry struct {
	ID         string // Document identifier
	Title      string // Title of the movie recorded for the term
	PosterURL  string // Poster of the movie recorded for the term
	SearchTerm string // The query that was counted
	Count      int64  // Number of recorded searches
}

// NewTrendingEntry projects a stored document onto a leaderboard row
func NewTrendingEntry(doc SearchDocument) TrendingEntry {
	return TrendingEntry{
		ID:         doc.ID,
		Title:      doc.Title,
		PosterURL:  doc.PosterURL,
		SearchTerm: doc.SearchTerm,
		Count:      doc.Count,
	}
}
