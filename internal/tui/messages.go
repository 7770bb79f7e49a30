package tui

import (
	"github.com/mmcdole/cinefind/internal/domain"
)

// Message types for the TUI

// FetchResultMsg carries the outcome of one fetch cycle. The most recently
// delivered message wins regardless of which query was issued last.
type FetchResultMsg struct {
	Query   string
	CycleID string
	Movies  []domain.Movie
	Err     error
}

// LeaderboardMsg replaces the trending section
type LeaderboardMsg struct {
	Entries []domain.TrendingEntry
}

// LeaderboardTickMsg triggers a periodic leaderboard refresh
type LeaderboardTickMsg struct{}
