package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/service"
)

// Command factories for async operations

const (
	fetchTimeout       = 60 * time.Second
	leaderboardTimeout = 15 * time.Second
	recordTimeout      = 15 * time.Second
)

// FetchMoviesCmd runs one fetch cycle for query
func FetchMoviesCmd(svc *service.MovieService, query, cycleID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		movies, err := svc.Fetch(ctx, query)
		return FetchResultMsg{
			Query:   query,
			CycleID: cycleID,
			Movies:  movies,
			Err:     err,
		}
	}
}

// RefreshLeaderboardCmd loads the trending entries. It always produces a
// LeaderboardMsg; failures yield an empty list.
func RefreshLeaderboardCmd(tracker *service.PopularityTracker) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboardTimeout)
		defer cancel()

		return LeaderboardMsg{Entries: tracker.Leaderboard(ctx)}
	}
}

// RecordSearchCmd increments the popularity counter for query. It reports
// no message; the outcome only reaches the log.
func RecordSearchCmd(tracker *service.PopularityTracker, query string, top domain.Movie) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		tracker.RecordSearch(ctx, query, top)
		return nil
	}
}

// LeaderboardTickCmd schedules the next periodic leaderboard refresh
func LeaderboardTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return LeaderboardTickMsg{}
	})
}
