package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/domain"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisIncrementKeepsFirstDocument(t *testing.T) {
	s := newTestRedisStore(t)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	ctx := context.Background()

	first, err := s.Increment(ctx, domain.SearchDocument{SearchTerm: "batman", MovieID: 268, Title: "Batman", PosterURL: "https://img/a.jpg"})
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if first.Count != 1 || first.ID == "" {
		t.Fatalf("first = %+v, want count 1 with an id", first)
	}

	second, err := s.Increment(ctx, domain.SearchDocument{SearchTerm: "batman", MovieID: 999, Title: "Other"})
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if second.Count != 2 {
		t.Errorf("second Count = %d, want 2", second.Count)
	}
	if second.ID != first.ID || second.MovieID != 268 || second.Title != "Batman" || second.PosterURL != "https://img/a.jpg" {
		t.Errorf("second = %+v, want fields of first document", second)
	}
	if !second.UpdatedAt.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("UpdatedAt = %v", second.UpdatedAt)
	}

	top, err := s.Top(ctx, 5)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 1 || top[0].Count != 2 || top[0].Title != "Batman" {
		t.Errorf("Top = %+v", top)
	}
}

func TestRedisTopTieCutoffWithHigherScores(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()

	counts := map[string]int{"zulu": 3, "yankee": 1, "alpha": 1, "mike": 1}
	for term, n := range counts {
		for i := 0; i < n; i++ {
			if _, err := s.Increment(ctx, domain.SearchDocument{SearchTerm: term}); err != nil {
				t.Fatal(err)
			}
		}
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := []string{"zulu", "alpha", "mike"}
	got := terms(top)
	if len(got) != len(want) {
		t.Fatalf("Top(3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Top(3) = %v, want %v", got, want)
			break
		}
	}
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := Open(adapter.StoreConfig{Backend: adapter.StoreBackendRedis, RedisURL: "redis://" + mr.Addr()}, adapter.NullLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := s.Increment(context.Background(), domain.SearchDocument{SearchTerm: "heat"}); err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if !mr.Exists(redisDocKey("heat")) {
		t.Error("document hash not written")
	}
}

func TestNewRedisStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NewRedisStore(ctx, "redis://"+addr); err == nil {
		t.Error("expected ping failure for a stopped server")
	}
}
