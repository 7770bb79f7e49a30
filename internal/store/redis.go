package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mmcdole/cinefind/internal/domain"
)

const (
	redisLeaderboardKey = "cinefind:leaderboard"
	redisDocPrefix      = "cinefind:search:"
)

// RedisStore implements domain.PopularityStore with a sorted set for counts
// and one hash per search term for the descriptive fields.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore parses a redis:// URL and verifies the server is reachable
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStoreFromClient(client), nil
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func redisDocKey(term string) string {
	return redisDocPrefix + term
}

func (s *RedisStore) Increment(ctx context.Context, doc domain.SearchDocument) (domain.SearchDocument, error) {
	if doc.SearchTerm == "" {
		return domain.SearchDocument{}, ErrEmptyTerm
	}
	key := redisDocKey(doc.SearchTerm)

	var score *redis.FloatCmd
	var fields *redis.MapStringStringCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, "id", uuid.NewString())
		pipe.HSetNX(ctx, key, "movie_id", strconv.FormatInt(doc.MovieID, 10))
		pipe.HSetNX(ctx, key, "title", doc.Title)
		pipe.HSetNX(ctx, key, "poster_url", doc.PosterURL)
		pipe.HSet(ctx, key, "updated_at", strconv.FormatInt(s.now().Unix(), 10))
		score = pipe.ZIncrBy(ctx, redisLeaderboardKey, 1, doc.SearchTerm)
		fields = pipe.HGetAll(ctx, key)
		return nil
	})
	if err != nil {
		return domain.SearchDocument{}, err
	}

	return hashToDocument(doc.SearchTerm, score.Val(), fields.Val()), nil
}

func (s *RedisStore) Top(ctx context.Context, n int) ([]domain.SearchDocument, error) {
	if n <= 0 {
		return []domain.SearchDocument{}, nil
	}

	members, err := s.client.ZRevRangeWithScores(ctx, redisLeaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []domain.SearchDocument{}, nil
	}

	// ZREVRANGE breaks ties by member descending. Pull every member tied
	// with the last one so topN can cut by search term ascending.
	if len(members) == n {
		cutoff := members[n-1].Score
		members, err = s.client.ZRevRangeByScoreWithScores(ctx, redisLeaderboardKey, &redis.ZRangeBy{
			Min: strconv.FormatFloat(cutoff, 'f', -1, 64),
			Max: "+inf",
		}).Result()
		if err != nil {
			return nil, err
		}
	}

	cmds := make([]*redis.MapStringStringCmd, len(members))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, m := range members {
			cmds[i] = pipe.HGetAll(ctx, redisDocKey(fmt.Sprint(m.Member)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	docs := make([]domain.SearchDocument, 0, len(members))
	for i, m := range members {
		docs = append(docs, hashToDocument(fmt.Sprint(m.Member), m.Score, cmds[i].Val()))
	}
	return topN(docs, n), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// hashToDocument rebuilds a document from its sorted-set score and hash fields.
// Missing or malformed numeric fields decode as zero.
func hashToDocument(term string, score float64, fields map[string]string) domain.SearchDocument {
	movieID, _ := strconv.ParseInt(fields["movie_id"], 10, 64)
	updated, _ := strconv.ParseInt(fields["updated_at"], 10, 64)
	doc := domain.SearchDocument{
		ID:         fields["id"],
		SearchTerm: term,
		Count:      int64(score),
		MovieID:    movieID,
		Title:      fields["title"],
		PosterURL:  fields["poster_url"],
	}
	if updated > 0 {
		doc.UpdatedAt = time.Unix(updated, 0).UTC()
	}
	return doc
}
