package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/domain"
)

// Open creates the popularity store selected by cfg.Backend.
// This factory keeps backend selection out of main.
func Open(cfg adapter.StoreConfig, logger *slog.Logger) (domain.PopularityStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case adapter.StoreBackendBolt, "":
		logger.Info("opening popularity store", "backend", "bolt", "path", cfg.Path)
		return NewBoltStore(cfg.Path)

	case adapter.StoreBackendMemory:
		logger.Info("opening popularity store", "backend", "memory")
		return NewMemoryStore(), nil

	case adapter.StoreBackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("opening popularity store", "backend", "mongo", "database", cfg.MongoDatabase)
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)

	case adapter.StoreBackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("opening popularity store", "backend", "redis")
		return NewRedisStore(ctx, cfg.RedisURL)

	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}
