package session

import (
	"go.uber.org/zap"

	"github.com/hassanali167/remote-desktop/internal/config"
)

// NewStore selects the session backend: Redis when REDIS_HOST is set and
// reachable, in-memory otherwise.
func NewStore(cfg *config.Config, logger *zap.Logger) Store {
	if cfg.RedisHost != "" {
		store, err := NewRedisStore(cfg.RedisHost, cfg.RedisPort, cfg.RedisUsername, cfg.RedisPassword, logger)
		if err != nil {
			logger.Warn("redis connection failed, falling back to in-memory session store", zap.Error(err))
			return NewMemoryStore(logger)
		}
		logger.Info("using redis session store",
			zap.String("host", cfg.RedisHost),
			zap.String("port", cfg.RedisPort))
		return store
	}

	logger.Info("using in-memory session store")
	return NewMemoryStore(logger)
}
