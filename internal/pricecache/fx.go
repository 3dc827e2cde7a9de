package pricecache

import (
	"context"

	"github.com/mmdpc/courierd/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("pricecache",
	fx.Provide(New),
)

// New connects to redis when configured; otherwise pricing reads go
// straight to the database.
func New(cfg config.Config, log *zap.Logger) Cache {
	if cfg.Redis.Addr == "" {
		return Disabled{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn("redis unavailable, price cache disabled", zap.Error(err))
		return Disabled{}
	}

	return NewWithClient(client, log)
}
