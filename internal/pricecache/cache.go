// Package pricecache keeps a read-through snapshot of the active pricing
// configuration in redis. It is strictly an accelerator: every miss or
// redis failure falls back to the database, and admin writes invalidate.
package pricecache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	fixedpricedomain "github.com/mmdpc/courierd/internal/fixedprice/domain"
	tariffdomain "github.com/mmdpc/courierd/internal/tariff/domain"
)

const (
	fixedKey  = "courierd:prices:fixed"
	tariffKey = "courierd:prices:tariff"

	snapshotTTL = 5 * time.Minute
)

type Cache interface {
	GetFixed(ctx context.Context) (*fixedpricedomain.FixedPrice, bool)
	SetFixed(ctx context.Context, price *fixedpricedomain.FixedPrice)
	InvalidateFixed(ctx context.Context)

	GetTariff(ctx context.Context) ([]tariffdomain.Interval, bool)
	SetTariff(ctx context.Context, intervals []tariffdomain.Interval)
	InvalidateTariff(ctx context.Context)
}

type redisCache struct {
	client *redis.Client
	log    *zap.Logger
}

// NewWithClient wraps an existing redis client; tests hand in miniredis.
func NewWithClient(client *redis.Client, log *zap.Logger) Cache {
	return &redisCache{client: client, log: log.Named("pricecache")}
}

func (c *redisCache) GetFixed(ctx context.Context) (*fixedpricedomain.FixedPrice, bool) {
	var price fixedpricedomain.FixedPrice
	if !c.get(ctx, fixedKey, &price) {
		return nil, false
	}
	return &price, true
}

func (c *redisCache) SetFixed(ctx context.Context, price *fixedpricedomain.FixedPrice) {
	c.set(ctx, fixedKey, price)
}

func (c *redisCache) InvalidateFixed(ctx context.Context) {
	c.del(ctx, fixedKey)
}

func (c *redisCache) GetTariff(ctx context.Context) ([]tariffdomain.Interval, bool) {
	var intervals []tariffdomain.Interval
	if !c.get(ctx, tariffKey, &intervals) {
		return nil, false
	}
	return intervals, true
}

func (c *redisCache) SetTariff(ctx context.Context, intervals []tariffdomain.Interval) {
	c.set(ctx, tariffKey, intervals)
}

func (c *redisCache) InvalidateTariff(ctx context.Context) {
	c.del(ctx, tariffKey)
}

func (c *redisCache) get(ctx context.Context, key string, out any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		c.del(ctx, key)
		return false
	}
	return true
}

func (c *redisCache) set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, snapshotTTL).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisCache) del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
