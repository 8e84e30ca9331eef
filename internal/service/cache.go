package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"coursecraft/internal/model"
	"coursecraft/pkg/redis"
)

// AggregateCache snapshot of a discipline's content graph (facts only).
// Implementations never fail the caller: a broken cache behaves as a miss.
type AggregateCache interface {
	Get(ctx context.Context, disciplineID string) (*model.Discipline, bool)
	Set(ctx context.Context, d *model.Discipline)
	Evict(ctx context.Context, disciplineID string)
}

const snapshotPrefix = "discipline:snapshot:"

type redisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewAggregateCache Redis-backed cache; nil client yields a cache that never hits
func NewAggregateCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) AggregateCache {
	if client == nil {
		return nopCache{}
	}
	return &redisAggregateCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisAggregateCache) Get(ctx context.Context, id string) (*model.Discipline, bool) {
	var d model.Discipline
	err := c.client.GetJSON(ctx, snapshotPrefix+id, &d)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			c.logger.Warn("snapshot read failed", zap.String("discipline_id", id), zap.Error(err))
		}
		return nil, false
	}
	return &d, true
}

func (c *redisAggregateCache) Set(ctx context.Context, d *model.Discipline) {
	if err := c.client.SetJSON(ctx, snapshotPrefix+d.ID, d, c.ttl); err != nil {
		c.logger.Warn("snapshot write failed", zap.String("discipline_id", d.ID), zap.Error(err))
	}
}

func (c *redisAggregateCache) Evict(ctx context.Context, id string) {
	if err := c.client.Delete(ctx, snapshotPrefix+id); err != nil {
		c.logger.Warn("snapshot evict failed", zap.String("discipline_id", id), zap.Error(err))
	}
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) (*model.Discipline, bool) { return nil, false }
func (nopCache) Set(context.Context, *model.Discipline)                {}
func (nopCache) Evict(context.Context, string)                         {}
