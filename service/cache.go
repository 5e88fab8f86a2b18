// file: service/cache.go

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-bankist/logger"
	"go-bankist/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ICacheClient defines the contract for a cache client.
// *redis.Client satisfies it; tests substitute a mock.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// FigureCache is a cache-aside store for computed account figures. A nil
// client turns every call into a miss or a no-op.
type FigureCache struct {
	client ICacheClient
	ttl    time.Duration
}

func NewFigureCache(client ICacheClient, ttl time.Duration) *FigureCache {
	return &FigureCache{client: client, ttl: ttl}
}

var marshalFigures = func(f model.Figures) ([]byte, error) {
	return json.Marshal(f)
}

func figuresKey(accountID uuid.UUID) string {
	return fmt.Sprintf("figures:%s", accountID)
}

// Get returns cached figures for the account. Errors count as a miss.
func (c *FigureCache) Get(ctx context.Context, accountID uuid.UUID) (model.Figures, bool) {
	if c == nil || c.client == nil {
		return model.Figures{}, false
	}
	cached, err := c.client.Get(ctx, figuresKey(accountID)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).Warn("Figure cache read failed")
		}
		return model.Figures{}, false
	}
	var figures model.Figures
	if err := json.Unmarshal([]byte(cached), &figures); err != nil {
		return model.Figures{}, false
	}
	return figures, true
}

// Set stores figures for the account.
func (c *FigureCache) Set(ctx context.Context, accountID uuid.UUID, figures model.Figures) {
	if c == nil || c.client == nil {
		return
	}
	data, err := marshalFigures(figures)
	if err != nil {
		logger.Log.WithError(err).Warn("Figure cache encode failed")
		return
	}
	if err := c.client.Set(ctx, figuresKey(accountID), data, c.ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("Figure cache write failed")
	}
}

// Invalidate drops cached figures for every given account.
func (c *FigureCache) Invalidate(ctx context.Context, accountIDs ...uuid.UUID) {
	if c == nil || c.client == nil || len(accountIDs) == 0 {
		return
	}
	keys := make([]string, len(accountIDs))
	for i, id := range accountIDs {
		keys[i] = figuresKey(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Log.WithError(err).Warn("Figure cache invalidation failed")
	}
}
