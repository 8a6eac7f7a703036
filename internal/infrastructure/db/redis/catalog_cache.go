package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamestore/game-store-api/internal/api/metrics"
	"github.com/gamestore/game-store-api/internal/core/domain"
)

const (
	cacheTTL   = 5 * time.Minute
	listKey    = "catalog:list"
	gameKeyFmt = "catalog:game:%s"
)

// CatalogCache is a JSON read cache for catalog queries backed by Redis.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetList returns the cached catalog listing, if present.
func (c *CatalogCache) GetList(ctx context.Context) ([]domain.Game, bool, error) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get list: %w", err)
	}

	var games []domain.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, false, fmt.Errorf("cache decode list: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return games, true, nil
}

// SetList stores the catalog listing with a short TTL.
func (c *CatalogCache) SetList(ctx context.Context, games []domain.Game) error {
	raw, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("cache encode list: %w", err)
	}
	return c.client.Set(ctx, listKey, raw, cacheTTL).Err()
}

// GetGame returns a cached catalog entry, if present.
func (c *CatalogCache) GetGame(ctx context.Context, id string) (*domain.Game, bool, error) {
	raw, err := c.client.Get(ctx, fmt.Sprintf(gameKeyFmt, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get game: %w", err)
	}

	var game domain.Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return nil, false, fmt.Errorf("cache decode game: %w", err)
	}
	metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
	return &game, true, nil
}

// SetGame stores a single catalog entry with a short TTL.
func (c *CatalogCache) SetGame(ctx context.Context, game *domain.Game) error {
	raw, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("cache encode game: %w", err)
	}
	return c.client.Set(ctx, fmt.Sprintf(gameKeyFmt, game.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached listing after a catalog write. Per-game keys
// are left to expire: creates never mutate existing entries.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listKey).Err()
}
