package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/shop-api/internal/core/domain"
)

const (
	categoryCacheKey   = "catalog:categories"
	defaultCategoryTTL = 5 * time.Minute
)

// CategoryCache stores the category list as a JSON blob with a TTL.
type CategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCategoryCache(client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = defaultCategoryTTL
	}
	return &CategoryCache{client: client, ttl: ttl}
}

func (c *CategoryCache) Get(ctx context.Context) ([]domain.Category, bool, error) {
	raw, err := c.client.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("category cache get: %w", err)
	}

	var categories []domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, false, fmt.Errorf("category cache decode: %w", err)
	}
	return categories, true, nil
}

func (c *CategoryCache) Set(ctx context.Context, categories []domain.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("category cache encode: %w", err)
	}
	return c.client.Set(ctx, categoryCacheKey, raw, c.ttl).Err()
}
