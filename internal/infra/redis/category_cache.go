package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-service/internal/app"
	"trivia-service/internal/domain"
)

const categoriesKey = "trivia:categories"

// CategoryCache caches the category list in Redis as JSON and falls back to a loader on cache miss.
type CategoryCache struct {
	client *redis.Client
	loader app.CategoryRepository
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

var _ app.CategoryRepository = (*CategoryCache)(nil)

func NewCategoryCache(client *redis.Client, loader app.CategoryRepository, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *CategoryCache) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if categories, ok := c.fromCache(ctx); ok {
		return categories, nil
	}

	result, err, _ := c.sf.Do(categoriesKey, func() (interface{}, error) {
		// another caller may have filled the key while we waited
		if categories, ok := c.fromCache(ctx); ok {
			return categories, nil
		}

		categories, err := c.loader.ListCategories(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl <= 0 {
			// a zero expiration would make the key permanent
			return categories, nil
		}
		if data, err := json.Marshal(categories); err == nil {
			// best-effort; a failed write only costs another load
			_ = c.client.Set(ctx, categoriesKey, data, c.ttlWithJitter()).Err()
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Category), nil
}

func (c *CategoryCache) fromCache(ctx context.Context) ([]domain.Category, bool) {
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) ttlWithJitter() time.Duration {
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
