package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"trivia-service/internal/app"
	"trivia-service/internal/domain"
)

const categoriesKey = "categories"

// CategoryCache caches the category list with TTL to avoid repeated DB hits.
type CategoryCache struct {
	loader app.CategoryRepository
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	entry *cachedCategories
}

type cachedCategories struct {
	categories []domain.Category
	expiresAt  time.Time
}

var _ app.CategoryRepository = (*CategoryCache)(nil)

func NewCategoryCache(loader app.CategoryRepository, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *CategoryCache) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if cached, ok := c.lookup(c.clock()); ok {
		return cached, nil
	}

	result, err, _ := c.sf.Do(categoriesKey, func() (interface{}, error) {
		now := c.clock()
		if cached, ok := c.lookup(now); ok {
			return cached, nil
		}

		categories, err := c.loader.ListCategories(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entry = &cachedCategories{
			categories: categories,
			expiresAt:  now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(result.([]domain.Category)), nil
}

func (c *CategoryCache) lookup(now time.Time) ([]domain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entry != nil && c.entry.expiresAt.After(now) {
		return clone(c.entry.categories), true
	}
	return nil, false
}

func (c *CategoryCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

func clone(categories []domain.Category) []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}
