package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"trivia-service/internal/domain"
)

func TestCategoryCacheCaches(t *testing.T) {
	loader := &countingLoader{categories: []domain.Category{{ID: 1, Type: "Science"}}}
	cache := NewCategoryCache(loader, time.Minute)

	if _, err := cache.ListCategories(context.Background()); err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if loader.Calls() != 1 {
		t.Fatalf("expected loader once, got %d", loader.Calls())
	}

	got, err := cache.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list categories 2: %v", err)
	}
	if loader.Calls() != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.Calls())
	}
	if len(got) != 1 || got[0].Type != "Science" {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestCategoryCacheExpires(t *testing.T) {
	loader := &countingLoader{categories: []domain.Category{{ID: 1, Type: "Science"}}}
	cache := NewCategoryCache(loader, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.clock = func() time.Time { return now }

	_, _ = cache.ListCategories(context.Background())
	now = now.Add(30 * time.Second)
	_, _ = cache.ListCategories(context.Background())
	if loader.Calls() != 1 {
		t.Fatalf("expected fresh entry, loader calls %d", loader.Calls())
	}

	// ttl plus the maximum jitter
	now = now.Add(2 * time.Minute)
	_, _ = cache.ListCategories(context.Background())
	if loader.Calls() != 2 {
		t.Fatalf("expected reload after expiry, loader calls %d", loader.Calls())
	}
}

func TestCategoryCacheDoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{err: errors.New("db down")}
	cache := NewCategoryCache(loader, time.Minute)

	if _, err := cache.ListCategories(context.Background()); err == nil {
		t.Fatalf("expected loader error")
	}
	loader.setErr(nil)
	loader.categories = []domain.Category{{ID: 3, Type: "Geography"}}
	got, err := cache.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("list after recovery: %v", err)
	}
	if len(got) != 1 || loader.Calls() != 2 {
		t.Fatalf("expected reload after error, got %+v calls=%d", got, loader.Calls())
	}
}

func TestCategoryCacheReturnsCopies(t *testing.T) {
	loader := &countingLoader{categories: []domain.Category{{ID: 1, Type: "Science"}}}
	cache := NewCategoryCache(loader, time.Minute)

	first, _ := cache.ListCategories(context.Background())
	first[0].Type = "mutated"
	second, _ := cache.ListCategories(context.Background())
	if second[0].Type != "Science" {
		t.Fatalf("cache entry mutated: %+v", second)
	}
}

type countingLoader struct {
	mu         sync.Mutex
	categories []domain.Category
	err        error
	calls      int
}

func (l *countingLoader) ListCategories(_ context.Context) ([]domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	out := make([]domain.Category, len(l.categories))
	copy(out, l.categories)
	return out, nil
}

func (l *countingLoader) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func (l *countingLoader) setErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

func TestCategoryCacheWithoutTTLDoesNotCache(t *testing.T) {
	loader := &countingLoader{categories: []domain.Category{{ID: 1, Type: "Science"}}}
	cache := NewCategoryCache(loader, 0)

	_, _ = cache.ListCategories(context.Background())
	_, _ = cache.ListCategories(context.Background())
	if loader.Calls() != 2 {
		t.Fatalf("expected every call to hit the loader, got %d", loader.Calls())
	}
}
