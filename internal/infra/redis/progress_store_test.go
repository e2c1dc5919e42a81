package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func TestProgressStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewProgressStore(newClient(mr), time.Minute)
	ctx := context.Background()

	for _, id := range []int{12, 3, 12} {
		if err := store.MarkServed(ctx, "session-1", id); err != nil {
			t.Fatalf("mark served: %v", err)
		}
	}
	if !mr.Exists("quiz:progress:session-1") {
		t.Fatalf("expected redis key to be set")
	}
	if ttl := mr.TTL("quiz:progress:session-1"); ttl != time.Minute {
		t.Fatalf("expected ttl refresh to 1m, got %s", ttl)
	}

	served, err := store.Served(ctx, "session-1")
	if err != nil {
		t.Fatalf("served: %v", err)
	}
	if len(served) != 2 || served[0] != 3 || served[1] != 12 {
		t.Fatalf("unexpected served ids: %v", served)
	}

	if err := store.Clear(ctx, "session-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if mr.Exists("quiz:progress:session-1") {
		t.Fatalf("expected redis key to be removed")
	}
	served, _ = store.Served(ctx, "session-1")
	if len(served) != 0 {
		t.Fatalf("expected no progress after clear, got %v", served)
	}
}

func TestProgressStoreExpiresAbandonedSessions(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewProgressStore(newClient(mr), time.Minute)
	_ = store.MarkServed(context.Background(), "session-2", 1)

	mr.FastForward(61 * time.Second)
	served, err := store.Served(context.Background(), "session-2")
	if err != nil {
		t.Fatalf("served: %v", err)
	}
	if len(served) != 0 {
		t.Fatalf("expected expired progress, got %v", served)
	}
}

func TestProgressStoreWithoutTTLKeepsKey(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	store := NewProgressStore(newClient(mr), 0)
	_ = store.MarkServed(context.Background(), "session-3", 4)
	if ttl := mr.TTL("quiz:progress:session-3"); ttl != 0 {
		t.Fatalf("expected no expiry, got %s", ttl)
	}
}
