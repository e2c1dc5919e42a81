package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia-service/internal/app"
)

// ProgressStore keeps the served question IDs of a quiz stream in a Redis set:
//
//	SADD quiz:progress:{sessionID} {questionID}
//
// The set expires ttl after the last question was served, so abandoned sessions clean themselves up.
type ProgressStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ app.ProgressRepository = (*ProgressStore)(nil)

func NewProgressStore(client *redis.Client, ttl time.Duration) *ProgressStore {
	return &ProgressStore{client: client, ttl: ttl}
}

func (s *ProgressStore) Served(ctx context.Context, sessionID string) ([]int, error) {
	members, err := s.client.SMembers(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *ProgressStore) MarkServed(ctx context.Context, sessionID string, questionID int) error {
	key := s.key(sessionID)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, questionID)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("mark served: %w", err)
	}
	return nil
}

func (s *ProgressStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *ProgressStore) key(sessionID string) string {
	return "quiz:progress:" + sessionID
}
