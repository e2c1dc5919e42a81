package memory

import (
	"context"
	"sort"
	"sync"

	"trivia-service/internal/app"
	"trivia-service/internal/domain"
)

// ProgressStore is an in-memory implementation of app.ProgressRepository.
type ProgressStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.IDSet
}

var _ app.ProgressRepository = (*ProgressStore)(nil)

func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		sessions: make(map[string]domain.IDSet),
	}
}

func (s *ProgressStore) Served(_ context.Context, sessionID string) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	served := s.sessions[sessionID]
	ids := make([]int, 0, len(served))
	for id := range served {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *ProgressStore) MarkServed(_ context.Context, sessionID string, questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	served, ok := s.sessions[sessionID]
	if !ok {
		served = domain.NewIDSet()
		s.sessions[sessionID] = served
	}
	served[questionID] = struct{}{}
	return nil
}

func (s *ProgressStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
