package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"trivia-service/internal/domain"
)

var errEmptyText = errors.New("question and answer must not be empty")

// QuestionStore is an in-memory record store for questions and categories (useful for tests/demos).
type QuestionStore struct {
	mu         sync.RWMutex
	nextID     int
	questions  []domain.Question // ordered by ID
	categories []domain.Category
}

// NewQuestionStore seeds a store. Seeded questions keep their IDs; new ones continue after the highest.
func NewQuestionStore(categories []domain.Category, questions []domain.Question) *QuestionStore {
	qs := make([]domain.Question, len(questions))
	copy(qs, questions)
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })

	cs := make([]domain.Category, len(categories))
	copy(cs, categories)
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })

	next := 1
	if len(qs) > 0 {
		next = qs[len(qs)-1].ID + 1
	}
	return &QuestionStore{nextID: next, questions: qs, categories: cs}
}

func (s *QuestionStore) ListQuestions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *QuestionStore) ListQuestionsByCategory(_ context.Context, categoryID int) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Question, 0)
	for _, q := range s.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *QuestionStore) CreateQuestion(_ context.Context, nq domain.NewQuestion) (int, error) {
	if nq.Question == "" || nq.Answer == "" {
		return 0, errEmptyText
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.questions = append(s.questions, domain.Question{
		ID:         id,
		Question:   nq.Question,
		Answer:     nq.Answer,
		Category:   nq.Category,
		Difficulty: nq.Difficulty,
	})
	return id, nil
}

func (s *QuestionStore) DeleteQuestion(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

func (s *QuestionStore) ListCategories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
