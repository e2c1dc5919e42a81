package app

import (
	"math/rand"

	"trivia-service/internal/domain"
)

// RandSource is the randomness the Selector draws indexes from. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// globalRand uses the process-wide math/rand generator, which is safe for concurrent use.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Selection is the outcome of picking a quiz question.
type Selection struct {
	Question domain.Question `json:"question"`
	Attempts int             `json:"-"`
	// Repeat is set when every candidate was already served and a repeat was returned.
	Repeat bool `json:"repeat"`
}

// Selector picks the next quiz question by rejection sampling over the candidates.
type Selector struct {
	rnd RandSource
}

// NewSelector returns a Selector drawing from rnd, or from the process-wide generator when rnd is nil.
func NewSelector(rnd RandSource) *Selector {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Selector{rnd: rnd}
}

// Next samples candidates uniformly until it finds one not in used, making at most len(candidates)+1 draws.
// When the draws run out it falls back to the first unused candidate, and when there is none it returns
// the last draw as a repeat.
func (s *Selector) Next(candidates []domain.Question, used domain.IDSet) (Selection, error) {
	n := len(candidates)
	if n == 0 {
		return Selection{}, domain.ErrNoCandidates
	}

	var last domain.Question
	attempts := 0
	for attempts < n+1 {
		last = candidates[s.rnd.Intn(n)]
		attempts++
		if !used.Has(last.ID) {
			return Selection{Question: last, Attempts: attempts}, nil
		}
	}

	for _, q := range candidates {
		if !used.Has(q.ID) {
			return Selection{Question: q, Attempts: attempts}, nil
		}
	}
	return Selection{Question: last, Attempts: attempts, Repeat: true}, nil
}
