package app

import (
	"strings"

	"trivia-service/internal/domain"
)

// Search returns the questions whose text contains term, ignoring case, in corpus order.
// An empty term matches every question.
func Search(corpus []domain.Question, term string) []domain.Question {
	needle := strings.ToLower(term)
	matches := make([]domain.Question, 0, len(corpus))
	for _, q := range corpus {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}
