package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trivia-service/internal/domain"
)

func TestSearch(t *testing.T) {
	corpus := []domain.Question{
		{ID: 1, Question: "What was the title of the 1990 fantasy directed by Tim Burton?"},
		{ID: 2, Question: "Who discovered penicillin?"},
		{ID: 3, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"},
	}

	tests := []struct {
		term string
		want []int
	}{
		{term: "title", want: []int{1, 3}},
		{term: "TITLE", want: []int{1, 3}},
		{term: "Penicillin", want: []int{2}},
		{term: "", want: []int{1, 2, 3}},
		{term: "quantum", want: []int{}},
	}
	for _, tt := range tests {
		got := Search(corpus, tt.term)
		ids := make([]int, 0, len(got))
		for _, q := range got {
			ids = append(ids, q.ID)
		}
		assert.Equal(t, tt.want, ids, "term=%q", tt.term)
	}
}

func TestSearchNoMatchesIsEmptyNotNil(t *testing.T) {
	got := Search(nil, "anything")
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestSearchMatchesQuestionTextOnly(t *testing.T) {
	corpus := []domain.Question{
		{ID: 1, Question: "What is 2+2", Answer: "4"},
		{ID: 2, Question: "Capital of France", Answer: "what? Paris"},
	}
	got := Search(corpus, "what")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "What is 2+2", got[0].Question)
	}
}
