package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"trivia-service/internal/domain"
)

// flexInt accepts a JSON number or a numeric string ("3").
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected integer, got %s", data)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	*f = flexInt(n)
	return nil
}

// flexString accepts a JSON string or a bare number, which is kept as written.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("expected string, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// createQuestionRequest is the body of POST /questions. Every field must be present.
type createQuestionRequest struct {
	Question   *string     `json:"question" validate:"required"`
	Answer     *flexString `json:"answer" validate:"required"`
	Category   *flexInt    `json:"category" validate:"required"`
	Difficulty *flexInt    `json:"difficulty" validate:"required"`
}

func (r createQuestionRequest) toDomain() domain.NewQuestion {
	return domain.NewQuestion{
		Question:   *r.Question,
		Answer:     string(*r.Answer),
		Category:   int(*r.Category),
		Difficulty: int(*r.Difficulty),
	}
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type quizCategory struct {
	ID   *flexInt `json:"id" validate:"required"`
	Type string   `json:"type"`
}

// quizRequest is the body of POST /quizzes.
type quizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions" validate:"required"`
	QuizCategory      *quizCategory `json:"quiz_category" validate:"required"`
}

type questionsResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
	Categories     []domain.Category `json:"categories"`
}

type categoriesResponse struct {
	Success         bool              `json:"success"`
	Categories      []domain.Category `json:"categories"`
	TotalCategories int               `json:"total_categories"`
}

type createdResponse struct {
	Success bool   `json:"success"`
	Created int    `json:"created"`
	Message string `json:"message"`
}

type deletedResponse struct {
	Success        bool              `json:"success"`
	Deleted        int               `json:"deleted"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

type searchResponse struct {
	Success        bool              `json:"success"`
	Questions      []domain.Question `json:"questions"`
	TotalQuestions int               `json:"total_questions"`
}

type categoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"totalQuestions"`
	CurrentCategory int               `json:"currentCategory"`
}

type quizResponse struct {
	Success  bool            `json:"success"`
	Question domain.Question `json:"question"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
