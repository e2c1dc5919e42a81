package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrQuestionNotFound is returned when a question ID does not exist in the store.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrPageNotFound is returned when a requested page of questions is empty.
	ErrPageNotFound = errors.New("page not found")
	// ErrMissingField indicates a required input field was absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidInput covers quiz-selection input that cannot produce a question.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoCandidates is returned when a quiz scope has no questions to choose from.
	ErrNoCandidates = fmt.Errorf("%w: no candidate questions", ErrInvalidInput)
	// ErrMalformedQuiz indicates a structurally invalid quiz request.
	ErrMalformedQuiz = fmt.Errorf("%w: malformed quiz request", ErrInvalidInput)
)
