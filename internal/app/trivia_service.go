package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"trivia-service/internal/domain"
)

// QuestionRepository is the record store for questions (in-memory, Postgres, etc).
// List methods return questions ordered by ID.
type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, q domain.NewQuestion) (int, error)
	// DeleteQuestion returns domain.ErrQuestionNotFound when id does not exist.
	DeleteQuestion(ctx context.Context, id int) error
}

// CategoryRepository loads categories ordered by ID (from cache/backing store).
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// SelectionObserver is notified of every quiz selection (metrics).
type SelectionObserver interface {
	ObserveSelection(categoryID int, sel Selection)
}

type ServiceOptions struct {
	PageSize int
	Observer SelectionObserver
}

// TriviaService contains the question retrieval and quiz use cases.
type TriviaService struct {
	questions  QuestionRepository
	categories CategoryRepository
	selector   *Selector
	pageSize   int
	observer   SelectionObserver
	logger     zerolog.Logger
}

func NewTriviaService(questions QuestionRepository, categories CategoryRepository, selector *Selector, opts ServiceOptions, logger zerolog.Logger) *TriviaService {
	if selector == nil {
		selector = NewSelector(nil)
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &TriviaService{
		questions:  questions,
		categories: categories,
		selector:   selector,
		pageSize:   pageSize,
		observer:   opts.Observer,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// QuestionPage is one page of questions plus the totals the listing view needs.
type QuestionPage struct {
	Questions      []domain.Question
	TotalQuestions int
	Categories     []domain.Category
}

// DeleteResult describes a deletion and the remaining questions on the requested page.
type DeleteResult struct {
	Deleted        int
	Questions      []domain.Question
	TotalQuestions int
}

// SearchResult is one page of matches and the total number of matches.
type SearchResult struct {
	Questions      []domain.Question
	TotalQuestions int
}

// CategoryQuestions lists every question in one category.
type CategoryQuestions struct {
	Questions       []domain.Question
	TotalQuestions  int
	CurrentCategory int
}

// QuizRequest asks for the next question of a quiz.
type QuizRequest struct {
	PreviousQuestions []int
	CategoryID        int // domain.AllCategories for every category
}

// ListQuestions returns the given page of all questions. An empty page, including an
// empty store, is reported as domain.ErrPageNotFound.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	current := Paginate(all, page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, fmt.Errorf("page %d: %w", page, domain.ErrPageNotFound)
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list categories: %w", err)
	}
	return QuestionPage{
		Questions:      current,
		TotalQuestions: len(all),
		Categories:     categories,
	}, nil
}

func (s *TriviaService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateQuestion stores a new question and returns its ID.
func (s *TriviaService) CreateQuestion(ctx context.Context, q domain.NewQuestion) (int, error) {
	id, err := s.questions.CreateQuestion(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("create question: %w", err)
	}
	s.logger.Info().Int("question_id", id).Int("category", q.Category).Msg("question created")
	return id, nil
}

// DeleteQuestion removes a question and returns the requested page of what remains.
// The page may be empty; only a missing question is reported as not found.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id, page int) (DeleteResult, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return DeleteResult{}, fmt.Errorf("delete question %d: %w", id, domain.ErrQuestionNotFound)
		}
		return DeleteResult{}, fmt.Errorf("delete question %d: %w", id, err)
	}

	remaining, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("list questions: %w", err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return DeleteResult{
		Deleted:        id,
		Questions:      Paginate(remaining, page, s.pageSize),
		TotalQuestions: len(remaining),
	}, nil
}

// SearchQuestions matches term against question text. No matches is not an error.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("list questions: %w", err)
	}
	matches := Search(all, term)
	return SearchResult{
		Questions:      Paginate(matches, page, s.pageSize),
		TotalQuestions: len(matches),
	}, nil
}

// QuestionsByCategory lists the questions of one category. An empty category is not an error.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (CategoryQuestions, error) {
	questions, err := s.questions.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("list category %d: %w", categoryID, err)
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	return CategoryQuestions{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	}, nil
}

// NextQuizQuestion picks a question from the requested scope that is not in PreviousQuestions when possible.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, req QuizRequest) (Selection, error) {
	if req.CategoryID < 0 {
		return Selection{}, fmt.Errorf("category %d: %w", req.CategoryID, domain.ErrMalformedQuiz)
	}

	var (
		candidates []domain.Question
		err        error
	)
	if req.CategoryID == domain.AllCategories {
		candidates, err = s.questions.ListQuestions(ctx)
	} else {
		candidates, err = s.questions.ListQuestionsByCategory(ctx, req.CategoryID)
	}
	if err != nil {
		return Selection{}, fmt.Errorf("load quiz candidates: %w", err)
	}

	sel, err := s.selector.Next(candidates, domain.NewIDSet(req.PreviousQuestions...))
	if err != nil {
		return Selection{}, fmt.Errorf("quiz category %d: %w", req.CategoryID, err)
	}
	if sel.Repeat {
		s.logger.Debug().
			Int("category", req.CategoryID).
			Int("candidates", len(candidates)).
			Msg("quiz candidates exhausted, serving a repeat")
	}
	if s.observer != nil {
		s.observer.ObserveSelection(req.CategoryID, sel)
	}
	return sel, nil
}
