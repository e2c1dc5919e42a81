package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"trivia-service/internal/app"
	"trivia-service/internal/domain"
)

// Handler exposes the trivia use cases as REST endpoints.
type Handler struct {
	service *app.TriviaService
}

func NewHandler(service *app.TriviaService) *Handler {
	return &Handler{service: service}
}

// Register registers the trivia routes.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/questions", h.ListQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.GET("/categories", h.ListCategories)
	e.GET("/categories/:id/questions", h.QuestionsByCategory)
	e.POST("/quizzes", h.NextQuizQuestion)
}

// ListQuestions handles GET /questions?page=N
func (h *Handler) ListQuestions(c echo.Context) error {
	page := app.ParsePage(c.QueryParam("page"))
	result, err := h.service.ListQuestions(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questionsResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
		Categories:     result.Categories,
	})
}

// ListCategories handles GET /categories
func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{
		Success:         true,
		Categories:      categories,
		TotalCategories: len(categories),
	})
}

// CreateQuestion handles POST /questions
func (h *Handler) CreateQuestion(c echo.Context) error {
	var req createQuestionRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMissingField, err)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMissingField, err)
	}

	id, err := h.service.CreateQuestion(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createdResponse{
		Success: true,
		Created: id,
		Message: "Question created",
	})
}

// DeleteQuestion handles DELETE /questions/:id?page=N
func (h *Handler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	page := app.ParsePage(c.QueryParam("page"))

	result, err := h.service.DeleteQuestion(c.Request().Context(), id, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{
		Success:        true,
		Deleted:        result.Deleted,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

// SearchQuestions handles POST /questions/search?page=N
func (h *Handler) SearchQuestions(c echo.Context) error {
	var req searchRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return echo.ErrBadRequest
	}
	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}
	page := app.ParsePage(c.QueryParam("page"))

	result, err := h.service.SearchQuestions(c.Request().Context(), term, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

// QuestionsByCategory handles GET /categories/:id/questions
func (h *Handler) QuestionsByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}
	result, err := h.service.QuestionsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// NextQuizQuestion handles POST /quizzes
func (h *Handler) NextQuizQuestion(c echo.Context) error {
	var req quizRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedQuiz, err)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedQuiz, err)
	}

	sel, err := h.service.NextQuizQuestion(c.Request().Context(), app.QuizRequest{
		PreviousQuestions: *req.PreviousQuestions,
		CategoryID:        int(*req.QuizCategory.ID),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quizResponse{
		Success:  true,
		Question: sel.Question,
	})
}
