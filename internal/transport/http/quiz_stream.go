package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"trivia-service/internal/app"
	"trivia-service/internal/domain"
)

// QuizStreamHandler plays a quiz over a websocket, remembering served questions on the server.
type QuizStreamHandler struct {
	service  *app.TriviaService
	progress app.ProgressRepository
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

func NewQuizStreamHandler(service *app.TriviaService, progress app.ProgressRepository, logger zerolog.Logger) *QuizStreamHandler {
	return &QuizStreamHandler{
		service:  service,
		progress: progress,
		logger:   logger.With().Str("component", "quiz_stream").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type string `json:"type"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload,omitempty"`
}

type sessionPayload struct {
	SessionID string `json:"sessionId"`
	Category  int    `json:"category"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades GET /ws/quizzes?category=N&sessionId=S. Clients send {"type":"next"} for the next
// question and {"type":"reset"} to start over. Reconnecting with the same sessionId resumes progress.
func (h *QuizStreamHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	categoryID := domain.AllCategories
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		categoryID = id
	}

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		sessionID = uuid.NewString()
	} else if _, err := uuid.Parse(sessionID); err != nil {
		http.Error(w, "invalid sessionId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	logger := h.logger.With().Str("session_id", sessionID).Int("category", categoryID).Logger()
	ctx := r.Context()

	if err := conn.WriteJSON(outboundMessage[sessionPayload]{
		Type:    "session",
		Payload: sessionPayload{SessionID: sessionID, Category: categoryID},
	}); err != nil {
		logger.Warn().Err(err).Msg("ws write error")
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}

		var reply any
		switch inbound.Type {
		case "next":
			reply = h.next(ctx, sessionID, categoryID, logger)
		case "reset":
			if err := h.progress.Clear(ctx, sessionID); err != nil {
				logger.Error().Err(err).Msg("clear quiz progress")
				reply = errorMessage("could not reset quiz")
			} else {
				reply = outboundMessage[struct{}]{Type: "reset"}
			}
		default:
			reply = errorMessage("unsupported message type")
		}

		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn().Err(err).Msg("ws write error")
			return
		}
	}
}

func (h *QuizStreamHandler) next(ctx context.Context, sessionID string, categoryID int, logger zerolog.Logger) any {
	served, err := h.progress.Served(ctx, sessionID)
	if err != nil {
		logger.Error().Err(err).Msg("load quiz progress")
		return errorMessage("could not load quiz progress")
	}

	sel, err := h.service.NextQuizQuestion(ctx, app.QuizRequest{
		PreviousQuestions: served,
		CategoryID:        categoryID,
	})
	if err != nil {
		logger.Debug().Err(err).Msg("next quiz question")
		return errorMessage(messageFor(statusFor(err)))
	}

	if err := h.progress.MarkServed(ctx, sessionID, sel.Question.ID); err != nil {
		logger.Error().Err(err).Msg("save quiz progress")
		return errorMessage("could not save quiz progress")
	}
	return outboundMessage[app.Selection]{Type: "question", Payload: sel}
}

func errorMessage(msg string) outboundMessage[errorPayload] {
	return outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}}
}
