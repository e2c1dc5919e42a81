package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"trivia-service/internal/domain"
)

// statusFor maps service errors to HTTP status codes. Anything unrecognised is unprocessable.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrQuestionNotFound), errors.Is(err, domain.ErrPageNotFound):
		return http.StatusNotFound
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusUnprocessableEntity
	}
}

func messageFor(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusUnprocessableEntity:
		return "Unprocessable Entity"
	case http.StatusMethodNotAllowed:
		return "Method not allowed"
	default:
		return http.StatusText(code)
	}
}

// errorHandler writes the uniform {success:false, error, message} body.
func errorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := statusFor(err)
		event := logger.Debug()
		if code == http.StatusUnprocessableEntity || code >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.Err(err).
			Str("method", c.Request().Method).
			Str("route", c.Path()).
			Int("status", code).
			Msg("request failed")

		body := errorResponse{Success: false, Error: code, Message: messageFor(code)}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error().Err(err).Msg("write error response")
		}
	}
}
