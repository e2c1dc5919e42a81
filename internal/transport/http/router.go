package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"trivia-service/internal/metrics"
)

// RouterOptions configures the cross-cutting parts of the HTTP surface.
type RouterOptions struct {
	AllowedOrigins []string
	Metrics        *metrics.Recorder
	MetricsHandler http.Handler
	Logger         zerolog.Logger
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// NewRouter builds the echo instance serving the REST API, the quiz stream, health and metrics.
func NewRouter(handler *Handler, stream *QuizStreamHandler, opts RouterOptions) *echo.Echo {
	logger := opts.Logger.With().Str("component", "http").Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Bytes("stack", stack).
				Msg("recovered from panic")
			return err
		},
	}))
	if opts.Metrics != nil {
		e.Use(observeResponses(opts.Metrics))
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{"Content-Type", "Authorization", "true"},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}
	handler.Register(e)
	if stream != nil {
		e.GET("/ws/quizzes", echo.WrapHandler(http.HandlerFunc(stream.ServeWS)))
	}
	return e
}

// observeResponses counts responses once the error handler has settled the status code.
func observeResponses(rec *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				c.Error(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveResponse(c.Request().Method, route, c.Response().Status)
			return nil
		}
	}
}
