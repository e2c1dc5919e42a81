package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"trivia-service/internal/app"
	"trivia-service/internal/config"
	"trivia-service/internal/domain"
	"trivia-service/internal/infra/memory"
	pgstore "trivia-service/internal/infra/postgres"
	redisstore "trivia-service/internal/infra/redis"
	"trivia-service/internal/logging"
	"trivia-service/internal/metrics"
	transport "trivia-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the trivia API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Env)

	if cfg.Postgres.URL != "" {
		if err := runMigrations(ctx, cfg, logger); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	var (
		questions  app.QuestionRepository
		categories app.CategoryRepository
	)
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		store := pgstore.NewQuestionStore(pool)
		questions, categories = store, store
	} else {
		logger.Warn().Msg("postgres not configured, serving sample questions from memory")
		store := memory.NewQuestionStore(sampleCategories(), sampleQuestions())
		questions, categories = store, store
	}

	cacheTTL := config.TTLDuration(cfg.Cache.TTL, 5*time.Minute)
	progressTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)
	var progress app.ProgressRepository
	if redisClient != nil {
		categories = redisstore.NewCategoryCache(redisClient, categories, cacheTTL)
		progress = redisstore.NewProgressStore(redisClient, progressTTL)
	} else {
		categories = memory.NewCategoryCache(categories, cacheTTL)
		progress = memory.NewProgressStore()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(registry)

	service := app.NewTriviaService(questions, categories, app.NewSelector(nil), app.ServiceOptions{
		PageSize: cfg.Quiz.PageSize,
		Observer: recorder,
	}, logger)

	router := transport.NewRouter(
		transport.NewHandler(service),
		transport.NewQuizStreamHandler(service, progress, logger),
		transport.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Metrics:        recorder,
			MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			Logger:         logger,
		},
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting trivia service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info().Msg("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.TTLDuration(cfg.Server.ShutdownTimeout, 5*time.Second))
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleCategories mirrors the categories seeded by the Postgres migrations.
func sampleCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// sampleQuestions provides a minimal question set for running without a database.
func sampleQuestions() []domain.Question {
	return []domain.Question{
		{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{ID: 3, Question: "Which Dutch graphic artist created mathematically inspired lithographs?", Answer: "Escher", Category: 2, Difficulty: 1},
		{ID: 4, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{ID: 5, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 6, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{ID: 7, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{ID: 8, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{ID: 9, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
		{ID: 11, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{ID: 12, Question: "What is 2+2?", Answer: "4", Category: 1, Difficulty: 1},
	}
}
