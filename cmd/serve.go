package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizreview/config"
	"github.com/lshigami/quizreview/database"
	adminctrl "github.com/lshigami/quizreview/internal/controller/admin"
	userctrl "github.com/lshigami/quizreview/internal/controller/user"
	"github.com/lshigami/quizreview/internal/events"
	"github.com/lshigami/quizreview/internal/llm"
	"github.com/lshigami/quizreview/internal/repository"
	"github.com/lshigami/quizreview/internal/router"
	"github.com/lshigami/quizreview/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	app := fx.New(
		fx.Supply(cfg),

		// Core Application Components
		fx.Provide(
			database.NewDatabase,
			router.NewGinEngine,
			NewLLMProvider,
			NewEventPublisher,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAttemptService,
			service.NewQuestionService,
			service.NewExplanationService,
			service.NewSessionService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAttemptController,
			userctrl.NewQuestionController,
			userctrl.NewExplanationController,
			userctrl.NewSessionController,
			adminctrl.NewQuestionAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(router.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.Stop(stopCtx)
}

// NewLLMProvider builds the configured provider. A nil provider means no
// usable credential and is a valid result.
func NewLLMProvider(lc fx.Lifecycle, cfg *config.Config) (llm.Provider, error) {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err := llm.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	if closer, ok := provider.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return closer.Close() },
		})
	}
	return provider, nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg *config.Config) (events.Publisher, error) {
	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			log.Info().Msg("Closing event publisher")
			return publisher.Close()
		},
	})
	return publisher, nil
}

func AutoMigrateDB(db *gorm.DB) error {
	return database.AutoMigrate(db)
}

// StartServer manages the HTTP server lifecycle.
func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz review API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
