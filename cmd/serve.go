package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"workbase.com/workbase/internal/chat"
	config "workbase.com/workbase/internal/configs"
	httpapi "workbase.com/workbase/internal/http"
	"workbase.com/workbase/internal/integrations/gcal"
	"workbase.com/workbase/internal/integrations/llm"
	"workbase.com/workbase/internal/queue"
	repository "workbase.com/workbase/internal/repositories"
	"workbase.com/workbase/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the WorkBase HTTP API, the chat broker and the sticky note sweeper",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadEnv()

		cfg := config.Load()
		logger := config.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		database := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)

		hub := chat.NewHub(0)
		var broker chat.Broker = chat.NewMemoryBroker(hub)
		var tokens queue.TokenManager = queue.NewMemoryTokenManager(cfg.AssistantConcurrency)

		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			redisTokens := queue.NewRedisTokenManager(redisClient, cfg.RedisTokenKey)
			if err := redisTokens.InitializeTokens(ctx, cfg.AssistantConcurrency); err != nil {
				return fmt.Errorf("failed to initialize assistant tokens: %w", err)
			}
			tokens = redisTokens
			broker = chat.NewRedisBroker(redisClient, cfg.RedisChatChannel, hub)
		}

		var completer services.Completer
		if cfg.OpenAIAPIKey != "" {
			completer = llm.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		} else {
			logger.Warn().Msg("OPENAI_API_KEY is not set, the assistant is disabled")
		}

		var google services.GoogleCalendar
		if cfg.GoogleEnabled() {
			google = gcal.New(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
		}

		taskRepo := repository.NewTaskRepository(database)
		sessionRepo := repository.NewSessionRepository(database)
		stickies := services.NewStickyNoteService(repository.NewStickyNoteRepository(database))

		h := httpapi.NewHandler(httpapi.Services{
			Board:     services.NewBoardService(taskRepo),
			Notes:     services.NewNoteService(repository.NewNoteRepository(database)),
			Stickies:  stickies,
			Calendar:  services.NewCalendarService(repository.NewCalendarRepository(database), google),
			Sessions:  services.NewSessionService(sessionRepo, taskRepo),
			Chat:      services.NewChatService(repository.NewChatRepository(database), hub, broker),
			Portal:    services.NewPortalService(repository.NewTicketRepository(database)),
			Directory: services.NewDirectoryService(repository.NewDirectoryRepository(database)),
			Assistant: services.NewAssistantService(repository.NewAssistantRepository(database), completer, tokens, cfg.AssistantHistory),
			Guest:     services.NewGuestService(database),
		})

		go func() {
			if err := broker.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("chat broker stopped")
			}
		}()

		sweeper := services.NewStickySweeper(stickies, time.Duration(cfg.StickySweepSeconds)*time.Second)
		sweeper.Start()

		e := echo.New()
		httpapi.Register(e, h, httpapi.RouteConfig{
			JWTSecret:          cfg.JWTSecret,
			RateLimitPerMinute: cfg.RateLimit,
			Logger:             logger,
		})

		go func() {
			logger.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("server stopped")
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("HTTP server shutdown incomplete")
		}

		sweeper.Shutdown(shutdownCtx)

		logger.Info().Msg("HTTP server and sweeper shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
