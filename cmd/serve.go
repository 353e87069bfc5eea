package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskhub.com/taskhub/internal/configs"
	httpapi "taskhub.com/taskhub/internal/http"
	"taskhub.com/taskhub/internal/queue"
	repository "taskhub.com/taskhub/internal/repositories"
	"taskhub.com/taskhub/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task management HTTP API and the notification workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		tokenManager := queue.NewRedisTokenManager(redisClient, cfg.RedisQueueKey)
		if err := tokenManager.InitializeTokens(context.Background(), cfg.NotifierQueueSize); err != nil {
			log.Fatalf("failed to initialize notification queue tokens: %v", err)
		}

		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		commentRepo := repository.NewCommentRepository(database)
		preferenceRepo := repository.NewPreferenceRepository(database)
		notificationRepo := repository.NewNotificationRepository(database)

		notifier := services.NewNotifierService(tokenManager, notificationRepo, cfg.NotifierWorkers, cfg.NotifierQueueSize)

		userService := services.NewUserService(userRepo)
		sessionService := services.NewSessionService(userRepo)
		taskService := services.NewTaskService(taskRepo, userRepo, commentRepo, notifier)
		commentService := services.NewCommentService(commentRepo, taskRepo, notifier)
		preferenceService := services.NewPreferenceService(preferenceRepo)

		e := echo.New()

		handler := httpapi.NewHandler(userService, sessionService, taskService, commentService, preferenceService)
		httpapi.Register(e, handler, userRepo, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		notifier.Shutdown(ctx)

		log.Println("HTTP server and notifier shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
