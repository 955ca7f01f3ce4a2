package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/config"
	"github.com/Dosada05/bracket-editor/db"
	"github.com/Dosada05/bracket-editor/handlers"
	"github.com/Dosada05/bracket-editor/models"
	"github.com/Dosada05/bracket-editor/repositories"
	api "github.com/Dosada05/bracket-editor/routes"
	"github.com/Dosada05/bracket-editor/services"
	"github.com/Dosada05/bracket-editor/storage"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Пул команд: файл YAML или встроенный список
	var poolTeams []models.Team
	if cfg.TeamPoolFile != "" {
		poolTeams, err = config.LoadTeamPool(cfg.TeamPoolFile)
		if err != nil {
			logger.Error("failed to load team pool", slog.String("file", cfg.TeamPoolFile), slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("team pool loaded", slog.String("file", cfg.TeamPoolFile), slog.Int("teams", len(poolTeams)))
	}
	teamPool := services.NewStaticTeamPool(poolTeams)

	// Подключение к базе данных (опционально, только для архива)
	var archiveRepo repositories.ArchiveRepository
	var dbConn *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err = db.Connect(ctx, cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			} else {
				logger.Info("database connection closed")
			}
		}()
		if err := db.Migrate(ctx, dbConn); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		archiveRepo = repositories.NewPostgresArchiveRepository(dbConn)
		logger.Info("database connection established")
	} else {
		logger.Warn("DATABASE_URL is not set, snapshot archive disabled")
	}

	// Инициализация загрузчика файлов (Cloudflare R2)
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 is not configured, uploads disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	// Инициализация сервисов
	editorService := services.NewEditorService(teamPool, wsHub, services.EditorConfig{
		DefaultBestOf: cfg.DefaultBestOf,
		HistoryLimit:  services.MaxHistory,
	}, logger)
	archiveService := services.NewArchiveService(editorService, archiveRepo, uploader, logger)
	logger.Info("services initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Session:   handlers.NewSessionHandler(editorService),
		Match:     handlers.NewMatchHandler(editorService),
		Team:      handlers.NewTeamHandler(editorService, archiveService),
		Archive:   handlers.NewArchiveHandler(archiveService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
	}, api.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SessionExists:  editorService.Exists,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
