package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/standup/backend/internal/config"
	"github.com/standup/backend/internal/handler"
	"github.com/standup/backend/internal/logging"
	"github.com/standup/backend/internal/repository"
	"github.com/standup/backend/internal/service"
	"github.com/standup/backend/pkg/apikey"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	statusRepo := repository.NewPgStatusRepository(pool)
	statusService := service.NewStatusService(statusRepo, userRepo, projectRepo, cfg.BugTrackerURL)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)

	keys := apikey.NewValidator(cfg.APIKey)

	h := handler.New(pool, cfg.FrontendURL)
	statusHandler := handler.NewStatusHandler(statusService, keys)
	userHandler := handler.NewUserHandler(userService, keys)
	projectHandler := handler.NewProjectHandler(projectService, keys)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// ステータス API
	mux.Handle("POST /api/v1/status/{$}", http.HandlerFunc(statusHandler.Create))
	mux.Handle("DELETE /api/v1/status/{id}/{$}", http.HandlerFunc(statusHandler.Delete))

	// ユーザー設定 API
	mux.Handle("POST /api/v1/user/{id}/{$}", http.HandlerFunc(userHandler.Update))

	// プロジェクト API（repo_url / bug_tracker_url の設定）
	mux.Handle("POST /api/v1/project/{slug}/{$}", http.HandlerFunc(projectHandler.Upsert))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
