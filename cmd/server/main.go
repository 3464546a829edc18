package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wealthwatch/internal/config"
	"wealthwatch/internal/router"
	"wealthwatch/internal/services"
	"wealthwatch/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	store, err := storage.New(&cfg.Storage)
	if err != nil {
		logger.Error("Failed to create storage backend", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Storage.ConnectTimeout)
	defer cancel()
	if err := store.Connect(connectCtx); err != nil {
		logger.Error("Failed to connect storage backend", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	logger.Info("Storage backend connected", "driver", cfg.Storage.Driver)

	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	authService := services.NewAuthService(store, passwordService, metrics, logger)

	e := router.New(router.Dependencies{
		Config:           cfg,
		Store:            store,
		TokenService:     tokenService,
		AuthService:      authService,
		ExpenseService:   services.NewExpenseService(store, metrics),
		BudgetService:    services.NewBudgetService(store, metrics),
		AnalyticsService: services.NewAnalyticsService(store),
	})

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Error("Storage disconnect failed", "error", err)
	}
	logger.Info("Server stopped")
}

// newLogger builds the process logger: human-readable text in development,
// JSON elsewhere.
func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}
