package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fkhayef/splitledger/internal/app"
	"github.com/fkhayef/splitledger/internal/config"
	"github.com/fkhayef/splitledger/internal/database"
	"github.com/fkhayef/splitledger/pkg/logging"
)

// @title           Split Ledger API
// @version         1.0
// @description     Shared-expense ledger: groups, expenses with equal or percentage splits, and netted who-owes-whom balances.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if envErr != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(cfg.DBDriver, cfg.DSN()); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("Failed to connect to database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Connected to database", "driver", cfg.DBDriver)

	a, err := app.New(cfg, db)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server starting",
		"port", cfg.Port,
		"split_remainder", cfg.SplitRemainderPolicy,
		"split_percentage", cfg.SplitPercentagePolicy,
		"metrics", cfg.MetricsEnabled,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Server stopped gracefully")
}
