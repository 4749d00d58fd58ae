package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	"github.com/heartmarshall/delicious-backend/internal/config"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL, wires the HTTP stack and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("mail_driver", cfg.Mail.Driver),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, cleanup := NewHandler(cfg, logger, pool)
	defer cleanup()

	return Serve(ctx, logger, cfg.Server, handler)
}
