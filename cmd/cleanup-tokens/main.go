// Command cleanup-tokens deletes expired and used password reset tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the database section from CONFIG_PATH (default ./config.yaml) or
// the DATABASE_* environment variables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"


	"github.com/heartmarshall/delicious-backend/internal/adapter/postgres"
	"github.com/heartmarshall/delicious-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/delicious-backend/internal/app"
	"github.com/heartmarshall/delicious-backend/internal/config"
)

type cleanupConfig struct {
	Database config.DatabaseConfig `yaml:"database"`
	Log      config.LogConfig      `yaml:"log"`
}

func main() {
	var cfg cleanupConfig
	if err := config.Read(os.Getenv("CONFIG_PATH"), config.DefaultPath, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cleanup-tokens: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("password reset tokens cleaned up", slog.Int("deleted", deleted))
}
