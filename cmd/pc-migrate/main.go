// Command pc-migrate brings the product catalog schema up to the newest
// migration embedded in the binary and exits.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/log"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	before, latest, err := db.SchemaVersion(ctx, pgxPool)
	if err != nil {
		return fmt.Errorf("error reading schema version: %w", err)
	}
	if before == latest {
		logger.InfoContext(ctx, "product catalog schema is up to date", slog.Int64("version", before))
		return nil
	}

	logger.InfoContext(ctx, "migrating product catalog schema",
		slog.Int64("from", before),
		slog.Int64("to", latest))

	if err := db.Migrate(ctx, pgxPool, logger); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	logger.InfoContext(ctx, "product catalog schema migrated", slog.Int64("version", latest))

	return nil
}
