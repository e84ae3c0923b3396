package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/opsdesk-hr/backoffice-go/internal/config"
	"github.com/opsdesk-hr/backoffice-go/internal/pkg/database"
)

func main() {
	dir := flag.String("dir", "db/migrations", "directory with migration files")
	down := flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if *down {
		if err := database.Rollback(ctx, cfg.Database.DSN(), *dir); err != nil {
			slog.Error("Rollback failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Rollback complete")
		return
	}

	if err := database.Migrate(ctx, cfg.Database.DSN(), *dir); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Migrations applied")
}
