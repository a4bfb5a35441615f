package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/anfer-esquadrias/orcamentos/internal/app"
	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/legacy"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/db"
	"github.com/anfer-esquadrias/orcamentos/internal/products"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

func main() {
	path := flag.String("file", "", "path to the exported localStorage JSON file")
	flag.Parse()

	if *path == "" {
		slog.Default().Error("missing -file argument")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	ctx := context.Background()

	store, err := legacy.ReadFile(*path)
	if err != nil {
		logger.Error("read legacy export", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	migrator := legacy.NewMigrator(
		logger,
		quotations.NewRepository(pool, cfg.CounterSeed),
		customers.NewRepository(pool),
		products.NewRepository(pool),
		settings.NewRepository(pool),
	)
	if err := migrator.Run(ctx, store); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migration complete")
}
