package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/anfer-esquadrias/orcamentos/internal/app"
	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/observability"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/cache"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/db"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
	"github.com/anfer-esquadrias/orcamentos/jobs"
	"github.com/anfer-esquadrias/orcamentos/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}

	metrics := observability.NewMetrics()
	pdfCache := cache.NewPDFCache(redisClient, cfg.PDFCacheTTL)
	settingsCache := cache.NewSettingsCache(redisClient, 10*time.Minute)

	customerRepo := customers.NewRepository(pool)
	settingsRepo := settings.NewRepository(pool)
	settingsService := settings.NewService(settingsRepo, settingsCache, logger)
	quotationRepo := quotations.NewRepository(pool, cfg.CounterSeed)
	quotationService := quotations.NewService(quotationRepo, customerRepo, settingsService)

	reportClient := report.NewClient(cfg.GotenbergURL)
	generator := report.NewGenerator(reportClient, metrics, logger)

	prerender := jobs.NewPDFPrerenderHandler(logger, quotationService, settingsService, generator, pdfCache)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Prerender: prerender,
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
