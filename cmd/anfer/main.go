package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/anfer-esquadrias/orcamentos/internal/app"
	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/dashboard"
	"github.com/anfer-esquadrias/orcamentos/internal/observability"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/cache"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/db"
	"github.com/anfer-esquadrias/orcamentos/internal/products"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
	"github.com/anfer-esquadrias/orcamentos/jobs"
	"github.com/anfer-esquadrias/orcamentos/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()
	pdfCache := cache.NewPDFCache(redisClient, cfg.PDFCacheTTL)
	settingsCache := cache.NewSettingsCache(redisClient, 10*time.Minute)

	customerRepo := customers.NewRepository(dbpool)
	customerService := customers.NewService(customerRepo)
	customerHandler := customers.NewHandler(logger, customerService)

	productRepo := products.NewRepository(dbpool)
	productService := products.NewService(productRepo)
	productHandler := products.NewHandler(logger, productService)

	settingsRepo := settings.NewRepository(dbpool)
	settingsService := settings.NewService(settingsRepo, settingsCache, logger)
	settingsHandler := settings.NewHandler(logger, settingsService)

	quotationRepo := quotations.NewRepository(dbpool, cfg.CounterSeed)
	quotationService := quotations.NewService(quotationRepo, customerRepo, settingsService)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Warn("asynq close", slog.Any("error", err))
		}
	}()
	enqueuer := jobs.NewEnqueuer(asynqClient)
	quotationHandler := quotations.NewHandler(logger, quotationService, enqueuer, pdfCache)

	dashboardService := dashboard.NewService(quotationService, customerService, productService)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	reportClient := report.NewClient(cfg.GotenbergURL)
	generator := report.NewGenerator(reportClient, metrics, logger)
	reportHandler := report.NewHandler(logger, quotationService, settingsService, generator, pdfCache)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		CustomersHandler:  customerHandler,
		ProductsHandler:   productHandler,
		QuotationsHandler: quotationHandler,
		SettingsHandler:   settingsHandler,
		DashboardHandler:  dashboardHandler,
		ReportHandler:     reportHandler,
		JobHandler:        jobHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
