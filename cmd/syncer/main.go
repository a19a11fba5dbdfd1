package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"mediafeed/internal/config"
	"mediafeed/internal/domain"
	"mediafeed/internal/feed"
	"mediafeed/internal/queue"
	"mediafeed/internal/scheduler"
	"mediafeed/internal/service"
	"mediafeed/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	queueCfg := queue.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
		Workers:    cfg.Sync.Workers,
	}

	publisher, err := queue.NewPublisher(queueCfg, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	videoStore := postgres.NewVideoStore(db)
	subscriptionStore := postgres.NewSubscriptionStore(db)
	txManager := postgres.NewTransactionManager(db)

	fetcher := feed.NewFetcher(feed.Config{
		Timeout:   cfg.Feed.Timeout,
		UserAgent: cfg.Feed.UserAgent,
	}, logger)

	enricher := service.NewEnricher(videoStore, subscriptionStore, publisher, logger)
	syncService := service.NewSyncService(
		subscriptionStore,
		videoStore,
		fetcher,
		txManager,
		enricher,
		logger,
	)

	consumer, err := queue.NewConsumer(queueCfg, queue.Handlers{
		Sync: map[domain.ProviderKind]queue.SyncHandler{
			domain.ProviderRSS: syncService,
		},
		Enrich: map[domain.ProviderKind]queue.EnrichHandler{
			domain.ProviderRSS: service.NewFeedEnrichment(logger),
		},
	}, logger)
	if err != nil {
		logger.Error("failed to start consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	sched := scheduler.NewScheduler(subscriptionStore, publisher, cfg.Sync.Interval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting syncer",
		"interval", cfg.Sync.Interval,
		"workers", cfg.Sync.Workers,
	)

	errCh := make(chan error, 2)
	go func() { errCh <- consumer.Start(ctx) }()
	go func() { errCh <- sched.Start(ctx) }()

	if err := <-errCh; err != nil && err != context.Canceled {
		logger.Error("syncer error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
