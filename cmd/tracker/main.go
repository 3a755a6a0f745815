package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_tracker/internal/config"
	"content_tracker/internal/consumer"
	"content_tracker/internal/scheduler"
	"content_tracker/internal/service"
	"content_tracker/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	rebuild := flag.Bool("rebuild", false, "reset the backfill cursor to the newest item and reindex everything")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
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

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	itemStore := postgres.NewItemStore(db)
	commentStore := postgres.NewCommentStore(db)
	itemIndexStore := postgres.NewItemActivityStore(db)
	userIndexStore := postgres.NewUserActivityStore(db)
	stateStore := postgres.NewStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Create tracker service and sweeper
	tracker := service.NewTrackerService(
		itemStore,
		commentStore,
		itemIndexStore,
		userIndexStore,
		txManager,
		logger,
	)

	sweeper := service.NewSweeper(
		itemStore,
		commentStore,
		itemIndexStore,
		userIndexStore,
		stateStore,
		txManager,
		logger,
		cfg.Tracker.SweepBatchSize,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *rebuild {
		if err := sweeper.ResetCursor(ctx); err != nil {
			logger.Error("failed to reset cursor", "error", err)
			os.Exit(1)
		}
	}

	// Initialize RabbitMQ consumer
	rabbitMQ, err := consumer.NewRabbitMQ(consumer.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
		Timeout:    cfg.Tracker.HandlerTimeout,
	}, tracker, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	sched := scheduler.NewScheduler(sweeper, cfg.Tracker.SweepInterval, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting content tracker",
		"sweep_interval", cfg.Tracker.SweepInterval,
		"sweep_batch_size", cfg.Tracker.SweepBatchSize,
	)

	errCh := make(chan error, 2)
	go func() {
		errCh <- rabbitMQ.Start(ctx)
	}()
	go func() {
		errCh <- sched.Start(ctx)
	}()

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("tracker error", "error", err)
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
