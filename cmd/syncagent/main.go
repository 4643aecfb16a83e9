// syncagent runs at the exam venue: it records scanned submissions
// into a local SQLite outbox and uploads them to the grading server in
// batches whenever connectivity allows.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/papertalk/papertalk/internal/batch"
	"github.com/papertalk/papertalk/internal/capture"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/syncer"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Agent.SpoolDir == "" {
		logger.Error("AGENT_SPOOL_DIR env var is required")
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.Agent.SpoolDir, 0o755); err != nil {
		logger.Error("failed to create spool dir", "dir", cfg.Agent.SpoolDir, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := batch.OpenSQLiteStore(ctx, cfg.Agent.DBPath)
	if err != nil {
		logger.Error("failed to open outbox", "path", cfg.Agent.DBPath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	outbox := batch.NewManager(store, logger,
		batch.WithBatchSize(cfg.Agent.BatchSize),
	)
	sync := syncer.New(outbox, cfg.Agent.ServerURL, logger,
		syncer.WithInterval(cfg.Agent.SyncInterval),
	)
	spool := capture.NewSpool(cfg.Agent.SpoolDir, outbox, logger, sync.TriggerSync)

	go sync.Run(ctx)
	go func() {
		if err := spool.Run(ctx); err != nil {
			logger.Error("spool watcher stopped", "error", err)
			stop()
		}
	}()

	logger.Info("syncagent running",
		"spool_dir", cfg.Agent.SpoolDir,
		"server", cfg.Agent.ServerURL,
		"batch_size", cfg.Agent.BatchSize,
	)

	<-ctx.Done()
	logger.Info("shutting down, draining outbox")

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sync.ForceSync(drainCtx); err != nil {
		logger.Warn("final sync failed, submissions remain buffered", "error", err)
	}
}
