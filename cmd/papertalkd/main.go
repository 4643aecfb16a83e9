package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/async"
	"github.com/papertalk/papertalk/internal/auth"
	"github.com/papertalk/papertalk/internal/common"
	"github.com/papertalk/papertalk/internal/export"
	"github.com/papertalk/papertalk/internal/grading"
	"github.com/papertalk/papertalk/internal/ingest"
	"github.com/papertalk/papertalk/internal/merge"
	"github.com/papertalk/papertalk/internal/repository"
	"github.com/papertalk/papertalk/internal/server"
	"github.com/papertalk/papertalk/internal/storage"
	"github.com/papertalk/papertalk/internal/tts"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewMinioStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to connect to object storage", "error", err)
		os.Exit(1)
	}

	subsRepo := repository.NewSubmissionRepository(entc, logger)
	testsRepo := repository.NewTestRepository(entc, logger)
	linksRepo := repository.NewMagicLinkRepository(entc, logger)
	usersRepo := repository.NewUserRepository(entc, logger)

	grader := grading.NewClient(grading.Config{
		BaseURL:        cfg.AI.BaseURL,
		APIKey:         cfg.AI.APIKey,
		Model:          cfg.AI.Model,
		MaxRetries:     cfg.AI.MaxRetries,
		RetryBaseDelay: cfg.AI.BaseDelay,
	}, store, logger)
	processor := grading.NewProcessor(subsRepo, testsRepo, grader, logger)

	// The queue's failure hook points at the ingestion service, which in
	// turn enqueues into the queue. Bridge the cycle with a closure that
	// binds late.
	var ingestSvc *ingest.Service
	queue := async.NewGradingQueue(processor, logger,
		async.WithMaxConcurrent(cfg.Queue.MaxConcurrent),
		async.WithMaxQueueSize(cfg.Queue.MaxQueueSize),
		async.WithProcessTimeout(cfg.AI.Timeout),
		async.WithFailureHandler(func(job async.Job, cause error) {
			if ingestSvc != nil {
				ingestSvc.MarkFailed(job, cause)
			}
		}),
	)
	ingestSvc = ingest.NewService(subsRepo, testsRepo, linksRepo, usersRepo, merge.Passthrough{}, queue, logger)

	speech := tts.NewClient(cfg.TTS, logger)
	exportSvc := export.NewService(subsRepo, testsRepo, logger)

	handlers := server.NewHandlers(logger, ingestSvc, subsRepo, testsRepo, exportSvc, queue, speech, store,
		func(ctx context.Context) error {
			return repository.HealthCheck(ctx, pool, 3*time.Second, logger)
		})

	tokens, err := loadTokens(os.Getenv("AUTH_TOKENS"))
	if err != nil {
		logger.Error("invalid AUTH_TOKENS", "error", err)
		os.Exit(1)
	}
	if len(tokens) == 0 {
		logger.Warn("AUTH_TOKENS is empty, teacher routes will reject all requests")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewRouter(handlers, tokens, cfg.Server.RequestTimeout),
	}

	logger.Info("papertalkd listening", "addr", cfg.Server.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	queue.Shutdown(shutdownCtx)
}

// loadTokens parses AUTH_TOKENS entries of the form
// token:userUUID:orgUUID:role separated by commas.
func loadTokens(raw string) (auth.TokenMap, error) {
	tokens := auth.TokenMap{}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 4 {
			return nil, common.NewAppError("CONFIG_ERROR", "token entry must be token:user:org:role", common.ErrInvalidInput)
		}
		userID, err := uuid.Parse(parts[1])
		if err != nil {
			return nil, err
		}
		orgID, err := uuid.Parse(parts[2])
		if err != nil {
			return nil, err
		}
		tokens[parts[0]] = auth.Identity{
			UserID:         userID,
			OrganizationID: orgID,
			Role:           constants.UserRole(parts[3]),
		}
	}
	return tokens, nil
}
