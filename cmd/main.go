package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fundflow/internal/adapter/gateway"
	httpadapter "fundflow/internal/adapter/http"
	"fundflow/internal/adapter/postgres"
	"fundflow/internal/adapter/usecase"
	"fundflow/internal/config"
	"fundflow/internal/db"
	"fundflow/internal/worker"
)

// main is the entry point of the fundflow API. It loads configuration,
// optionally runs database migrations, wires the repositories, usecases and
// HTTP adapter, starts the reconciliation worker and serves until a
// termination signal arrives.
func main() {
	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	var (
		campaignRepo     = postgres.NewCampaignRepository(pool)
		milestoneRepo    = postgres.NewMilestoneRepository(pool)
		disbursementRepo = postgres.NewDisbursementRepository(pool)
		userRepo         = postgres.NewUserRepository(pool)
	)

	verifier := gateway.NewVerifier(cfg.Payment.KeySecret)
	gatewayClient := gateway.NewClient(cfg.Payment)

	var (
		disbursements = usecase.NewDisbursementUseCase(verifier, disbursementRepo, milestoneRepo, logger)
		campaigns     = usecase.NewCampaignUseCase(campaignRepo, milestoneRepo)
		milestones    = usecase.NewMilestoneUseCase(milestoneRepo, campaignRepo)
		accounts      = usecase.NewAccountUseCase(userRepo, cfg.Auth)
	)

	if cfg.Reconciler.Enabled {
		rec := worker.NewReconciler(disbursements, milestoneRepo, cfg.Reconciler.Interval, logger)
		go rec.Run(ctx)
	}

	handler := httpadapter.NewHandler(disbursements, campaigns, milestones, accounts, gatewayClient, cfg.Auth, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
