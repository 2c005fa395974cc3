package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/backoffice/infra/initializer"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/amirasaad/backoffice/webapi"
	log "github.com/charmbracelet/log"
)

// @title Backoffice API
// @version 1.0.0
// @description Operator backoffice: support chat, Zendesk proxy and MercadoPago reconciliation
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, cleanup, err := initializer.InitializeDependencies(cfg)
	defer cleanup()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(deps, cfg)

	if deps.Runner != nil {
		if err := deps.Runner.Start(ctx); err != nil {
			return fmt.Errorf("failed to start event bus consumer: %w", err)
		}
		defer func() {
			if err := deps.Runner.Close(); err != nil {
				logger.Warn("event bus close failed", "error", err)
			}
		}()
	}

	scheduler, err := transaction.NewScheduler(application.TransactionService, cfg.Reconcile.Schedule, logger)
	if err != nil {
		return fmt.Errorf("invalid reconcile schedule: %w", err)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	fiberApp := webapi.SetupApp(application)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- fiberApp.Listen(addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	if err := fiberApp.ShutdownWithTimeout(15 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	return nil
}
