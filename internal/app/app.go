package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ayo6706/remittance-engine/internal/api"
	"github.com/ayo6706/remittance-engine/internal/config"
	"github.com/ayo6706/remittance-engine/internal/gateway"
	"github.com/ayo6706/remittance-engine/internal/observability"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/ayo6706/remittance-engine/internal/service"
	"github.com/ayo6706/remittance-engine/internal/session"
	"github.com/ayo6706/remittance-engine/internal/worker"
	"go.uber.org/zap"
)

// Run bootstraps the HTTP server and session sweeper, blocking until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	observability.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg, err := LoadRegistry(cfg.CorridorsFile)
	if err != nil {
		return fmt.Errorf("load corridors: %w", err)
	}
	if _, err := reg.ByCurrencyCode(cfg.SourceCurrency); err != nil {
		return fmt.Errorf("SOURCE_CURRENCY %s: %w", cfg.SourceCurrency, err)
	}
	logger.Info("corridor registry loaded",
		zap.Int("corridors", reg.Len()),
		zap.String("base", reg.Base().CurrencyCode),
		zap.String("file", cfg.CorridorsFile),
	)

	rates := service.NewRegistryRateService(reg)
	quotes := service.NewQuoteService(reg, rates)
	recipients, err := service.NewRecipientDirectory(reg, service.DefaultRecipients()...)
	if err != nil {
		return fmt.Errorf("load recipients: %w", err)
	}

	mockGateway := gateway.NewMockGateway().
		WithFailureRate(cfg.GatewayFailureRate).
		WithMaxDelay(cfg.GatewayMaxDelay)
	sessions := session.NewStore(func() *service.Workflow {
		return service.NewWorkflow(quotes, mockGateway,
			service.WithLogger(logger),
			service.WithFeePolicy(cfg.FeePolicy),
			service.WithRecipientDirectory(recipients),
		)
	}, cfg.SessionTTL)

	sweeper := worker.NewSessionSweeper(sessions).WithInterval(cfg.SessionSweepInterval)
	stopWorker := sweeper.Run(ctx)
	logger.Info("session sweeper started", zap.Duration("interval", cfg.SessionSweepInterval), zap.Duration("ttl", cfg.SessionTTL))

	router := api.NewRouter(cfg, logger, reg, quotes, rates, recipients, sessions)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("port", cfg.HTTPPort))
		serverErr <- server.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigChan:
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("stopping session sweeper")
	stopWorker()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}

	logger.Info("shutdown complete")
	return nil
}

// LoadRegistry reads the corridor seed file, or returns the built-in
// corridors when path is empty.
func LoadRegistry(path string) (*registry.Registry, error) {
	if strings.TrimSpace(path) == "" {
		return registry.Default(), nil
	}
	return registry.LoadFile(path)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
