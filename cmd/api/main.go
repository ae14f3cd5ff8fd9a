package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/traittune/sharing/internal/adapter"
	"github.com/traittune/sharing/internal/api/middleware"
	"github.com/traittune/sharing/internal/api/server"
	"github.com/traittune/sharing/internal/api/shared/executor"
	"github.com/traittune/sharing/internal/config"
	"github.com/traittune/sharing/internal/dispatch"
	"github.com/traittune/sharing/internal/eventlog"
	"github.com/traittune/sharing/internal/ledger"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/messaging"
	"github.com/traittune/sharing/internal/providers/jetstream"
	"github.com/traittune/sharing/internal/qr"
	"github.com/traittune/sharing/internal/registry"
	"github.com/traittune/sharing/internal/scan"
	"github.com/traittune/sharing/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sharing-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting sharing API",
		zap.String("store", cfg.Store.Driver),
		zap.String("dispatch_mode", cfg.Sharing.DispatchMode))

	dataStore := openStore(ctx, cfg)

	// Initialize adapters
	clock := adapter.NewClock()
	ids := adapter.NewIDGenerator()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()

	// Event publisher. Without NATS events stay local.
	publisher := messaging.NewNopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			CreateStream:   cfg.NATS.CreateStream,
		}, adapter.NewNatsJetStream(), jsonAdapter, jcsAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, link events will not be published")
	}
	defer publisher.Close()

	var dispatcher dispatch.Dispatcher
	switch cfg.Sharing.DispatchMode {
	case config.DispatchModeQueued:
		dispatcher = dispatch.NewQueued(publisher, clock)
	default:
		dispatcher = dispatch.NewImmediate()
	}

	// Core components
	bonusLedger := ledger.New(dataStore, clock, ids)
	eventLog := eventlog.New(eventlog.Config{
		PublicReferralBonus: cfg.Sharing.PublicReferralBonus,
	}, dataStore, dataStore, bonusLedger, publisher, clock, ids)
	linkRegistry := registry.New(registry.Config{
		Domain:           cfg.Sharing.Domain,
		MaxTokenAttempts: cfg.Sharing.MaxTokenAttempts,
	}, dataStore, eventLog, dispatcher, clock, ids)

	directory := scan.NewTrustingDirectory()
	if !cfg.Sharing.TrustScannerIdentity && cfg.Sharing.IdentityURL != "" {
		directory = scan.NewHTTPDirectory(cfg.Sharing.IdentityURL, adapter.NewHTTPClient(cfg.Sharing.IdentityTimeout))
		logger.InfoCtx(ctx, "Verifying scanners against identity service", zap.String("url", cfg.Sharing.IdentityURL))
	}
	resolver := scan.NewResolver(scan.Config{Domain: cfg.Sharing.Domain}, linkRegistry, eventLog, directory, clock)

	renderer := qr.NewRenderer(qr.Config{
		Size:        cfg.QR.Size,
		Concurrency: cfg.QR.Concurrency,
	})

	exec := executor.NewExecutor(linkRegistry, eventLog, bonusLedger, resolver, renderer)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}
	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Don't reuse the canceled ctx
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, fmt.Errorf("server forced to shutdown: %w", err))
	}

	logger.Info("Sharing API stopped")
}

// openStore builds the configured store backend
func openStore(ctx context.Context, cfg *config.APIConfig) store.Store {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.WarnCtx(ctx, "Using in-memory store, data is lost on restart")
		return store.NewMemoryStore()
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if cfg.Database.HasReadReplica() {
		if err := store.RegisterReadReplica(db, cfg.Database.ReadDSN()); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.Database.ReadHost))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if cfg.Store.AutoMigrate {
		if err := store.AutoMigrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
	}

	return store.NewPGStore(db)
}
