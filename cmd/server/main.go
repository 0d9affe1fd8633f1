package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/config"
	"github.com/wekeepgrowing/customer-dashboard/internal/infrastructure/database"
	httpServer "github.com/wekeepgrowing/customer-dashboard/internal/infrastructure/http"
	"github.com/wekeepgrowing/customer-dashboard/internal/infrastructure/stats"
	"github.com/wekeepgrowing/customer-dashboard/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger = zapLogger.With(
		zap.String("service", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment),
	)

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, &cfg.Log, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	repos := database.NewRepositories(db, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []httpServer.ServerOption
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = stats.NewRedisClient(ctx, cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB, zapLogger)
		if err != nil {
			// stats are optional; serve without them
			zapLogger.Warn("Request stats disabled", zap.Error(err))
		} else {
			store := stats.NewRedisStore(rdb, stats.WithPrefix(cfg.Redis.Prefix), stats.WithTTL(cfg.Redis.TTL))
			opts = append(opts, httpServer.WithStats(store))
		}
	}

	httpSrv := httpServer.NewServer(cfg, zapLogger, repos, opts...)

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Server.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			zapLogger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	zapLogger.Info("Server shut down successfully")
}
