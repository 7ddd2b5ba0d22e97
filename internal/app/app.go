package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/config"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/httpapi"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/service"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/pkg/cache"
	dbbuilder "github.com/HTS-CEO/Call-Center-Dashboard-Creation/pkg/database"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/pkg/httpserver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	httpServer *httpserver.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	complaintRepo := repository.NewComplaintRepository(dbPool)
	if err := complaintRepo.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	reportingService := service.NewReportingService(complaintRepo, logger)

	handlers := httpapi.NewHandlers(reportingService, cacheClient, logger, 10*time.Minute)

	mode := gin.DebugMode
	if cfg.AppEnv == "production" {
		mode = gin.ReleaseMode
	}
	httpServer, err := httpserver.New(
		httpserver.WithPort(cfg.HTTPPort),
		httpserver.WithLogger(logger),
		httpserver.WithMode(mode),
		httpserver.WithLogging(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	handlers.Register(httpServer.Engine(), httpserver.AdminGate(cfg.AdminPassword))

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		httpServer: httpServer,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.httpServer.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")
	_ = a.logger.Sync()
	return nil
}
