// Package app configures and runs application.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/license-management-toolkit/keyserve/config"
	"github.com/license-management-toolkit/keyserve/internal/cache"
	"github.com/license-management-toolkit/keyserve/internal/controller/httpapi"
	"github.com/license-management-toolkit/keyserve/internal/usecase"
	"github.com/license-management-toolkit/keyserve/pkg/db"
	"github.com/license-management-toolkit/keyserve/pkg/httpserver"
	"github.com/license-management-toolkit/keyserve/pkg/logger"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Log.Level)
	cfg.Version = Version
	log.Info("app - Run - version: %s", cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	// Repository
	database, err := db.New(cfg.DB.URL, sql.Open, db.MaxPoolSize(cfg.DB.PoolMax), db.EnableForeignKeys(true))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.New: %w", err))
	}

	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatal(fmt.Errorf("app - Run - database.Migrate: %w", err))
	}

	// Use case
	keyInfoCache := cache.New(cfg.License.KeyInfoCacheTTL)
	usecases := usecase.NewUseCases(database, keyInfoCache, cfg.License.KeepAliveTimeout, cfg.License.SweepInterval, log)

	// Background sweeper reclaims session slots from silent clients
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go usecases.SessionSweeper.Run(sweepCtx)

	handler := setupHTTPHandler(cfg, log, usecases)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.HTTP.Host, cfg.HTTP.Port),
		httpserver.TLS(cfg.HTTP.TLS.Enabled, cfg.HTTP.TLS.CertFile, cfg.HTTP.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)
	stopSweeper()
	shutdownServer(log, httpServer)
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.HTTP.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.HTTP.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, *usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}

func shutdownServer(log logger.Interface, httpServer *httpserver.Server) {
	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
