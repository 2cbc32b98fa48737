package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	// time.LoadLocationの最終フォールバック。ゾーン一覧はtzdb.DefaultSourcesの探索結果から構築する
	_ "time/tzdata"

	"github.com/Hiro-mackay/timeserver/internal/infrastructure/di"
	"github.com/Hiro-mackay/timeserver/internal/infrastructure/worker"
	"github.com/Hiro-mackay/timeserver/internal/interface/router"
	"github.com/Hiro-mackay/timeserver/internal/interface/server"
	"github.com/Hiro-mackay/timeserver/pkg/config"
	"github.com/Hiro-mackay/timeserver/pkg/logger"
)

// @title Time Server API
// @version 1.0
// @description 現在時刻をタイムゾーン変換・期間シフト付きで返す REST API
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logger setup
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	closeLog, err := logger.Setup(logCfg)
	if err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	// Initialize DI Container
	container, err := di.NewContainer(cfg)
	if err != nil {
		slog.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}

	// Initialize UseCases and Handlers
	container.InitTimeUseCases()
	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(cfg)

	// Setup Server
	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	srv := server.NewServer(serverConfig)
	e := srv.Echo()

	// Global middleware
	e.Use(middlewares.Global()...)

	// Setup Router
	router.NewRouter(e, handlers).Setup()

	// Start background workers
	workerMgr := worker.NewManager()
	workerMgr.Register(worker.NewTZWatchJob(container.Catalog, cfg.Time.HealthInterval()))
	handlers.Health.RegisterChecker("worker", workerMgr)
	workerMgr.Start()

	// Start server
	slog.Info("starting server", "port", cfg.Server.Port)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	workerMgr.Shutdown(10 * time.Second)

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
