package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog7/internal/catalog/config"
	"catalog7/internal/catalog/handler"
	"catalog7/internal/catalog/repository"
	"catalog7/internal/catalog/router"
	"catalog7/internal/catalog/service"
	"catalog7/internal/catalog/util"
	"catalog7/internal/catalog/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 3. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db, cfg.ProductsCollection, cfg.PostsCollection, cfg.OpsLogCollection)

	// Ensure Indexes
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure product indexes", "error", err)
	}
	if err := repo.EnsurePostIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure post indexes", "error", err)
	}
	if err := repo.EnsureOpsLogIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure ops log indexes", "error", err)
	}

	retry := service.RetryConfig{
		MaxAttempts:     cfg.RetryMaxAttempts,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
	}
	// repo implements CatalogRepository, PostRepository and OperationLogRepository
	svc := service.NewService(repo, repo, repo, retry, cfg.PostsDir)

	pool := worker.NewPool(svc, worker.Config{
		Workers:       cfg.Workers,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
	})
	pool.Start()

	h := handler.NewCatalogHandler(svc, pool)

	// 4. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown Echo/Server
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	// Drain the ingest queue before dropping the DB connection
	if err := pool.Stop(ctx); err != nil {
		logger.Error("Ingest pool drain failed", "error", err)
	}

	// Disconnect DB
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
