package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/middleware"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/internal/web"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := setupLogger()

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
	} else {
		logger.SetLevel(logLevel)
	}
	gin.SetMode(cfg.GinMode)
	logger.Info("Starting Catalog Service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	database, err := db.Connect(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	if err := db.Migrate(ctx, database, cfg.DatabaseDriver); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Infof("Database connection established (%s).", cfg.DatabaseDriver)

	// --- Dependency Injection ---
	dialect := repository.Dialect(cfg.DatabaseDriver)
	categoryRepo := repository.NewSQLCategoryRepository(database, dialect, logger)
	itemRepo := repository.NewSQLItemRepository(database, dialect, logger)
	userRepo := repository.NewSQLUserRepository(database, dialect, logger)

	if err := categoryRepo.SeedCategories(ctx, domain.DefaultCategories); err != nil {
		logger.Fatalf("Failed to seed categories: %v", err)
	}

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	itemUseCase := usecase.NewItemUseCase(itemRepo, categoryRepo, logger)
	userUseCase := usecase.NewUserUseCase(userRepo, logger)

	router := delivery.NewRouter(delivery.Handlers{
		Category: delivery.NewCategoryHandler(categoryUseCase, logger),
		Item:     delivery.NewItemHandler(itemUseCase, logger),
		Auth:     delivery.NewAuthHandler(userUseCase, logger),
		Health:   delivery.NewHealthHandler(database, logger),
		Static:   delivery.NewStaticHandler(web.FS, logger),
	}, middleware.NewMetrics(), logger)

	// --- gRPC health ---
	var healthServer *grpcHandler.HealthServer
	if cfg.GrpcPort != "" {
		lis, err := net.Listen("tcp", cfg.GrpcPort)
		if err != nil {
			logger.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
		}
		healthServer = grpcHandler.NewHealthServer(database, cfg.HealthInterval, logger)
		go healthServer.Watch(ctx)
		go func() {
			if err := healthServer.Serve(lis); err != nil {
				logger.Errorf("gRPC health server stopped: %v", err)
			}
		}()
	}

	// --- HTTP server ---
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Server is running on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Warn("Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	if healthServer != nil {
		healthServer.GracefulStop()
	}
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}
