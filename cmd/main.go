package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/bangre/mediatheque/docs"
	"github.com/bangre/mediatheque/internal/config"
	"github.com/bangre/mediatheque/internal/database/migrations"
	"github.com/bangre/mediatheque/internal/handlers"
	"github.com/bangre/mediatheque/internal/logger"
	"github.com/bangre/mediatheque/internal/middlewares"
	"github.com/bangre/mediatheque/internal/repositories"
	"github.com/bangre/mediatheque/internal/services"
	"github.com/bangre/mediatheque/internal/session"
	"github.com/bangre/mediatheque/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Médiathèque API
// @version 1.0
// @description Self-hosted media library with a public catalog and a password-protected admin area.

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting mediatheque service")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := migrations.MigrateUp(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()

	// Initialize storage
	fileStorage, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Initialize repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(categoryRepo, resourceRepo, fileStorage)
	sessionService := session.NewService(cfg.Admin.Password, cfg.Session.Secret, cfg.Session.TTL)

	// Seed the default category on a fresh database
	if err := catalogService.EnsureDefaultCategory(ctx); err != nil {
		logger.Logger.Fatal("Failed to seed default category", zap.Error(err))
	}

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger.Logger)
	adminHandler := handlers.NewAdminHandler(catalogService, sessionService, session.RequireAdmin(sessionService), logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(cfg.Storage.MaxUploadSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	catalogHandler.RegisterRoutes(r)
	adminHandler.RegisterRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
		// Video uploads and downloads can run for minutes on slow links
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
