package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobtracker_backend/internal/config"
	"jobtracker_backend/internal/database"
	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/routes"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/validator"
)

// Version is reported by /health and the version command. Set at build time with
// -ldflags "-X jobtracker_backend/internal/app.Version=...".
var Version = "dev"

// NewLogger builds the process logger from cfg and makes it the slog default.
func NewLogger(cfg *config.Config) *slog.Logger {
	log := logger.New(logger.Options{
		Env:        cfg.Server.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	slog.SetDefault(log)
	return log
}

// Run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests for at most
// cfg.Server.ShutdownTimeout.
func Run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}()
	log.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			return err
		}
		log.Info("Database schema migrated")
	}

	ginRouter := SetupRouter(ctx, cfg, gormDB, log)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      ginRouter,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("Server starting on %s", srv.Addr), "env", cfg.Server.Env, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server startup error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// Migrate connects and applies the schema, then exits.
func Migrate(cfg *config.Config, log *slog.Logger) error {
	gormDB, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	if err := database.AutoMigrate(gormDB); err != nil {
		return err
	}
	log.Info("Database schema migrated", "driver", cfg.Database.Driver)
	return nil
}

// SetupRouter assembles the gin engine. ctx bounds background work started for the router
// (the rate-limiter janitor).
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, log *slog.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Services
	serviceContainer := initializeServices(log)

	// 2. Handlers
	appHandlers := initializeHandlers(cfg, serviceContainer, log)

	// 3. Gin
	ginRouter := initializeGinRouter(ctx, cfg, gormDB, log)

	// 4. Routes
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Options{Swagger: cfg.Swagger.Enabled}, log)

	return ginRouter
}

func initializeServices(log *slog.Logger) *services.ServiceContainer {
	return services.NewServiceContainer(log)
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer, log *slog.Logger) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, log, cfg.IsDevelopment())

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler, Version),
		UserHandler:        handlers.NewUserHandler(baseHandler, services.UserService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
	}
}

func initializeGinRouter(ctx context.Context, cfg *config.Config, db *gorm.DB, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware())

	if cfg.RateLimit.Enabled {
		store := middleware.NewLimiterStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		store.StartJanitor(ctx)
		router.Use(middleware.RateLimitMiddleware(store))
		log.Info("Rate limiting enabled", "rps", cfg.RateLimit.RPS, "burst", cfg.RateLimit.Burst)
	}

	router.Use(middleware.DBMiddleware(db))
	return router
}
