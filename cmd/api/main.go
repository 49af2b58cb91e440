package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/insight-dash/customer-insights-backend/internal/cache"
	"github.com/insight-dash/customer-insights-backend/internal/config"
	"github.com/insight-dash/customer-insights-backend/internal/db"
	"github.com/insight-dash/customer-insights-backend/internal/handler"
	"github.com/insight-dash/customer-insights-backend/internal/repository"
	"github.com/insight-dash/customer-insights-backend/internal/service"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting customer insights API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to database
	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	// Connect to Redis cache. The cache is an optimization for filter
	// value lookups; a missing Redis does not block startup.
	valueCache, err := cache.NewRedisCache(cache.RedisConfig{
		URL: cfg.Cache.RedisURL,
	}, logger)
	if err != nil {
		logger.Warn("filter value cache unavailable, lookups go to the store",
			slog.String("error", err.Error()),
		)
		valueCache = nil
	} else {
		defer valueCache.Close()
	}

	// Initialize repository
	customerRepo := repository.NewCustomerRepository(database.DB)

	// Initialize services
	customerSvc := service.NewCustomerService(customerRepo, logger)
	analyticsSvc := service.NewAnalyticsService(customerRepo, logger)
	filterSvc := service.NewFilterService(customerRepo, valueCache, cfg.Cache.FilterTTL, logger)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerSvc, analyticsSvc, filterSvc, logger)
	healthHandler := handler.NewHealthHandler(database.DB, valueCache, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(handler.RecoveryMiddleware(logger))
	r.Use(handler.LoggingMiddleware(logger))
	r.Use(handler.CORSMiddleware)

	// Register routes
	r.Get("/health", healthHandler.Health)

	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/", customerHandler.ListCustomers)
		r.Get("/summary/gender", customerHandler.GenderSummary)
		r.Get("/summary/gender-age", customerHandler.GenderAgeSummary)
		r.Get("/summary/brand-device", customerHandler.BrandDeviceSummary)
		r.Get("/trends/login", customerHandler.LoginTrends)
		r.Get("/filters/{field}", customerHandler.FilterValues)
	})

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
