package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/SscSPs/beers_api/cmd/docs"
	"github.com/SscSPs/beers_api/internal/adapters/exchangerate"
	portsrepo "github.com/SscSPs/beers_api/internal/core/ports/repositories"
	"github.com/SscSPs/beers_api/internal/core/services"
	"github.com/SscSPs/beers_api/internal/handlers"
	"github.com/SscSPs/beers_api/internal/middleware"
	"github.com/SscSPs/beers_api/internal/platform/config"
	"github.com/SscSPs/beers_api/internal/platform/currencyref"
	"github.com/SscSPs/beers_api/internal/platform/validation"
	"github.com/SscSPs/beers_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/beers_api/internal/repositories/memory"
	"github.com/SscSPs/beers_api/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Beers API
// @version 1.0
// @description Beer catalog with box pricing in any supported currency.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Prices go out as JSON numbers; decimals are never converted through float64.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The currency set is required for validation; without it every request would be rejected.
	supported, err := currencyref.Load(cfg.SupportedCurrenciesFile)
	if err != nil {
		logger.Error("Failed to load supported currencies",
			slog.String("path", cfg.SupportedCurrenciesFile), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Supported currencies loaded", slog.Int("count", supported.Len()))

	if err := validation.RegisterWithGin(supported); err != nil {
		logger.Error("Failed to register request validation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Database migrations failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Warn("No database configured, catalog is kept in memory")
		repos = memory.NewRepositoryProvider()
	}

	rateClient := exchangerate.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateTimeout)
	serviceContainer := services.NewServiceContainer(repos, supported, rateClient)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
