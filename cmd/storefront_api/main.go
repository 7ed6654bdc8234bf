package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/storefront_pricing/internal/core/services"
	"github.com/SscSPs/storefront_pricing/internal/handlers"
	"github.com/SscSPs/storefront_pricing/internal/middleware"
	"github.com/SscSPs/storefront_pricing/internal/platform/config"
	"github.com/SscSPs/storefront_pricing/internal/repositories/database/pgsql"
	"github.com/SscSPs/storefront_pricing/internal/repositories/memory"
	"github.com/SscSPs/storefront_pricing/internal/repositories/redisstore"
	"github.com/SscSPs/storefront_pricing/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Storefront Pricing API
// @version 1.0
// @description Currency conversion, price formatting and display currency preferences for the storefront.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var dbPool *pgxpool.Pool
	if cfg.UsesPostgres() {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		dbPool, err = database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer dbPool.Close()
		logger.Info("Database connection pool established.")
	}

	repos, cleanup, err := newRepositoryProvider(ctx, cfg, dbPool)
	if err != nil {
		logger.Error("Failed to initialize preference store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer, err := services.NewServiceContainer(ctx, cfg, repos)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("preference_store", cfg.PreferenceStore),
		slog.String("rate_source", cfg.RateSource),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRepositoryProvider picks the preference store and rate source named in cfg.
// The returned cleanup releases any connection opened here.
func newRepositoryProvider(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool) (repositories.RepositoryProvider, func(), error) {
	var repos repositories.RepositoryProvider
	cleanup := func() {}

	switch cfg.PreferenceStore {
	case config.PreferenceStoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return repos, cleanup, err
		}
		cleanup = func() { _ = client.Close() }
		repos.PreferenceStore = redisstore.NewPreferenceStore(client, cfg.RedisKeyPrefix)
	case config.PreferenceStorePostgres:
		repos.PreferenceStore = pgsql.NewPgxPreferenceRepository(dbPool)
	default:
		repos.PreferenceStore = memory.NewPreferenceStore()
	}

	if cfg.RateSource == config.RateSourcePostgres {
		repos.ExchangeRateRepo = pgsql.NewPgxExchangeRateRepository(dbPool)
	}

	return repos, cleanup, nil
}
