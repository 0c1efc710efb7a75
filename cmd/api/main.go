package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/launchlist/launchlist/internal/api/router"
	appconfig "github.com/launchlist/launchlist/internal/config"
	"github.com/launchlist/launchlist/internal/companies"
	"github.com/launchlist/launchlist/internal/extraction"
	"github.com/launchlist/launchlist/internal/founders"
	"github.com/launchlist/launchlist/internal/logos"
	"github.com/launchlist/launchlist/internal/submissions"
	"github.com/launchlist/launchlist/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting launchlist API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	companiesRepo := companies.NewPostgresRepository(pool)
	submissionsRepo := submissions.NewPostgresRepository(pool)
	foundersRepo := founders.NewPostgresRepository(pool)

	// Directory stats, optionally cached in Redis.
	var stats companies.StatsSource = companies.NewStatsRepository(pool)
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		redisClient := redis.NewClient(opts)
		stats = companies.NewCachedStats(stats, redisClient, cfg.StatsCacheTTL, logger)
		logger.Info("stats caching enabled", "addr", cfg.RedisAddr, "ttl", cfg.StatsCacheTTL)
	}

	// Extraction service
	extractionHandler, err := buildExtractionHandler(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize extraction", "error", err)
		os.Exit(1)
	}

	// Logo uploads, only when a bucket is configured.
	var logosHandler *logos.Handler
	if cfg.LogoBucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		store := logos.NewStore(s3.NewFromConfig(awsCfg), cfg.LogoBucket, cfg.LogoPublicURL, logger)
		logosHandler = logos.NewHandler(store, logger)
	}

	guard := submissions.NewGuard(submissionsRepo, companiesRepo, logger)
	submissionsSvc := submissions.NewService(submissionsRepo, companiesRepo, foundersRepo, guard, logger)

	companiesHandler := companies.NewHandler(companiesRepo, foundersRepo, stats, logger)
	submissionsHandler := submissions.NewHandler(submissionsSvc, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		CompaniesHandler:   companiesHandler,
		SubmissionsHandler: submissionsHandler,
		ExtractionHandler:  extractionHandler,
		LogosHandler:       logosHandler,
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ExtractRate:        cfg.ExtractRate,
		ExtractBurst:       cfg.ExtractBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildExtractionHandler picks the model provider from config. A missing API
// key disables the extract endpoint instead of failing startup: the
// submission form degrades to manual entry.
func buildExtractionHandler(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*extraction.Handler, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not set, extraction disabled")
			return nil, nil
		}
		client, err := extraction.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		svc := extraction.NewService(client, cfg.GeminiModel, logger)
		return extraction.NewHandler(svc, logger), nil
	default:
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OPENAI_API_KEY not set, extraction disabled")
			return nil, nil
		}
		client, err := extraction.NewOpenAIClient(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		svc := extraction.NewService(client, cfg.OpenAIModel, logger)
		return extraction.NewHandler(svc, logger), nil
	}
}
