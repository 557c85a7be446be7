package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lottery-awards/config"
	httpHandler "lottery-awards/internal/adapter/http/handler"
	"lottery-awards/internal/adapter/http/middleware"
	"lottery-awards/internal/adapter/metrics"
	pgStorage "lottery-awards/internal/adapter/storage/postgres"
	redisStorage "lottery-awards/internal/adapter/storage/redis"
	"lottery-awards/internal/core/ports"
	"lottery-awards/internal/service"
	"lottery-awards/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int("sweep_workers", cfg.Awards.SweepWorkers).
		Msg("Starting lottery awards API")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	drawRepo := pgStorage.NewDrawRepo(pool)
	idempotencyRepo := pgStorage.NewIdempotencyRepo(pool)
	auditRepo := pgStorage.NewAuditRepo()
	transactor := pgStorage.NewTransactor(pool)
	drawCache := redisStorage.NewDrawCache(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	collector := metrics.NewCollector()

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	drawSvc := service.NewDrawService(
		drawRepo,
		drawCache,
		idempotencyRepo,
		idempotencyCache,
		auditRepo,
		transactor,
		collector,
		cfg.Awards.DrawCacheTTL,
		logger.Component(log, "draws"),
	)
	awardSvc := service.NewAwardService(
		drawRepo,
		drawCache,
		collector,
		cfg.Awards.DrawCacheTTL,
		cfg.Awards.SweepWorkers,
		logger.Component(log, "awards"),
	)

	var rateLimitStore middleware.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DrawSvc:        drawSvc,
		AwardSvc:       awardSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		Metrics:        collector,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Logger: logger.Component(log, "http"),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// payout sweeps in flight get the full window
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
