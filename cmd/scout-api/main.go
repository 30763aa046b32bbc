// Command scout-api serves the basketball scouting API: paginated Fullfield
// resources, per-player season aggregates, and derived team views behind a
// memoizing cache.
//
// Usage:
//
//	FULLFIELD_API_TOKEN=... scout-api
//	FULLFIELD_API_TOKEN=... CACHE_BACKEND=redis REDIS_URL=localhost:6379 scout-api
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pvscout/fullfield-scout/pkg/cache"
	"github.com/pvscout/fullfield-scout/pkg/client"
	"github.com/pvscout/fullfield-scout/pkg/config"
	"github.com/pvscout/fullfield-scout/pkg/fullfield"
	"github.com/pvscout/fullfield-scout/pkg/logging"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Cache backend
	var (
		store       cache.Store
		redisClient *redis.Client
	)
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Str("redis_url", cfg.RedisURL).Msg("Failed to connect to Redis")
		}
		store = cache.NewRedisStore(redisClient)
		logger.Info().Str("redis_url", cfg.RedisURL).Msg("Using Redis cache")
	default:
		store = cache.NewMemoryStore()
		logger.Info().Msg("Using in-memory cache")
	}

	apiClient, err := client.New(client.Config{
		BaseURL:           cfg.BaseURL,
		Token:             cfg.APIToken,
		Timeout:           cfg.RequestTimeout,
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Fullfield client")
	}

	service := fullfield.NewService(apiClient, store)
	handler := newHandler(service, logger)
	router := newRouter(handler, redisClient, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", addr).
			Str("base_url", cfg.BaseURL).
			Str("cache_backend", cfg.CacheBackend).
			Msg("Starting scout API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
	if redisClient != nil {
		redisClient.Close()
	}
	logger.Info().Msg("Server stopped")
}
