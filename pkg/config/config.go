// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/scout-api and the examples.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Cache backend selection.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all process configuration.
type Config struct {
	// Upstream API
	BaseURL           string
	APIToken          string
	RequestTimeout    time.Duration
	RequestsPerMinute int

	// API server
	Host string
	Port int

	// CORS
	CORSAllowOrigins []string

	// Cache
	CacheBackend string // memory or redis
	RedisURL     string

	// Logging
	LogLevel  string
	LogPretty bool
}

// Load reads configuration from environment variables with sensible defaults.
// A missing API token is a hard error: without it every upstream call would
// come back unauthorized and silently truncate to empty result sets.
func Load() (*Config, error) {
	token := os.Getenv("FULLFIELD_API_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("FULLFIELD_API_TOKEN must be set")
	}

	backend := envOr("CACHE_BACKEND", CacheBackendMemory)
	if backend != CacheBackendMemory && backend != CacheBackendRedis {
		return nil, fmt.Errorf("CACHE_BACKEND must be %q or %q (got %q)",
			CacheBackendMemory, CacheBackendRedis, backend)
	}

	return &Config{
		BaseURL:           envOr("FULLFIELD_BASE_URL", "https://api.fullfield.info/v1"),
		APIToken:          token,
		RequestTimeout:    envDuration("REQUEST_TIMEOUT_SECONDS", 15*time.Second),
		RequestsPerMinute: envInt("REQUESTS_PER_MINUTE", 120),

		Host: envOr("HOST", "0.0.0.0"),
		Port: envInt("PORT", 8080),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8501",
		}),

		CacheBackend: backend,
		RedisURL:     envOr("REDIS_URL", "localhost:6379"),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogPretty: envBool("LOG_PRETTY", false),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
