package config

import (
	"testing"
	"time"
)

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("FULLFIELD_API_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when FULLFIELD_API_TOKEN is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FULLFIELD_API_TOKEN", "test-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BaseURL != "https://api.fullfield.info/v1" {
		t.Errorf("Unexpected default base URL: %s", cfg.BaseURL)
	}
	if cfg.APIToken != "test-token" {
		t.Errorf("Token not loaded: %s", cfg.APIToken)
	}
	if cfg.CacheBackend != CacheBackendMemory {
		t.Errorf("Expected memory cache backend, got %s", cfg.CacheBackend)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("Unexpected default timeout: %s", cfg.RequestTimeout)
	}
	if cfg.Port != 8080 {
		t.Errorf("Unexpected default port: %d", cfg.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FULLFIELD_API_TOKEN", "test-token")
	t.Setenv("FULLFIELD_BASE_URL", "http://localhost:9999/v1")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis-host:6380")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://scouting.example.com, https://hub.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("Base URL override not applied: %s", cfg.BaseURL)
	}
	if cfg.CacheBackend != CacheBackendRedis {
		t.Errorf("Cache backend override not applied: %s", cfg.CacheBackend)
	}
	if cfg.RedisURL != "redis-host:6380" {
		t.Errorf("Redis URL override not applied: %s", cfg.RedisURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Timeout override not applied: %s", cfg.RequestTimeout)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://hub.example.com" {
		t.Errorf("CORS origins not parsed: %v", cfg.CORSAllowOrigins)
	}
}

func TestLoad_InvalidCacheBackend(t *testing.T) {
	t.Setenv("FULLFIELD_API_TOKEN", "test-token")
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for unknown cache backend")
	}
}
