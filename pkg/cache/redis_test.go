package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a test Redis client. Unit tests skip when no local
// Redis is available; tests/integration covers the containerized path.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestNewRedisStore_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRedisStore should panic with nil redis client")
		}
	}()
	NewRedisStore(nil)
}

func TestRedisStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	key := Key{Resource: "/competition/3f2a/players"}
	entry := NewEntry([]byte(`[{"uuid":"p1"}]`), false, 5*time.Minute)

	if err := store.Set(ctx, key, entry); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	retrieved, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(retrieved.Data) != string(entry.Data) {
		t.Errorf("Data mismatch: got %s, want %s", retrieved.Data, entry.Data)
	}
}

func TestRedisStore_Get_CacheMiss(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)

	_, err := store.Get(context.Background(), Key{Resource: "/nonexistent"})
	if err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestRedisStore_Set_SkipsExpired(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	key := Key{Resource: "/seasons"}
	if err := store.Set(ctx, key, NewEntry([]byte(`[]`), false, -1*time.Second)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := store.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Expired entry should not be stored, got %v", err)
	}
}

func TestRedisStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	key := Key{Resource: "/seasons"}
	if err := store.Set(ctx, key, NewEntry([]byte(`[]`), false, time.Minute)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after delete, got %v", err)
	}
}
