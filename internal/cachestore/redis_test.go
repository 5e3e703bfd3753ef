package cachestore

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func setupTestRedis(t *testing.T) *RedisStore {
	mr := miniredis.RunT(t)

	config := DefaultRedisConfig()
	config.Addr = mr.Addr()

	store := NewRedisStore(config)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStore_SetGet(t *testing.T) {
	store := setupTestRedis(t)

	if err := store.Set("flowboard:tasks", []byte(`[{"id":"task-1"}]`)); err != nil {
		t.Fatalf("Failed to set blob: %v", err)
	}

	data, err := store.Get("flowboard:tasks")
	if err != nil {
		t.Fatalf("Failed to get blob: %v", err)
	}
	if string(data) != `[{"id":"task-1"}]` {
		t.Errorf("Expected stored blob back, got %q", data)
	}
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	store := setupTestRedis(t)

	if _, err := store.Get("flowboard:absent"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRedisStore_Delete(t *testing.T) {
	store := setupTestRedis(t)

	if err := store.Set("flowboard:auth_token", []byte("tok")); err != nil {
		t.Fatalf("Failed to set blob: %v", err)
	}
	if err := store.Delete("flowboard:auth_token"); err != nil {
		t.Fatalf("Failed to delete blob: %v", err)
	}
	if _, err := store.Get("flowboard:auth_token"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisStore_Health(t *testing.T) {
	store := setupTestRedis(t)

	if err := store.Health(); err != nil {
		t.Errorf("Expected healthy redis store, got %v", err)
	}
}
