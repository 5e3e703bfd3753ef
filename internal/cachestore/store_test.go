package cachestore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"flowboard/internal/fixtures"
	"flowboard/internal/models"
)

func TestStore_SeedsFixturesOnFirstLoad(t *testing.T) {
	store := NewStore(NewMemoryStore())

	tasks := store.Tasks()
	if !reflect.DeepEqual(tasks, fixtures.Tasks()) {
		t.Error("Expected first load to return the fixture task set")
	}

	members := store.Members()
	if !reflect.DeepEqual(members, fixtures.Members()) {
		t.Error("Expected first load to return the fixture member set")
	}
}

func TestStore_RoundTripSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	blobs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	store := NewStore(blobs)

	saved := []models.Task{
		{
			ID:        "task-42",
			Title:     "Round trip",
			Status:    models.StatusReview,
			Priority:  models.PriorityHigh,
			Assignee:  &models.Assignee{ID: "team-1", Name: "Maya"},
			Order:     3,
			CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			UpdatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
	store.SaveTasks(saved)

	// A fresh store over the same directory simulates a restart.
	blobs2, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to reopen file store: %v", err)
	}
	reloaded := NewStore(blobs2).Tasks()

	if !reflect.DeepEqual(reloaded, saved) {
		t.Errorf("Expected reloaded tasks %+v, got %+v", saved, reloaded)
	}
}

func TestStore_CorruptBlobReseeds(t *testing.T) {
	dir := t.TempDir()

	blobs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}
	if err := blobs.Set("flowboard:tasks", []byte("{not json")); err != nil {
		t.Fatalf("Failed to plant corrupt blob: %v", err)
	}

	tasks := NewStore(blobs).Tasks()
	if !reflect.DeepEqual(tasks, fixtures.Tasks()) {
		t.Error("Expected corrupt blob to be discarded in favor of fixtures")
	}

	// The reseed must also repair the persisted blob.
	data, err := blobs.Get("flowboard:tasks")
	if err != nil {
		t.Fatalf("Failed to read reseeded blob: %v", err)
	}
	if string(data) == "{not json" {
		t.Error("Expected corrupt blob to be overwritten with seed data")
	}
}

func TestStore_TokenSlot(t *testing.T) {
	store := NewStore(NewMemoryStore())

	if token := store.Token(); token != "" {
		t.Errorf("Expected empty token before SetToken, got %q", token)
	}

	store.SetToken("bearer-abc")
	if token := store.Token(); token != "bearer-abc" {
		t.Errorf("Expected stored token bearer-abc, got %q", token)
	}

	store.ClearToken()
	if token := store.Token(); token != "" {
		t.Errorf("Expected empty token after ClearToken, got %q", token)
	}
}

func TestFileStore_GetMissingKey(t *testing.T) {
	blobs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	if _, err := blobs.Get("flowboard:absent"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_KeyNamespacing(t *testing.T) {
	dir := t.TempDir()
	blobs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	if err := blobs.Set("flowboard:tasks", []byte("[]")); err != nil {
		t.Fatalf("Failed to set blob: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "flowboard_tasks.json")); err != nil {
		t.Errorf("Expected colon-free blob file on disk: %v", err)
	}
}

func TestMemoryStore_DeleteAndHealth(t *testing.T) {
	blobs := NewMemoryStore()

	if err := blobs.Set("k", []byte("v")); err != nil {
		t.Fatalf("Failed to set: %v", err)
	}
	if err := blobs.Delete("k"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if _, err := blobs.Get("k"); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := blobs.Health(); err != nil {
		t.Errorf("Expected healthy memory store, got %v", err)
	}
}
