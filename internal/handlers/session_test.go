package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"flowboard/internal/cachestore"
)

func setupSessionRouter() (*gin.Engine, *cachestore.Store) {
	gin.SetMode(gin.TestMode)

	store := cachestore.NewStore(cachestore.NewMemoryStore())
	handler := NewSessionHandler(store)
	router := gin.New()
	router.PUT("/api/session/token", handler.SetToken)
	router.DELETE("/api/session/token", handler.ClearToken)
	return router, store
}

func TestSetToken_StoresInSlot(t *testing.T) {
	router, store := setupSessionRouter()

	payload := bytes.NewBufferString(`{"token": "bearer-xyz"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/session/token", payload)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.Token() != "bearer-xyz" {
		t.Errorf("Expected token persisted, got %q", store.Token())
	}
}

func TestSetToken_RequiresToken(t *testing.T) {
	router, _ := setupSessionRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/session/token", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestClearToken(t *testing.T) {
	router, store := setupSessionRouter()
	store.SetToken("bearer-xyz")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/session/token", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	if store.Token() != "" {
		t.Errorf("Expected empty token after clear, got %q", store.Token())
	}
}
