package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRecoveryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RecoveryWithLog())
	router.GET("/board", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"columns": gin.H{}})
	})
	router.GET("/broken", func(c *gin.Context) {
		var tasks []string
		_ = tasks[3] // index out of range
	})
	router.GET("/broken-err", func(c *gin.Context) {
		panic(fmt.Errorf("codec rejected payload"))
	})
	return router
}

func TestRecoveryWithLog_PassesThroughHealthyHandlers(t *testing.T) {
	router := setupRecoveryRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/board", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRecoveryWithLog_ConvertsPanicTo500(t *testing.T) {
	router := setupRecoveryRouter()

	for _, path := range []string{"/broken", "/broken-err"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500 for %s, got %d", path, w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode error body for %s: %v", path, err)
		}
		if body["error"] != "internal server error" {
			t.Errorf("Expected generic error body for %s, got %q", path, body["error"])
		}
	}
}

func TestRecoveryWithLog_RouterSurvivesPanic(t *testing.T) {
	router := setupRecoveryRouter()

	// A request after a panic must still be served.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/broken", nil)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/board", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected healthy route to recover, got %d", w.Code)
	}
}
